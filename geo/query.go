//  Copyright (c) 2026 EddieWu
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package geo

type Predicate int

const (
	INVALID = Predicate(iota)
	WITHIN
	INTERSECT
)

func (this Predicate) String() string {
	return _PREDICATE_NAMES[this]
}

var _PREDICATE_NAMES = []string{
	INVALID:   "invalid",
	WITHIN:    "within",
	INTERSECT: "intersect",
}

// Query is a containment or intersection test of documents' geometry
// against a query geometry.
type Query struct {
	geometry *GeometryContainer
	pred     Predicate
}

func NewQuery(geometry *GeometryContainer, pred Predicate) *Query {
	return &Query{
		geometry: geometry,
		pred:     pred,
	}
}

func (this *Query) Geometry() *GeometryContainer {
	return this.geometry
}

func (this *Query) Predicate() Predicate {
	return this.pred
}

/*
NearQuery is a proximity sort around a reference point. IsNearSphere
marks the legacy form that queries a flat-CRS point spherically; a
2dsphere index accepts it even though the centroid CRS is FLAT.
*/
type NearQuery struct {
	Centroid     PointWithCRS
	MaxDistance  float64
	IsNearSphere bool
}
