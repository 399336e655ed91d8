//  Copyright (c) 2026 EddieWu
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package expression

import (
	"fmt"

	"github.com/EddieWu/mongo/geo"
)

// Geo is a $geoWithin / $geoIntersects predicate.
type Geo struct {
	expressionBase
	query *geo.Query
}

func NewGeo(path string, query *geo.Query) *Geo {
	rv := &Geo{query: query}
	rv.path = path
	return rv
}

func (this *Geo) MatchType() MatchType { return GEO }
func (this *Geo) Query() *geo.Query    { return this.query }

func (this *Geo) String() string {
	op := "$geoWithin"
	if this.query.Predicate() == geo.INTERSECT {
		op = "$geoIntersects"
	}
	return fmt.Sprintf("{%q:{%q:{}}}", this.path, op)
}

// GeoNear is a proximity predicate ($near / $nearSphere).
type GeoNear struct {
	expressionBase
	near *geo.NearQuery
}

func NewGeoNear(path string, near *geo.NearQuery) *GeoNear {
	rv := &GeoNear{near: near}
	rv.path = path
	return rv
}

func (this *GeoNear) MatchType() MatchType { return GEO_NEAR }
func (this *GeoNear) Near() *geo.NearQuery { return this.near }

func (this *GeoNear) String() string {
	op := "$near"
	if this.near.IsNearSphere {
		op = "$nearSphere"
	}
	return fmt.Sprintf("{%q:{%q:[%v,%v]}}", this.path, op,
		this.near.Centroid.Point.X, this.near.Centroid.Point.Y)
}
