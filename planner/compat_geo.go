//  Copyright (c) 2026 EddieWu
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package planner

import (
	"github.com/EddieWu/mongo/datastore"
	"github.com/EddieWu/mongo/expression"
	"github.com/EddieWu/mongo/geo"
)

func compatible2DSphere(node expression.Expression, exprType expression.MatchType) bool {
	switch exprType {
	case expression.GEO:
		// within or intersect.
		gme := node.(*expression.Geo)
		return gme.Query().Geometry().HasS2Region()
	case expression.GEO_NEAR:
		near := node.(*expression.GeoNear).Near()
		return near.Centroid.CRS == geo.SPHERE || near.IsNearSphere
	}
	return false
}

func compatible2D(index *datastore.IndexEntry, node expression.Expression,
	exprType expression.MatchType) bool {

	switch exprType {
	case expression.GEO_NEAR:
		return node.(*expression.GeoNear).Near().Centroid.CRS == geo.FLAT
	case expression.GEO:
		// 2d only supports within.
		gq := node.(*expression.Geo).Query()
		if gq.Predicate() != geo.WITHIN {
			return false
		}

		gc := gq.Geometry()

		// 2d indexes answer flat queries.
		if gc.HasFlatRegion() {
			return true
		}

		// 2d indexes can answer centerSphere queries, as long as the
		// circle stays clear of the edge of the grid.
		sphereCap := gc.Cap()
		if sphereCap == nil || sphereCap.CRS != geo.SPHERE {
			return false
		}
		return twoDWontWrap(sphereCap.Circle, index)
	}
	return false
}

// twoDWontWrap runs the wrap test on the index's own grid: bit
// depth and min/max bounds come from the index options, scaled to
// 2^32 buckets across the min-max span.
func twoDWontWrap(circle geo.Circle, index *datastore.IndexEntry) bool {
	params := geo.HashParameters{
		Bits: uint(index.NumberOption("bits", 26)),
		Min:  index.NumberOption("min", -180.0),
		Max:  index.NumberOption("max", 180.0),
	}
	numBuckets := 1024 * 1024 * 1024 * 4.0
	params.Scaling = numBuckets / (params.Max - params.Min)

	conv := geo.NewHashConverter(params)
	return conv.WontWrap(circle)
}
