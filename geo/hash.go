//  Copyright (c) 2026 EddieWu
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package geo

import (
	"math"

	"github.com/golang/geo/s1"
)

/*
HashParameters describe the fixed-point grid a 2d index hashes
coordinates onto: Bits cells of precision over the [Min, Max] span,
with Scaling buckets per coordinate unit.
*/
type HashParameters struct {
	Bits    uint
	Min     float64
	Max     float64
	Scaling float64
}

/*
HashConverter converts between coordinates and grid cells. Index
selection only needs its error terms: the worst-case distance between
a point and the center of its cell, used as a fudge factor when
deciding whether a circle stays clear of the coordinate boundary.
*/
type HashConverter struct {
	params      HashParameters
	err         float64
	errorSphere s1.Angle
}

func NewHashConverter(params HashParameters) *HashConverter {
	this := &HashConverter{
		params: params,
	}

	// A cell is 1/scaling units on a side, so unhashing to the cell
	// center is off by at most the cell diagonal. Epsilon is 1/1000th
	// of a cell against rounding in the hash arithmetic itself.
	cell := 1.0 / params.Scaling
	epsilon := 0.001 * cell
	this.err = cell*math.Sqrt2 + epsilon
	this.errorSphere = s1.Angle(deg2rad(this.err))
	return this
}

func (this *HashConverter) Error() float64 {
	return this.err
}

func (this *HashConverter) ErrorSphere() s1.Angle {
	return this.errorSphere
}

/*
WontWrap reports whether a spherical cap, widened by the converter's
error, stays strictly inside (-180, 180) x (-90, 90). A 2d index
cannot answer queries that wrap past the edge of its grid.
*/
func (this *HashConverter) WontWrap(circle Circle) bool {
	yscandist := rad2deg(circle.Radius) + this.errorSphere.Radians()
	xscandist := computeXScanDistance(circle.Center.Y, yscandist)
	return circle.Center.X+xscandist < 180 &&
		circle.Center.X-xscandist > -180 &&
		circle.Center.Y+yscandist < 90 &&
		circle.Center.Y-yscandist > -90
}

// computeXScanDistance widens a latitude scan distance into the
// longitude scan distance at latitude y, clamped at +-89 degrees.
// This overestimates for large distances far from the equator.
func computeXScanDistance(y, maxDistDegrees float64) float64 {
	return maxDistDegrees / math.Min(
		math.Cos(deg2rad(math.Min(89.0, y+maxDistDegrees))),
		math.Cos(deg2rad(math.Max(-89.0, y-maxDistDegrees))))
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

func rad2deg(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}
