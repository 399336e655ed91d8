//  Copyright (c) 2026 EddieWu
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

/*
Package geo provides the geometry payloads carried by geo match
predicates and the region tests index selection needs. Spherical
geometries are backed by the s2 library.
*/
package geo

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

/*
Coordinate reference system for a geometry. FLAT is legacy planar
coordinates, SPHERE is WGS84-style spherical coordinates.
*/
type CRS int

const (
	UNSET = CRS(iota)
	FLAT
	SPHERE
)

func (this CRS) String() string {
	return _CRS_NAMES[this]
}

var _CRS_NAMES = []string{
	UNSET:  "unset",
	FLAT:   "flat",
	SPHERE: "sphere",
}

// Point is (longitude, latitude) in degrees for spherical CRS, or
// plain planar coordinates for flat CRS.
type Point struct {
	X float64
	Y float64
}

// Circle radius is in radians for spherical CRS, and in the same
// planar units as the center for flat CRS.
type Circle struct {
	Center Point
	Radius float64
}

type Box struct {
	Min Point
	Max Point
}

type PointWithCRS struct {
	Point Point
	CRS   CRS
}

func (this *PointWithCRS) S2Point() s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(this.Point.Y, this.Point.X))
}

type BoxWithCRS struct {
	Box Box
	CRS CRS
}

type PolygonWithCRS struct {
	Vertices []Point
	CRS      CRS
}

func (this *PolygonWithCRS) S2Loop() *s2.Loop {
	points := make([]s2.Point, 0, len(this.Vertices))
	for _, v := range this.Vertices {
		points = append(points, s2.PointFromLatLng(s2.LatLngFromDegrees(v.Y, v.X)))
	}
	return s2.LoopFromPoints(points)
}

type CapWithCRS struct {
	Circle Circle
	CRS    CRS
}

func (this *CapWithCRS) S2Cap() s2.Cap {
	center := s2.PointFromLatLng(s2.LatLngFromDegrees(this.Circle.Center.Y, this.Circle.Center.X))
	return s2.CapFromCenterAngle(center, s1.Angle(this.Circle.Radius))
}

/*
GeometryContainer holds exactly one geometry in one of several
representations. Region tests below drive index-family selection:
a 2dsphere index needs a spherical region, a 2d index needs a flat
region (or a non-wrapping spherical cap, which the planner checks
separately).
*/
type GeometryContainer struct {
	point   *PointWithCRS
	box     *BoxWithCRS
	polygon *PolygonWithCRS
	cap     *CapWithCRS
}

func NewPointGeometry(point *PointWithCRS) *GeometryContainer {
	return &GeometryContainer{point: point}
}

func NewBoxGeometry(box *BoxWithCRS) *GeometryContainer {
	return &GeometryContainer{box: box}
}

func NewPolygonGeometry(polygon *PolygonWithCRS) *GeometryContainer {
	return &GeometryContainer{polygon: polygon}
}

func NewCapGeometry(sphereCap *CapWithCRS) *GeometryContainer {
	return &GeometryContainer{cap: sphereCap}
}

func (this *GeometryContainer) Cap() *CapWithCRS {
	return this.cap
}

// HasFlatRegion reports whether the geometry has a planar-region
// representation a 2d index can answer directly.
func (this *GeometryContainer) HasFlatRegion() bool {
	switch {
	case this.point != nil:
		return this.point.CRS == FLAT
	case this.box != nil:
		return this.box.CRS == FLAT
	case this.polygon != nil:
		return this.polygon.CRS == FLAT
	case this.cap != nil:
		return this.cap.CRS == FLAT
	}
	return false
}

// HasS2Region reports whether the geometry has a spherical-region
// representation a 2dsphere index can answer.
func (this *GeometryContainer) HasS2Region() bool {
	switch {
	case this.point != nil:
		return this.point.CRS == SPHERE
	case this.polygon != nil:
		return this.polygon.CRS == SPHERE
	case this.cap != nil:
		return this.cap.CRS == SPHERE
	}
	return false
}

// S2Region returns the spherical region, if the geometry has one.
func (this *GeometryContainer) S2Region() (s2.Region, bool) {
	if !this.HasS2Region() {
		return nil, false
	}
	switch {
	case this.point != nil:
		return this.point.S2Point(), true
	case this.polygon != nil:
		return this.polygon.S2Loop(), true
	case this.cap != nil:
		return this.cap.S2Cap(), true
	}
	return nil, false
}
