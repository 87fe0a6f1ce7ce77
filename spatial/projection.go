// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"fmt"
	"math"
)

// projectionFallback is used on an axis whose span is zero or whose result
// is not a finite number.
const projectionFallback = 50.0

// BayArea is the default viewport of the map.
var BayArea = Bounds{
	North: 37.9,
	South: 37.4,
	East:  -122.0,
	West:  -122.7,
}

// Bounds is a geographic rectangle, in degrees.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// BoundsOf returns the smallest Bounds containing every point. It returns
// the zero Bounds for an empty slice.
func BoundsOf(points ...Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}

	b := Bounds{
		North: points[0].Lat,
		South: points[0].Lat,
		East:  points[0].Lng,
		West:  points[0].Lng,
	}

	for _, p := range points[1:] {
		b.North = math.Max(b.North, p.Lat)
		b.South = math.Min(b.South, p.Lat)
		b.East = math.Max(b.East, p.Lng)
		b.West = math.Min(b.West, p.Lng)
	}

	return b
}

func (b Bounds) String() string {
	return fmt.Sprintf("N%.4f S%.4f E%.4f W%.4f", b.North, b.South, b.East, b.West)
}

// Degenerate reports whether the bounds have zero width or height.
func (b Bounds) Degenerate() bool {
	return b.East == b.West || b.North == b.South
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Point {
	return Point{Lat: (b.North + b.South) / 2, Lng: (b.East + b.West) / 2}
}

// Diagonal returns the haversine length of the south-west to north-east
// diagonal, in meters.
func (b Bounds) Diagonal() float64 {
	return Point{Lat: b.South, Lng: b.West}.HaversineDistance(Point{Lat: b.North, Lng: b.East})
}

// ProjectedPoint is a position on the display surface, both axes in [0,100].
type ProjectedPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the euclidean distance between two projected points.
func (p ProjectedPoint) Distance(other ProjectedPoint) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Project maps a geographic point onto the display surface described by b.
// x grows eastwards and y grows southwards. Points outside b are clamped to
// the nearest edge.
func (b Bounds) Project(p Point) ProjectedPoint {
	return ProjectedPoint{
		X: interpolate(p.Lng-b.West, b.East-b.West),
		Y: interpolate(b.North-p.Lat, b.North-b.South),
	}
}

func interpolate(offset, span float64) float64 {
	if span == 0 {
		return projectionFallback
	}

	v := offset / span * 100
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return projectionFallback
	}

	return math.Max(0, math.Min(100, v))
}

// Centroid returns the arithmetic mean of the given projected points.
func Centroid(points []ProjectedPoint) ProjectedPoint {
	if len(points) == 0 {
		return ProjectedPoint{}
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}

	return ProjectedPoint{
		X: sumX / float64(len(points)),
		Y: sumY / float64(len(points)),
	}
}
