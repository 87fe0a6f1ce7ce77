// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

// Package spatial holds geographic points and their projection onto the
// map surface.
package spatial

import (
	"fmt"
	"math"

	"github.com/uber/h3-go/v4"
)

const earthRadius = 6371e3 // meters

// Point represents a geographical point with latitude and longitude.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String formats the point as well-known text, longitude first.
func (p Point) String() string {
	return fmt.Sprintf("POINT(%f %f)", p.Lng, p.Lat)
}

// Scan implements sql.Scanner. It accepts the shapes DuckDB returns for a
// position: a STRUCT or POINT_2D with x (longitude) and y (latitude) fields,
// or well-known text such as "POINT (-122.4 37.7)". NULL scans as the zero
// Point.
func (p *Point) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*p = Point{}

		return nil
	case map[string]any:
		lng, okX := v["x"].(float64)
		lat, okY := v["y"].(float64)

		if !okX || !okY {
			return fmt.Errorf("spatial: point struct needs float64 x and y, got %v", v)
		}

		*p = Point{Lat: lat, Lng: lng}

		return nil
	case []byte:
		return p.scanText(string(v))
	case string:
		return p.scanText(v)
	default:
		return fmt.Errorf("spatial: cannot scan %T into Point", value)
	}
}

func (p *Point) scanText(s string) error {
	var lat, lng float64
	if _, err := fmt.Sscanf(s, "POINT (%f %f)", &lng, &lat); err != nil {
		return fmt.Errorf("spatial: parsing %q: %w", s, err)
	}

	*p = Point{Lat: lat, Lng: lng}

	return nil
}

// Valid reports whether the point lies within the WGS84 coordinate ranges.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// HaversineDistance returns the great-circle distance to other, in meters.
func (p Point) HaversineDistance(other Point) float64 {
	sinLat := math.Sin(radians(other.Lat-p.Lat) / 2)
	sinLng := math.Sin(radians(other.Lng-p.Lng) / 2)
	h := sinLat*sinLat + math.Cos(radians(p.Lat))*math.Cos(radians(other.Lat))*sinLng*sinLng

	return 2 * earthRadius * math.Asin(math.Sqrt(math.Min(1, h)))
}

// Cell returns the H3 cell containing the point at the given resolution.
func (p Point) Cell(res int) (h3.Cell, error) {
	cell, err := h3.LatLngToCell(h3.NewLatLng(p.Lat, p.Lng), res)
	if err != nil {
		return 0, fmt.Errorf("spatial: converting %s to h3 cell at res %d: %w", p, res, err)
	}

	return cell, nil
}
