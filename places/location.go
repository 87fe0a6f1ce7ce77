// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package places

import (
	"github.com/johnlhuangP/myArea/spatial"
)

// Location is a recommended place shown on the map. Locations are owned by
// the data layer; the map only reads them.
type Location struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Category    Category `json:"category"`
	Address     string   `json:"address"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	City        string   `json:"city"`
	Rating      *int     `json:"rating,omitempty"`
	PriceLevel  *int     `json:"price_level,omitempty"`
	Tags        []string `json:"tags"`
	ImageURL    *string  `json:"image_url,omitempty"`
	WebsiteURL  *string  `json:"website_url,omitempty"`
}

// Point returns the geographic position of the location.
func (l Location) Point() spatial.Point {
	return spatial.Point{Lat: l.Latitude, Lng: l.Longitude}
}

// Points returns the geographic positions of locs, in order.
func Points(locs []Location) []spatial.Point {
	points := make([]spatial.Point, len(locs))
	for i := range locs {
		points[i] = locs[i].Point()
	}

	return points
}
