// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package presentation

import (
	"math"

	"github.com/johnlhuangP/myArea/clustering"
	"github.com/johnlhuangP/myArea/places"
)

// DefaultSpreadRadius is the distance, in display pixels, between an
// expanded cluster's center and its members.
const DefaultSpreadRadius = 40.0

// Placement is where one member of an expanded cluster is drawn, as an
// offset from the cluster center.
type Placement struct {
	Location places.Location `json:"location"`
	// Angle is in radians, clockwise from the positive x axis since y grows
	// downwards on screen.
	Angle float64 `json:"angle"`
	DX    float64 `json:"dx"`
	DY    float64 `json:"dy"`
}

// Degrees returns the placement angle in degrees.
func (p Placement) Degrees() float64 {
	return p.Angle * 180 / math.Pi
}

// Layout spreads the members of c evenly on a circle of the given radius:
// member i of n sits at angle i/n of a full turn. The result is derived from
// the cluster each time and is never stored.
func Layout(c clustering.Cluster, radius float64) []Placement {
	n := c.Size()
	out := make([]Placement, n)

	for i := range c.Locations {
		angle := float64(i) / float64(n) * 2 * math.Pi
		out[i] = Placement{
			Location: c.Locations[i],
			Angle:    angle,
			DX:       math.Cos(angle) * radius,
			DY:       math.Sin(angle) * radius,
		}
	}

	return out
}
