// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package clustering

import (
	"github.com/johnlhuangP/myArea/places"
	"github.com/johnlhuangP/myArea/spatial"
)

const (
	groupPrefix  = "cluster-"
	singlePrefix = "single-"
)

// SizeClass is the marker size used to draw a cluster.
type SizeClass string

const (
	SizeSmall  SizeClass = "sm"
	SizeMedium SizeClass = "md"
	SizeLarge  SizeClass = "lg"
)

// Cluster is a group of one or more locations drawn as a single marker.
type Cluster struct {
	// ID is derived from the location that started the cluster. Locations
	// sharing an id yield clusters sharing an id, and those clusters then
	// share one expansion state and resolve to the first of them by id.
	ID        string                 `json:"id"`
	Locations []places.Location      `json:"locations"`
	Center    spatial.ProjectedPoint `json:"center"`
	Bounds    spatial.Bounds         `json:"bounds"`
}

// Size returns the number of members.
func (c *Cluster) Size() int {
	return len(c.Locations)
}

// IsSingle reports whether the cluster holds exactly one location.
func (c *Cluster) IsSingle() bool {
	return len(c.Locations) == 1
}

// Contains reports whether the location with the given id is a member.
func (c *Cluster) Contains(id string) bool {
	return c.IndexOf(id) >= 0
}

// IndexOf returns the member position of the location with the given id, or -1.
func (c *Cluster) IndexOf(id string) int {
	for i := range c.Locations {
		if c.Locations[i].ID == id {
			return i
		}
	}

	return -1
}

// SizeClass buckets the cluster by member count.
func (c *Cluster) SizeClass() SizeClass {
	switch n := c.Size(); {
	case n >= 10:
		return SizeLarge
	case n >= 5:
		return SizeMedium
	default:
		return SizeSmall
	}
}

// Categories returns the distinct member categories in first-seen order,
// at most limit of them (all when limit <= 0). Unknown categories are
// reported as places.CategoryOther.
func (c *Cluster) Categories(limit int) []places.Category {
	seen := make(map[places.Category]bool)

	var out []places.Category

	for i := range c.Locations {
		cat := c.Locations[i].Category.Normalize()
		if seen[cat] {
			continue
		}

		seen[cat] = true

		out = append(out, cat)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out
}

// Span returns the length in meters of the diagonal of the cluster's
// geographic bounding box.
func (c *Cluster) Span() float64 {
	return c.Bounds.Diagonal()
}
