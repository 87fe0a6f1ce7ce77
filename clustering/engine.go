// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

// Package clustering groups nearby locations into map clusters.
//
// Distances are measured on the display surface (percent of the viewport),
// not on the ground, so the grouping follows visual density at the fixed
// zoom of the map.
package clustering

import (
	"github.com/johnlhuangP/myArea/places"
	"github.com/johnlhuangP/myArea/spatial"
)

const (
	DefaultRadius         = 8.0
	DefaultMinClusterSize = 2
)

// Options tunes a clustering pass.
type Options struct {
	// Radius is the display-space distance under which locations group.
	Radius float64 `json:"radius"`
	// MinClusterSize is the smallest group that becomes a multi-member cluster.
	MinClusterSize int `json:"min_cluster_size"`
}

// DefaultOptions returns the options used by the map view.
func DefaultOptions() Options {
	return Options{Radius: DefaultRadius, MinClusterSize: DefaultMinClusterSize}
}

func (o Options) normalized() Options {
	if o.Radius < 0 {
		o.Radius = 0
	}

	if o.MinClusterSize < 1 {
		o.MinClusterSize = 1
	}

	return o
}

// Engine clusters locations projected onto a fixed viewport.
type Engine struct {
	bounds spatial.Bounds
}

// NewEngine returns an engine projecting onto bounds.
func NewEngine(bounds spatial.Bounds) *Engine {
	return &Engine{bounds: bounds}
}

// Bounds returns the viewport the engine projects onto.
func (e *Engine) Bounds() spatial.Bounds {
	return e.bounds
}

// Cluster partitions locs into clusters with a greedy single pass over the
// input order. Each unclaimed location gathers every unclaimed location
// (itself included) within opts.Radius of it; the group becomes a cluster
// when it has at least opts.MinClusterSize members, otherwise the location
// stands alone. Claims are final, so the result depends on input order but
// is fully determined by it.
func (e *Engine) Cluster(locs []places.Location, opts Options) []Cluster {
	opts = opts.normalized()

	projected := make([]spatial.ProjectedPoint, len(locs))
	for i := range locs {
		projected[i] = e.bounds.Project(locs[i].Point())
	}

	clusters := make([]Cluster, 0, len(locs))
	claimed := make([]bool, len(locs))

	for i := range locs {
		if claimed[i] {
			continue
		}

		var group []int

		for j := range locs {
			if claimed[j] {
				continue
			}

			if j == i || projected[i].Distance(projected[j]) <= opts.Radius {
				group = append(group, j)
			}
		}

		if len(group) >= opts.MinClusterSize {
			clusters = append(clusters, newCluster(groupPrefix+locs[i].ID, locs, projected, group))

			for _, j := range group {
				claimed[j] = true
			}

			continue
		}

		clusters = append(clusters, newCluster(singlePrefix+locs[i].ID, locs, projected, []int{i}))
		claimed[i] = true
	}

	return clusters
}

func newCluster(id string, locs []places.Location, projected []spatial.ProjectedPoint, members []int) Cluster {
	c := Cluster{
		ID:        id,
		Locations: make([]places.Location, len(members)),
	}

	points := make([]spatial.ProjectedPoint, len(members))

	for k, idx := range members {
		c.Locations[k] = locs[idx]
		points[k] = projected[idx]
	}

	c.Center = spatial.Centroid(points)
	c.Bounds = spatial.BoundsOf(places.Points(c.Locations)...)

	return c
}
