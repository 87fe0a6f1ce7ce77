// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

// Package mapview runs one rendering session of the clustered map.
//
// A Session owns the category filter, the clustering options and the
// interaction state. Whenever the locations, the filter or the options change
// the cluster partition is recomputed from scratch and the interaction state
// is reconciled against it. A Session is not safe for concurrent use; callers
// feed it one user event at a time.
package mapview

import (
	"errors"
	"fmt"

	"github.com/johnlhuangP/myArea/clustering"
	"github.com/johnlhuangP/myArea/filter"
	"github.com/johnlhuangP/myArea/places"
	"github.com/johnlhuangP/myArea/presentation"
	"github.com/johnlhuangP/myArea/spatial"
)

// CellResolution is the H3 resolution of the cell reported for each cluster.
const CellResolution = 8

// ErrUnknownCluster is returned for a cluster id not in the current partition.
var ErrUnknownCluster = errors.New("mapview: unknown cluster")

// ErrUnknownLocation is returned when a location is not a member of the
// cluster it was selected from.
var ErrUnknownLocation = errors.New("mapview: unknown location")

// Session is the state of one map on screen.
type Session struct {
	engine        *clustering.Engine
	opts          clustering.Options
	authenticated bool

	locations []places.Location
	filter    filter.Filter
	clusters  []clustering.Cluster
	ui        presentation.State
}

// NewSession returns an empty session for the given viewport.
func NewSession(bounds spatial.Bounds, opts clustering.Options, authenticated bool) *Session {
	return &Session{
		engine:        clustering.NewEngine(bounds),
		opts:          opts,
		authenticated: authenticated,
	}
}

func (s *Session) recompute() {
	s.clusters = s.engine.Cluster(s.filter.Apply(s.locations), s.opts)
	s.ui = s.ui.Reconcile(s.clusters)
}

// CanAddLocation reports whether the host should offer adding a location.
func (s *Session) CanAddLocation() bool {
	return s.authenticated
}

// Bounds returns the viewport of the session.
func (s *Session) Bounds() spatial.Bounds {
	return s.engine.Bounds()
}

// SetLocations replaces the locations shown on the map.
func (s *Session) SetLocations(locs []places.Location) {
	s.locations = append([]places.Location(nil), locs...)
	s.recompute()
}

// Locations returns every location of the session, visible or not.
func (s *Session) Locations() []places.Location {
	return s.locations
}

// Options returns the clustering options.
func (s *Session) Options() clustering.Options {
	return s.opts
}

// SetOptions changes the clustering options.
func (s *Session) SetOptions(opts clustering.Options) {
	s.opts = opts
	s.recompute()
}

// Filter returns the active category filter.
func (s *Session) Filter() filter.Filter {
	return s.filter
}

// SetFilter replaces the category filter.
func (s *Session) SetFilter(f filter.Filter) {
	if f == s.filter {
		return
	}

	s.filter = f
	s.recompute()
}

// ToggleCategory switches one category of the filter on or off.
func (s *Session) ToggleCategory(c places.Category) {
	s.SetFilter(s.filter.Toggle(c))
}

// ClearFilters removes every category restriction.
func (s *Session) ClearFilters() {
	s.SetFilter(s.filter.Clear())
}

// SelectAllCategories activates every category present on the map.
func (s *Session) SelectAllCategories() {
	s.SetFilter(s.filter.SelectAll(s.locations))
}

// Summary returns the figures of the filter panel.
func (s *Session) Summary() filter.Summary {
	return s.filter.Summarize(s.locations)
}

// Clusters returns the current partition of the visible locations.
func (s *Session) Clusters() []clustering.Cluster {
	return s.clusters
}

// Cluster looks up a cluster of the current partition.
func (s *Session) Cluster(id string) (clustering.Cluster, error) {
	for i := range s.clusters {
		if s.clusters[i].ID == id {
			return s.clusters[i], nil
		}
	}

	return clustering.Cluster{}, fmt.Errorf("%w: %s", ErrUnknownCluster, id)
}

// State returns the interaction state.
func (s *Session) State() presentation.State {
	return s.ui
}

// Activate handles a click on a cluster marker. It returns the selected
// location when the click resolves to one.
func (s *Session) Activate(clusterID string) (places.Location, bool, error) {
	c, err := s.Cluster(clusterID)
	if err != nil {
		return places.Location{}, false, err
	}

	var (
		loc places.Location
		ok  bool
	)

	s.ui, loc, ok = s.ui.Activate(c)

	return loc, ok, nil
}

// Select handles a click on a member of an expanded cluster.
func (s *Session) Select(clusterID, locationID string) (places.Location, bool, error) {
	c, err := s.Cluster(clusterID)
	if err != nil {
		return places.Location{}, false, err
	}

	if !c.Contains(locationID) {
		return places.Location{}, false, fmt.Errorf("%w: %s in %s", ErrUnknownLocation, locationID, clusterID)
	}

	var (
		loc places.Location
		ok  bool
	)

	s.ui, loc, ok = s.ui.Select(c, locationID)

	return loc, ok, nil
}

// Dismiss collapses an expanded cluster.
func (s *Session) Dismiss(clusterID string) error {
	c, err := s.Cluster(clusterID)
	if err != nil {
		return err
	}

	s.ui = s.ui.Dismiss(c)

	return nil
}

// Hover marks a location as hovered.
func (s *Session) Hover(locationID string) {
	s.ui = s.ui.Hover(locationID)
}

// Unhover clears the hovered location.
func (s *Session) Unhover() {
	s.ui = s.ui.Unhover()
}

// Selected returns the last selected location while it is still visible.
func (s *Session) Selected() (places.Location, bool) {
	id, ok := s.ui.Selected()
	if !ok {
		return places.Location{}, false
	}

	for i := range s.clusters {
		if idx := s.clusters[i].IndexOf(id); idx >= 0 {
			return s.clusters[i].Locations[idx], true
		}
	}

	return places.Location{}, false
}

// ClusterView is a cluster together with what is needed to draw it.
type ClusterView struct {
	clustering.Cluster
	Phase       presentation.Phase       `json:"phase"`
	Highlighted bool                     `json:"highlighted"`
	SizeClass   clustering.SizeClass     `json:"size_class"`
	Categories  []places.Category        `json:"categories"`
	Cell        string                   `json:"cell,omitempty"`
	Span        float64                  `json:"span_m"`
	Members     []presentation.Placement `json:"members,omitempty"`
}

// Views returns the drawable form of every cluster, in partition order.
// Members are laid out only for expanded clusters.
func (s *Session) Views() []ClusterView {
	views := make([]ClusterView, 0, len(s.clusters))

	for _, c := range s.clusters {
		v := ClusterView{
			Cluster:     c,
			Phase:       s.ui.Phase(c.ID),
			Highlighted: s.ui.Highlighted(c),
			SizeClass:   c.SizeClass(),
			Categories:  c.Categories(3),
			Span:        c.Span(),
		}

		if cell, err := c.Bounds.Center().Cell(CellResolution); err == nil {
			v.Cell = cell.String()
		}

		if v.Phase == presentation.Expanded {
			v.Members = presentation.Layout(c, presentation.DefaultSpreadRadius)
		}

		views = append(views, v)
	}

	return views
}
