// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

// Package presentation holds the interaction state of clustered markers.
//
// State is a value owned by the caller. Every transition returns a new State
// and leaves the receiver untouched, so a sequence of user events can be
// replayed and checked without a rendering harness.
package presentation

import (
	"maps"

	"github.com/johnlhuangP/myArea/clustering"
	"github.com/johnlhuangP/myArea/places"
)

// Phase is the display phase of one cluster.
type Phase int

const (
	Collapsed Phase = iota
	Expanded
)

func (p Phase) String() string {
	if p == Expanded {
		return "expanded"
	}

	return "collapsed"
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// State is the interaction state of one rendering session. The zero value
// has every cluster collapsed, nothing hovered and nothing selected.
type State struct {
	expanded map[string]bool
	hovered  string
	selected string
}

func (s State) with(id string, expanded bool) State {
	next := s
	next.expanded = maps.Clone(s.expanded)

	if expanded {
		if next.expanded == nil {
			next.expanded = make(map[string]bool)
		}

		next.expanded[id] = true
	} else {
		delete(next.expanded, id)

		if len(next.expanded) == 0 {
			next.expanded = nil
		}
	}

	return next
}

// Phase returns the phase of the cluster with the given id.
func (s State) Phase(clusterID string) Phase {
	if s.expanded[clusterID] {
		return Expanded
	}

	return Collapsed
}

// ExpandedCount returns the number of expanded clusters.
func (s State) ExpandedCount() int {
	return len(s.expanded)
}

// Selected returns the id of the last selected location, if any.
func (s State) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

// Hovered returns the id of the hovered location, if any.
func (s State) Hovered() (string, bool) {
	return s.hovered, s.hovered != ""
}

// Activate handles a click on a cluster marker. A multi-member cluster
// expands and nothing is emitted. A single-member cluster emits its only
// location, which becomes the selection.
func (s State) Activate(c clustering.Cluster) (State, places.Location, bool) {
	switch c.Size() {
	case 0:
		return s, places.Location{}, false
	case 1:
		next := s
		next.selected = c.Locations[0].ID

		return next, c.Locations[0], true
	default:
		if s.Phase(c.ID) == Expanded {
			return s, places.Location{}, false
		}

		return s.with(c.ID, true), places.Location{}, false
	}
}

// Select handles a click on a member of an expanded cluster: the member is
// emitted and the cluster collapses. Members of a collapsed cluster are not
// on screen, so selecting one does nothing. On a single-member cluster Select
// behaves like Activate.
func (s State) Select(c clustering.Cluster, locationID string) (State, places.Location, bool) {
	idx := c.IndexOf(locationID)
	if idx < 0 {
		return s, places.Location{}, false
	}

	if c.IsSingle() {
		return s.Activate(c)
	}

	if s.Phase(c.ID) != Expanded {
		return s, places.Location{}, false
	}

	next := s.with(c.ID, false)
	next.selected = locationID

	return next, c.Locations[idx], true
}

// Dismiss collapses a cluster without selecting anything, as when the user
// clicks outside of it or on its close button.
func (s State) Dismiss(c clustering.Cluster) State {
	if s.Phase(c.ID) == Collapsed {
		return s
	}

	return s.with(c.ID, false)
}

// Hover marks a location as hovered.
func (s State) Hover(locationID string) State {
	next := s
	next.hovered = locationID

	return next
}

// Unhover clears the hovered location.
func (s State) Unhover() State {
	return s.Hover("")
}

// Highlighted reports whether the cluster holds the selected or the hovered
// location; such clusters are drawn on top and emphasized.
func (s State) Highlighted(c clustering.Cluster) bool {
	return (s.selected != "" && c.Contains(s.selected)) ||
		(s.hovered != "" && c.Contains(s.hovered))
}

// Reconcile carries the state over to a freshly computed set of clusters.
// Cluster ids are derived from the member that started each cluster, so an
// expanded cluster stays expanded when a cluster with the same id still
// exists and still has more than one member; every other expansion is
// dropped. Hover and selection are kept only while their location is still
// on the map.
func (s State) Reconcile(clusters []clustering.Cluster) State {
	next := State{}

	for i := range clusters {
		c := &clusters[i]

		if s.expanded[c.ID] && c.Size() > 1 {
			next = next.with(c.ID, true)
		}

		if s.selected != "" && c.Contains(s.selected) {
			next.selected = s.selected
		}

		if s.hovered != "" && c.Contains(s.hovered) {
			next.hovered = s.hovered
		}
	}

	return next
}
