// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

// Package filter restricts which locations are visible by category.
package filter

import (
	"fmt"

	"github.com/johnlhuangP/myArea/places"
)

// Filter is the set of active categories. The zero value has no active
// category and lets every location through. Filter values are immutable and
// comparable with ==.
type Filter struct {
	mask uint32
}

// Of returns a filter with the given categories active.
func Of(categories ...places.Category) Filter {
	var f Filter
	for _, c := range categories {
		f.mask |= bit(c)
	}

	return f
}

func bit(c places.Category) uint32 {
	return 1 << uint(c.Normalize().Index())
}

// Toggle returns a copy of f with c switched on or off.
func (f Filter) Toggle(c places.Category) Filter {
	return Filter{mask: f.mask ^ bit(c)}
}

// Clear returns the empty filter.
func (f Filter) Clear() Filter {
	return Filter{}
}

// SelectAll returns a filter with every category present in locs active.
func (f Filter) SelectAll(locs []places.Location) Filter {
	return Of(Available(locs)...)
}

// IsEmpty reports whether no category is active.
func (f Filter) IsEmpty() bool {
	return f.mask == 0
}

// Has reports whether c is active.
func (f Filter) Has(c places.Category) bool {
	return f.mask&bit(c) != 0
}

// Len returns the number of active categories.
func (f Filter) Len() int {
	n := 0
	for _, c := range places.Categories {
		if f.Has(c) {
			n++
		}
	}

	return n
}

// Active returns the active categories in display order.
func (f Filter) Active() []places.Category {
	var out []places.Category

	for _, c := range places.Categories {
		if f.Has(c) {
			out = append(out, c)
		}
	}

	return out
}

// IsVisible reports whether loc passes the filter.
func (f Filter) IsVisible(loc places.Location) bool {
	return f.IsEmpty() || f.Has(loc.Category)
}

// Apply returns the visible locations, in input order.
func (f Filter) Apply(locs []places.Location) []places.Location {
	out := make([]places.Location, 0, len(locs))
	for i := range locs {
		if f.IsVisible(locs[i]) {
			out = append(out, locs[i])
		}
	}

	return out
}

// VisibleCount returns how many locations pass the filter.
func (f Filter) VisibleCount(locs []places.Location) int {
	n := 0
	for i := range locs {
		if f.IsVisible(locs[i]) {
			n++
		}
	}

	return n
}

func (f Filter) String() string {
	return fmt.Sprint(f.Active())
}

// CountsByCategory counts locs per category, ignoring any filter, so badges
// always show the real totals.
func CountsByCategory(locs []places.Location) map[places.Category]int {
	counts := make(map[places.Category]int)
	for i := range locs {
		counts[locs[i].Category.Normalize()]++
	}

	return counts
}

// Available returns the categories present in locs, in first-seen order.
func Available(locs []places.Location) []places.Category {
	seen := make(map[places.Category]bool)

	var out []places.Category

	for i := range locs {
		c := locs[i].Category.Normalize()
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	return out
}

// Summary is what the filter panel displays.
type Summary struct {
	Visible int                     `json:"visible"`
	Total   int                     `json:"total"`
	Counts  map[places.Category]int `json:"counts"`
	Active  []places.Category       `json:"active"`
}

// Summarize computes the filter panel figures for locs.
func (f Filter) Summarize(locs []places.Location) Summary {
	return Summary{
		Visible: f.VisibleCount(locs),
		Total:   len(locs),
		Counts:  CountsByCategory(locs),
		Active:  f.Active(),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("Showing %d of %d locations", s.Visible, s.Total)
}
