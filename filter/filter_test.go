// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"fmt"
	"testing"

	"github.com/johnlhuangP/myArea/places"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []places.Location {
	var locs []places.Location

	for i := 0; i < 5; i++ {
		locs = append(locs, places.Location{ID: fmt.Sprintf("r%d", i), Category: places.CategoryRestaurant})
	}

	for i := 0; i < 3; i++ {
		locs = append(locs, places.Location{ID: fmt.Sprintf("p%d", i), Category: places.CategoryPark})
	}

	return locs
}

func TestRestaurantsOnly(t *testing.T) {
	locs := sample()
	f := Filter{}.Toggle(places.CategoryRestaurant)

	assert.Equal(t, 5, f.VisibleCount(locs))
	assert.Equal(t, map[places.Category]int{
		places.CategoryRestaurant: 5,
		places.CategoryPark:       3,
	}, CountsByCategory(locs))

	visible := f.Apply(locs)
	require.Len(t, visible, 5)

	for _, l := range visible {
		assert.Equal(t, places.CategoryRestaurant, l.Category)
	}

	summary := f.Summarize(locs)
	assert.Equal(t, 5, summary.Visible)
	assert.Equal(t, 8, summary.Total)
	assert.Equal(t, 3, summary.Counts[places.CategoryPark])
	assert.Equal(t, "Showing 5 of 8 locations", summary.String())
}

func TestEmptyFilterShowsEverything(t *testing.T) {
	locs := sample()
	var f Filter

	assert.True(t, f.IsEmpty())
	assert.Equal(t, len(locs), f.VisibleCount(locs))
	assert.Equal(t, locs, f.Apply(locs))
}

func TestToggleTwiceIsIdentity(t *testing.T) {
	locs := sample()

	for _, start := range []Filter{{}, Of(places.CategoryPark), Of(places.CategoryBar, places.CategoryCafe)} {
		for _, c := range places.Categories {
			again := start.Toggle(c).Toggle(c)
			assert.Equal(t, start, again, "toggling %s twice from %s", c, start)
			assert.Equal(t, start.Apply(locs), again.Apply(locs))
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	locs := sample()
	f := Of(places.CategoryPark)

	once := f.Apply(locs)
	assert.Equal(t, once, f.Apply(once))
}

func TestToggleDoesNotMutate(t *testing.T) {
	f := Of(places.CategoryPark)
	g := f.Toggle(places.CategoryCafe)

	assert.True(t, g.Has(places.CategoryCafe))
	assert.False(t, f.Has(places.CategoryCafe))
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, 2, g.Len())
}

func TestClear(t *testing.T) {
	f := Of(places.CategoryPark, places.CategoryBeach)

	assert.Equal(t, Filter{}, f.Clear())
	assert.True(t, f.Clear().IsEmpty())
}

func TestUnknownCategoryFallsBackToOther(t *testing.T) {
	odd := places.Location{ID: "v", Category: "volcano"}
	locs := append(sample(), odd)

	assert.True(t, Of(places.CategoryOther).IsVisible(odd))
	assert.False(t, Of(places.CategoryPark).IsVisible(odd))
	assert.Equal(t, 1, CountsByCategory(locs)[places.CategoryOther])
	assert.Equal(t, Of(places.CategoryOther), Filter{}.Toggle("volcano"))
}

func TestActiveOrder(t *testing.T) {
	f := Of(places.CategoryOther, places.CategoryRestaurant, places.CategoryHike)

	assert.Equal(t, []places.Category{places.CategoryRestaurant, places.CategoryHike, places.CategoryOther}, f.Active())
	assert.Nil(t, Filter{}.Active())
}

func TestAvailableAndSelectAll(t *testing.T) {
	locs := []places.Location{
		{ID: "1", Category: places.CategoryPark},
		{ID: "2", Category: places.CategoryCafe},
		{ID: "3", Category: places.CategoryPark},
	}

	assert.Equal(t, []places.Category{places.CategoryPark, places.CategoryCafe}, Available(locs))

	all := Filter{}.SelectAll(locs)
	assert.Equal(t, Of(places.CategoryCafe, places.CategoryPark), all)
	assert.Equal(t, 3, all.VisibleCount(locs))
}

func TestEmptyInput(t *testing.T) {
	f := Of(places.CategoryPark)

	assert.Empty(t, CountsByCategory(nil))
	assert.Zero(t, f.VisibleCount(nil))
	assert.Empty(t, f.Apply(nil))
	assert.Empty(t, Available(nil))
}
