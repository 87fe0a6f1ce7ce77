// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package clustering

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/johnlhuangP/myArea/places"
	"github.com/johnlhuangP/myArea/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(id string, lat, lng float64) places.Location {
	return places.Location{ID: id, Name: id, Category: places.CategoryRestaurant, Latitude: lat, Longitude: lng}
}

func ids(c Cluster) []string {
	out := make([]string, 0, c.Size())
	for _, l := range c.Locations {
		out = append(out, l.ID)
	}

	return out
}

func randomLocations(r *rand.Rand, n int) []places.Location {
	locs := make([]places.Location, n)
	for i := range locs {
		// slightly larger than the viewport so some points clamp
		lat := 37.35 + r.Float64()*0.6
		lng := -122.75 + r.Float64()*0.8

		if i > 0 && r.Intn(10) == 0 {
			// duplicate coordinates of an earlier location
			prev := locs[r.Intn(i)]
			lat, lng = prev.Latitude, prev.Longitude
		}

		locs[i] = loc(fmt.Sprintf("loc-%03d", i), lat, lng)
	}

	return locs
}

func TestClusterScenarioBayArea(t *testing.T) {
	engine := NewEngine(spatial.BayArea)
	locs := []places.Location{
		loc("a", 37.700, -122.400),
		loc("b", 37.701, -122.401),
		loc("c", 37.42, -122.68),
	}

	clusters := engine.Cluster(locs, DefaultOptions())
	require.Len(t, clusters, 2)

	assert.Equal(t, "cluster-a", clusters[0].ID)
	assert.Equal(t, []string{"a", "b"}, ids(clusters[0]))
	assert.Equal(t, "single-c", clusters[1].ID)
	assert.Equal(t, []string{"c"}, ids(clusters[1]))

	pa := spatial.BayArea.Project(locs[0].Point())
	pb := spatial.BayArea.Project(locs[1].Point())
	assert.InDelta(t, (pa.X+pb.X)/2, clusters[0].Center.X, 1e-9)
	assert.InDelta(t, (pa.Y+pb.Y)/2, clusters[0].Center.Y, 1e-9)

	assert.Equal(t, spatial.Bounds{North: 37.701, South: 37.700, East: -122.400, West: -122.401}, clusters[0].Bounds)
	assert.Equal(t, spatial.BayArea.Project(locs[2].Point()), clusters[1].Center)
	assert.Equal(t, spatial.Bounds{North: 37.42, South: 37.42, East: -122.68, West: -122.68}, clusters[1].Bounds)
}

func TestClusterEmpty(t *testing.T) {
	clusters := NewEngine(spatial.BayArea).Cluster(nil, DefaultOptions())

	assert.Empty(t, clusters)
}

func TestClusterPartition(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	engine := NewEngine(spatial.BayArea)

	for round := 0; round < 50; round++ {
		locs := randomLocations(r, 1+r.Intn(60))
		opts := Options{Radius: r.Float64() * 20, MinClusterSize: 1 + r.Intn(4)}

		clusters := engine.Cluster(locs, opts)

		seen := make(map[string]int)
		for _, c := range clusters {
			require.NotEmpty(t, c.Locations)

			for _, l := range c.Locations {
				seen[l.ID]++
			}
		}

		require.Len(t, seen, len(locs), "round %d", round)

		for id, n := range seen {
			assert.Equal(t, 1, n, "round %d: %s appears %d times", round, id, n)
		}
	}
}

func TestClusterPartitionWithDuplicateIDs(t *testing.T) {
	locs := []places.Location{
		loc("dup", 37.7, -122.4),
		loc("dup", 37.5, -122.1),
		loc("x", 37.7, -122.4),
	}

	clusters := NewEngine(spatial.BayArea).Cluster(locs, DefaultOptions())

	total := 0
	for _, c := range clusters {
		total += c.Size()
	}

	assert.Equal(t, len(locs), total)

	require.Len(t, clusters, 2)
	assert.Equal(t, "cluster-dup", clusters[0].ID)
	assert.Equal(t, "single-dup", clusters[1].ID)
	assert.Equal(t, []string{"dup", "x"}, ids(clusters[0]))
}

func TestClusterDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	locs := randomLocations(r, 80)
	engine := NewEngine(spatial.BayArea)

	first := engine.Cluster(locs, DefaultOptions())

	for i := 0; i < 5; i++ {
		again := engine.Cluster(locs, DefaultOptions())
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("clustering is not deterministic (-first +again):\n%s", diff)
		}
	}
}

func TestClusterRadiusZero(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	locs := make([]places.Location, 40)

	for i := range locs {
		locs[i] = loc(fmt.Sprintf("u%d", i), 37.4+r.Float64()*0.5, -122.7+r.Float64()*0.7)
	}

	clusters := NewEngine(spatial.BayArea).Cluster(locs, Options{Radius: 0, MinClusterSize: 2})
	require.Len(t, clusters, len(locs))

	for _, c := range clusters {
		assert.True(t, c.IsSingle(), c.ID)
	}
}

func TestClusterRadiusZeroGroupsExactDuplicates(t *testing.T) {
	locs := []places.Location{
		loc("a", 37.7, -122.4),
		loc("b", 37.6, -122.3),
		loc("c", 37.7, -122.4),
	}

	clusters := NewEngine(spatial.BayArea).Cluster(locs, Options{Radius: 0, MinClusterSize: 2})
	require.Len(t, clusters, 2)
	assert.Equal(t, []string{"a", "c"}, ids(clusters[0]))
	assert.Equal(t, []string{"b"}, ids(clusters[1]))
}

func TestClusterOrderSensitive(t *testing.T) {
	// roughly 0%, 6% and 12% across the viewport on the same row
	a := loc("a", 37.65, -122.700)
	b := loc("b", 37.65, -122.658)
	c := loc("c", 37.65, -122.616)
	engine := NewEngine(spatial.BayArea)

	clusters := engine.Cluster([]places.Location{a, b, c}, DefaultOptions())
	require.Len(t, clusters, 2)
	assert.Equal(t, []string{"a", "b"}, ids(clusters[0]))
	assert.Equal(t, []string{"c"}, ids(clusters[1]))

	clusters = engine.Cluster([]places.Location{b, a, c}, DefaultOptions())
	require.Len(t, clusters, 1)
	assert.Equal(t, []string{"b", "a", "c"}, ids(clusters[0]))
}

func TestClusterMinClusterSize(t *testing.T) {
	locs := []places.Location{
		loc("a", 37.700, -122.400),
		loc("b", 37.701, -122.401),
	}
	engine := NewEngine(spatial.BayArea)

	clusters := engine.Cluster(locs, Options{Radius: 8, MinClusterSize: 3})
	require.Len(t, clusters, 2)
	assert.Equal(t, "single-a", clusters[0].ID)
	assert.Equal(t, "single-b", clusters[1].ID)

	clusters = engine.Cluster(locs[:1], Options{Radius: 8, MinClusterSize: 1})
	require.Len(t, clusters, 1)
	assert.Equal(t, "cluster-a", clusters[0].ID)

	// values below one behave as one
	clusters = engine.Cluster(locs[:1], Options{Radius: -3, MinClusterSize: 0})
	require.Len(t, clusters, 1)
	assert.Equal(t, "cluster-a", clusters[0].ID)
}

func TestClusterOutsideViewportClampsToEdge(t *testing.T) {
	locs := []places.Location{
		loc("far-north", 45.0, -122.35),
		loc("edge", 37.9, -122.35),
	}

	clusters := NewEngine(spatial.BayArea).Cluster(locs, DefaultOptions())
	require.Len(t, clusters, 1)
	assert.Equal(t, []string{"far-north", "edge"}, ids(clusters[0]))
	assert.InDelta(t, 0, clusters[0].Center.Y, 1e-9)
}

func TestClusterHelpers(t *testing.T) {
	var members []places.Location

	cats := []places.Category{
		places.CategoryPark, places.CategoryPark, places.CategoryCafe,
		"volcano", places.CategoryBar, places.CategoryBeach,
	}
	for i, cat := range cats {
		l := loc(fmt.Sprintf("m%d", i), 37.7, -122.4)
		l.Category = cat
		members = append(members, l)
	}

	c := Cluster{ID: "cluster-m0", Locations: members}

	assert.Equal(t, []places.Category{places.CategoryPark, places.CategoryCafe, places.CategoryOther}, c.Categories(3))
	assert.Len(t, c.Categories(0), 5)
	assert.True(t, c.Contains("m3"))
	assert.Equal(t, 2, c.IndexOf("m2"))
	assert.Equal(t, -1, c.IndexOf("nope"))
	assert.Equal(t, SizeMedium, c.SizeClass())
	assert.False(t, c.IsSingle())

	c.Locations = members[:1]
	assert.Equal(t, SizeSmall, c.SizeClass())
	assert.True(t, c.IsSingle())

	for i := 0; i < 10; i++ {
		c.Locations = append(c.Locations, members[0])
	}

	assert.Equal(t, SizeLarge, c.SizeClass())
}

func TestClusterSpan(t *testing.T) {
	c := Cluster{Bounds: spatial.Bounds{North: 37.8044, South: 37.7749, East: -122.2712, West: -122.4194}}

	assert.InDelta(t, 13400, c.Span(), 300)
}
