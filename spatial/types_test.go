// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointScan(t *testing.T) {
	var p Point

	require.NoError(t, p.Scan([]byte("POINT (-122.4 37.7)")))
	assert.Equal(t, Point{Lat: 37.7, Lng: -122.4}, p)

	require.NoError(t, p.Scan("POINT (-122.3 37.6)"))
	assert.Equal(t, Point{Lat: 37.6, Lng: -122.3}, p)

	require.NoError(t, p.Scan(map[string]any{"x": -122.5, "y": 37.8}))
	assert.Equal(t, Point{Lat: 37.8, Lng: -122.5}, p)

	require.NoError(t, p.Scan(nil))
	assert.Equal(t, Point{}, p)

	assert.Error(t, p.Scan(42))
	assert.Error(t, p.Scan(map[string]any{"x": "a"}))
	assert.Error(t, p.Scan("LINESTRING (0 0, 1 1)"))
}

func TestPointValid(t *testing.T) {
	assert.True(t, Point{Lat: 90, Lng: -180}.Valid())
	assert.False(t, Point{Lat: 90.5, Lng: 0}.Valid())
	assert.False(t, Point{Lat: 0, Lng: 181}.Valid())
}

func TestHaversineDistance(t *testing.T) {
	sf := Point{Lat: 37.7749, Lng: -122.4194}
	oakland := Point{Lat: 37.8044, Lng: -122.2712}

	d := sf.HaversineDistance(oakland)
	assert.InDelta(t, 13400, d, 300)
	assert.Zero(t, sf.HaversineDistance(sf))
}

func TestPointCell(t *testing.T) {
	p := Point{Lat: 37.7749, Lng: -122.4194}

	cell, err := p.Cell(7)
	require.NoError(t, err)
	assert.Equal(t, 7, cell.Resolution())

	same, err := Point{Lat: 37.77491, Lng: -122.41941}.Cell(7)
	require.NoError(t, err)
	assert.Equal(t, cell, same)

	_, err = p.Cell(99)
	assert.Error(t, err)
}
