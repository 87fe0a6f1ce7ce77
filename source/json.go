// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

// Package source loads the locations shown on the map. Sources are read-only.
package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/johnlhuangP/myArea/places"
)

// Source provides the locations of a map session.
type Source interface {
	Locations() ([]places.Location, error)
}

// locationsResponse is the envelope returned by the locations API.
type locationsResponse struct {
	Locations []places.Location `json:"locations"`
	Count     int               `json:"count"`
}

// ReadJSON decodes locations from r. Both a bare JSON array and the
// {"locations": [...], "count": n} envelope are accepted. Records without
// an id get a random one, and every record must pass places.Validate.
func ReadJSON(r io.Reader) ([]places.Location, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading locations: %w", err)
	}

	var locs []places.Location

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &locs); err != nil {
			return nil, fmt.Errorf("unmarshaling locations: %w", err)
		}
	} else {
		var resp locationsResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return nil, fmt.Errorf("unmarshaling locations response: %w", err)
		}

		locs = resp.Locations
	}

	for i := range locs {
		if locs[i].ID == "" {
			locs[i].ID = uuid.NewString()
		}

		if err := places.Validate(locs[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return locs, nil
}

// File reads locations from a JSON file.
type File struct {
	Path string
}

// Locations implements Source.
func (f File) Locations() ([]places.Location, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Path, err)
	}
	defer file.Close()

	locs, err := ReadJSON(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}

	return locs, nil
}
