// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"database/sql"
	"fmt"

	"github.com/johnlhuangP/myArea/places"
	"github.com/johnlhuangP/myArea/spatial"
	"github.com/johnlhuangP/myArea/utils"
)

// DuckDB reads locations from the locations table of a DuckDB database.
// The table is expected to have the columns id, name, description, category,
// address, latitude, longitude, city, rating, price_level, tags (VARCHAR[]),
// image_url and website_url.
type DuckDB struct {
	db *sql.DB
	// City restricts the result to cities matching it (case insensitive,
	// substring). Empty means every city.
	City string
	// Category restricts the result to one category. Empty means all.
	Category places.Category
}

// NewDuckDB returns a source reading from db.
func NewDuckDB(db *sql.DB, city string, category places.Category) *DuckDB {
	return &DuckDB{db: db, City: city, Category: category}
}

// Locations implements Source. Rows come back in id order so the clustering
// pass sees a stable sequence.
func (d *DuckDB) Locations() ([]places.Location, error) {
	query := `
		SELECT id, name, description, category, address,
			{'x': longitude, 'y': latitude} AS position,
			city, rating, price_level, tags, image_url, website_url
		FROM locations
		WHERE city ILIKE ?
	`
	args := []any{"%" + d.City + "%"}

	if d.Category != "" {
		if !d.Category.Valid() {
			return nil, &places.ValidationError{Field: "category", Message: fmt.Sprintf("unknown category %q", d.Category)}
		}

		query += " AND category = ?"

		args = append(args, string(d.Category))
	}

	query += " ORDER BY id"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying locations: %w", err)
	}
	defer rows.Close()

	var locs []places.Location

	for rows.Next() {
		var (
			loc         places.Location
			position    spatial.Point
			category    string
			description sql.NullString
			rating      sql.NullInt64
			priceLevel  sql.NullInt64
			tags        any
			imageURL    sql.NullString
			websiteURL  sql.NullString
		)

		if err := rows.Scan(
			&loc.ID,
			&loc.Name,
			&description,
			&category,
			&loc.Address,
			&position,
			&loc.City,
			&rating,
			&priceLevel,
			&tags,
			&imageURL,
			&websiteURL,
		); err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}

		loc.Category = places.Category(category)
		loc.Latitude, loc.Longitude = position.Lat, position.Lng
		loc.Description = nullString(description)
		loc.ImageURL = nullString(imageURL)
		loc.WebsiteURL = nullString(websiteURL)
		loc.Rating = nullInt(rating)
		loc.PriceLevel = nullInt(priceLevel)

		var ok bool
		if loc.Tags, ok = utils.AnyToStringSlice(tags); !ok {
			return nil, fmt.Errorf("location %s: unexpected tags value %T", loc.ID, tags)
		}

		locs = append(locs, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating locations: %w", err)
	}

	return locs, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	return &s.String
}

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}

	v := int(n.Int64)

	return &v
}
