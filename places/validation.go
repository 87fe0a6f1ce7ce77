// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package places

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes a location record rejected by Validate.
type ValidationError struct {
	ID      string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("location %s: %s: %s", e.ID, e.Field, e.Message)
	}

	return fmt.Sprintf("location: %s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError

	return errors.As(err, &verr)
}

// Validate checks the constraints the data layer enforces on a location:
// required text fields, coordinates within range, rating in 1..5 and price
// level in 1..4. The category is not checked: unknown values are kept as they
// are and drawn, filtered and counted as CategoryOther.
func Validate(loc Location) error {
	invalid := func(field, msg string) error {
		return &ValidationError{ID: loc.ID, Field: field, Message: msg}
	}

	if strings.TrimSpace(loc.Name) == "" {
		return invalid("name", "is required")
	}

	if strings.TrimSpace(loc.Address) == "" {
		return invalid("address", "is required")
	}

	if strings.TrimSpace(loc.City) == "" {
		return invalid("city", "is required")
	}

	if !loc.Point().Valid() {
		return invalid("coordinates", fmt.Sprintf("out of range (%f, %f)", loc.Latitude, loc.Longitude))
	}

	if loc.Rating != nil && (*loc.Rating < 1 || *loc.Rating > 5) {
		return invalid("rating", "must be between 1 and 5")
	}

	if loc.PriceLevel != nil && (*loc.PriceLevel < 1 || *loc.PriceLevel > 4) {
		return invalid("price_level", "must be between 1 and 4")
	}

	return nil
}
