// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerAsciiFolding(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello world"},
		{"  Spaces  ", "spaces"},
		{"Café", "cafe"},
		{"Crème Brûlée", "creme brulee"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, LowerASCIIFolding(tc.input))
		})
	}
}

func TestAnyToStringSlice(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []string
		ok       bool
	}{
		{"nil", nil, nil, true},
		{"[]string", []string{"a", "b"}, []string{"a", "b"}, true},
		{"[]any strings", []any{"views", "dogs"}, []string{"views", "dogs"}, true},
		{"[]any mixed", []any{"a", 1}, nil, false},
		{"not a slice", 7, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, ok := AnyToStringSlice(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, res)
		})
	}
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{12, "12"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatInt(tc.input))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, " 50.0%", FormatPercent(50))
	assert.Equal(t, "100.0%", FormatPercent(100))
}
