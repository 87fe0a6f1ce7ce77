// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

// Package utils holds small text and conversion helpers shared by the
// command line, the location sources and the category parser.
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// LowerASCIIFolding normalizes a string by removing accents, lowercasing, and trimming spaces.
func LowerASCIIFolding(s string) string {
	s, _, _ = transform.String(
		transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		),
		strings.TrimSpace(strings.ToLower(s)),
	)

	return s
}

// AnyToStringSlice converts a list value returned by the database driver to
// []string. The second return value is false when an element is not a string.
func AnyToStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case nil:
		return nil, true
	case []string:
		return s, true
	case []any:
		out := make([]string, len(s))

		for i, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil, false
			}

			out[i] = str
		}

		return out, true
	default:
		return nil, false
	}
}

// FormatInt formats an integer with commas for human readability.
func FormatInt(n int64) string {
	in := strconv.FormatInt(n, 10)

	numOfDigits := len(in)
	if n < 0 {
		numOfDigits-- // sign
	}

	numOfCommas := (numOfDigits - 1) / 3

	out := make([]byte, len(in)+numOfCommas)
	if n < 0 {
		in, out[0] = in[1:], '-'
	}

	for i, j, k := len(in)-1, len(out)-1, 0; ; i, j = i-1, j-1 {
		out[j] = in[i]
		if i == 0 {
			return string(out)
		}

		if k++; k == 3 {
			j, k = j-1, 0
			out[j] = ','
		}
	}
}

// FormatPercent formats a display-space coordinate with one decimal.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%5.1f%%", v)
}
