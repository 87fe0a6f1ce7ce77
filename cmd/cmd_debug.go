// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/johnlhuangP/myArea/mapview"
	"github.com/johnlhuangP/myArea/spatial"
	"github.com/johnlhuangP/myArea/utils"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Dev tools",
}

func parsePoint(line string) (spatial.Point, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return spatial.Point{}, fmt.Errorf("expected \"lat,lng\", got %q", line)
	}

	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return spatial.Point{}, fmt.Errorf("latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return spatial.Point{}, fmt.Errorf("longitude: %w", err)
	}

	return spatial.Point{Lat: lat, Lng: lng}, nil
}

// projectLines reads one coordinate per line and writes its position in the
// viewport followed by its h3 cell.
func projectLines(r io.Reader, w io.Writer, bounds spatial.Bounds) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		p, err := parsePoint(line)
		if err != nil {
			fmt.Fprintf(w, "%s\t%q\n", line, err)

			continue
		}

		pp := bounds.Project(p)

		cell := "-"
		if c, err := p.Cell(mapview.CellResolution); err == nil {
			cell = c.String()
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p, utils.FormatPercent(pp.X), utils.FormatPercent(pp.Y), cell)
	}

	return scanner.Err()
}

var debugProjectCmd = &cobra.Command{
	Use:   "project [lat,lng...]",
	Short: "Show where coordinates land in the viewport",
	Long: `Reads one coordinate per line (or takes them as arguments) and prints the
position in the viewport, as a percentage from the west and north edges,
followed by the h3 cell the clusters are keyed on.

$ echo 37.7749,-122.4194 | myarea debug project
POINT(-122.419400 37.774900)	 40.1%	 25.0%	<h3 cell>
`,
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) > 0 {
			return projectLines(strings.NewReader(strings.Join(args, "\n")), os.Stdout, mapOptions.Bounds)
		}

		input := os.Stdin
		if isTerminal(input) {
			fmt.Fprintln(os.Stderr, "Enter coordinates to project, one per line…")
		}

		if err := projectLines(input, os.Stdout, mapOptions.Bounds); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.AddCommand(debugProjectCmd)
}
