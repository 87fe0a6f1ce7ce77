// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/johnlhuangP/myArea/clustering"
	"github.com/johnlhuangP/myArea/filter"
	"github.com/johnlhuangP/myArea/places"
	"github.com/johnlhuangP/myArea/source"
	"github.com/johnlhuangP/myArea/spatial"
	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

// MapOptions holds the flags shared by every command that draws a map.
type MapOptions struct {
	Source     string
	City       string
	Categories []string
	Bounds     spatial.Bounds
	Radius     float64
	MinSize    int
}

var mapOptions = &MapOptions{}

func (o *MapOptions) clusterOptions() clustering.Options {
	return clustering.Options{Radius: o.Radius, MinClusterSize: o.MinSize}
}

func (o *MapOptions) filter() (filter.Filter, error) {
	var f filter.Filter

	for _, raw := range o.Categories {
		c, ok := places.ParseCategory(raw)
		if !ok {
			return f, fmt.Errorf("unknown category %q", raw)
		}

		if !f.Has(c) {
			f = f.Toggle(c)
		}
	}

	return f, nil
}

func (o *MapOptions) validate() error {
	if o.Source == "" {
		return fmt.Errorf("--source is required")
	}

	if o.Bounds.Degenerate() {
		log.Printf("⚠️  Viewport %s has no area; positions fall back to the center", o.Bounds)
	}

	return nil
}

// loadLocations reads the locations named by --source. Files ending in
// .duckdb or .db are opened read-only as DuckDB databases; anything else is
// read as JSON.
func (o *MapOptions) loadLocations() ([]places.Location, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(o.Source)) {
	case ".duckdb", ".db":
		if _, err := os.Stat(o.Source); err != nil {
			return nil, fmt.Errorf("database not found at %s: %w", o.Source, err)
		}

		db, err := sql.Open("duckdb", o.Source+"?access_mode=read_only")
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		return source.NewDuckDB(db, o.City, "").Locations()
	default:
		locs, err := source.File{Path: o.Source}.Locations()
		if err != nil {
			return nil, err
		}

		if o.City == "" {
			return locs, nil
		}

		out := locs[:0]
		for _, l := range locs {
			if strings.Contains(strings.ToLower(l.City), strings.ToLower(o.City)) {
				out = append(out, l)
			}
		}

		return out, nil
	}
}

var rootCmd = &cobra.Command{
	Use:   "myarea",
	Short: "clustered map of recommended places",
	Long: `
myarea groups nearby places into clusters so a map stays readable when many
recommendations sit close together, and lets you explore the clusters from the
terminal or through a small HTTP server.
`,
	SilenceUsage: true,
}

var Version = "dev"

func Execute(version string) {
	Version = version
	rootCmd.Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&mapOptions.Source, "source", "s", "", "locations JSON file or DuckDB database")
	flags.StringVar(&mapOptions.City, "city", "", "only places whose city contains this text")
	flags.StringSliceVarP(&mapOptions.Categories, "category", "c", nil, "only show these categories (repeatable)")
	flags.Float64Var(&mapOptions.Bounds.North, "north", spatial.BayArea.North, "viewport north edge")
	flags.Float64Var(&mapOptions.Bounds.South, "south", spatial.BayArea.South, "viewport south edge")
	flags.Float64Var(&mapOptions.Bounds.East, "east", spatial.BayArea.East, "viewport east edge")
	flags.Float64Var(&mapOptions.Bounds.West, "west", spatial.BayArea.West, "viewport west edge")
	flags.Float64VarP(&mapOptions.Radius, "radius", "r", clustering.DefaultRadius, "clustering radius, in percent of the viewport")
	flags.IntVarP(&mapOptions.MinSize, "min-size", "m", clustering.DefaultMinClusterSize, "minimum number of places in a cluster")
}
