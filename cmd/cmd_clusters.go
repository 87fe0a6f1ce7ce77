// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/johnlhuangP/myArea/mapview"
	"github.com/johnlhuangP/myArea/utils"
	"github.com/spf13/cobra"
)

var clustersJSON bool

// newSession loads the locations and applies the map flags.
func newSession(authenticated bool) (*mapview.Session, error) {
	locs, err := mapOptions.loadLocations()
	if err != nil {
		return nil, fmt.Errorf("loading locations: %w", err)
	}

	f, err := mapOptions.filter()
	if err != nil {
		return nil, err
	}

	session := mapview.NewSession(mapOptions.Bounds, mapOptions.clusterOptions(), authenticated)
	session.SetLocations(locs)
	session.SetFilter(f)

	return session, nil
}

func printClusters(w io.Writer, session *mapview.Session) {
	a, b, c, d, e := strings.Repeat("─", 28), strings.Repeat("─", 4), strings.Repeat("─", 15), strings.Repeat("─", 9), strings.Repeat("─", 30)
	fmt.Fprintf(w, "╭─%s─┬─%s─┬─%s─┬─%s─┬─%s─╮\n", a, b, c, d, e)
	fmt.Fprintf(w, "│ %-28s │ %4s │ %-15s │ %9s │ %-30s │\n", "Cluster", "Size", "Position", "Span", "Categories")
	fmt.Fprintf(w, "├─%s─┼─%s─┼─%s─┼─%s─┼─%s─┤\n", a, b, c, d, e)

	for _, v := range session.Views() {
		cats := make([]string, 0, len(v.Categories))
		for _, cat := range v.Categories {
			cats = append(cats, string(cat))
		}

		fmt.Fprintf(w, "│ %-28.28s │ %4d │ %-15s │ %9s │ %-30.30s │\n",
			v.ID,
			v.Size(),
			utils.FormatPercent(v.Center.X)+" "+utils.FormatPercent(v.Center.Y),
			utils.FormatInt(int64(math.Round(v.Span)))+" m",
			strings.Join(cats, ", "))
	}

	fmt.Fprintf(w, "╰─%s─┴─%s─┴─%s─┴─%s─┴─%s─╯\n", a, b, c, d, e)
	fmt.Fprintf(w, "%s clusters · %s\n", utils.FormatInt(int64(len(session.Clusters()))), session.Summary())
}

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Group the places into map clusters and list them",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		session, err := newSession(false)
		if err != nil {
			return err
		}

		if clustersJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			if err := enc.Encode(session.Views()); err != nil {
				return fmt.Errorf("encoding clusters: %w", err)
			}

			return nil
		}

		printClusters(os.Stdout, session)

		return nil
	},
}

func init() {
	clustersCmd.Flags().BoolVar(&clustersJSON, "json", false, "print the clusters as JSON")
	rootCmd.AddCommand(clustersCmd)
}
