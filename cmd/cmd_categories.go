// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/johnlhuangP/myArea/filter"
	"github.com/johnlhuangP/myArea/places"
	"github.com/johnlhuangP/myArea/utils"
	"github.com/spf13/cobra"
)

func printCategories(w io.Writer, f filter.Filter, summary filter.Summary) {
	a, b, c := strings.Repeat("─", 3), strings.Repeat("─", 20), strings.Repeat("─", 8)
	fmt.Fprintf(w, "╭─%s─┬─%s─┬─%s─╮\n", a, b, c)
	fmt.Fprintf(w, "│ %-3s │ %-20s │ %8s │\n", "", "Category", "Places")
	fmt.Fprintf(w, "├─%s─┼─%s─┼─%s─┤\n", a, b, c)

	for _, cat := range places.Categories {
		n, ok := summary.Counts[cat]
		if !ok {
			continue
		}

		mark := " "
		if f.Has(cat) {
			mark = "✓"
		}

		fmt.Fprintf(w, "│ %-3s │ %-20s │ %8s │\n", mark, cat.Style().Label, utils.FormatInt(int64(n)))
	}

	fmt.Fprintf(w, "╰─%s─┴─%s─┴─%s─╯\n", a, b, c)
	fmt.Fprintln(w, summary)
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Count the places per category",
	Long: `Lists the categories present in the source with how many places each has.
Categories selected with --category are marked; with none selected every place
is shown.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		session, err := newSession(false)
		if err != nil {
			return err
		}

		printCategories(os.Stdout, session.Filter(), session.Summary())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
