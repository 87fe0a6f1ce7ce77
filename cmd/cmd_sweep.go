// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/johnlhuangP/myArea/clustering"
	"github.com/johnlhuangP/myArea/places"
	"github.com/johnlhuangP/myArea/utils"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// SweepOptions controls the radius range explored by the sweep command.
type SweepOptions struct {
	From     float64
	To       float64
	Step     float64
	MaxProcs int
}

var sweepOptions = &SweepOptions{}

// SweepRow summarizes one clustering pass.
type SweepRow struct {
	Radius   float64
	Clusters int
	Singles  int
	Largest  int
}

func (o *SweepOptions) radii() ([]float64, error) {
	if o.Step <= 0 {
		return nil, errors.New("--step must be positive")
	}

	if o.From < 0 || o.To < o.From {
		return nil, fmt.Errorf("invalid radius range %g..%g", o.From, o.To)
	}

	var out []float64
	for i := 0; ; i++ {
		r := o.From + float64(i)*o.Step
		if r > o.To+1e-9 {
			break
		}

		out = append(out, r)
	}

	return out, nil
}

// sweep clusters locs once per radius. Passes are independent and run in
// parallel; rows come back in radius order.
func sweep(engine *clustering.Engine, locs []places.Location, minSize int, radii []float64, maxProcs int) []SweepRow {
	if maxProcs <= 0 {
		maxProcs = runtime.NumCPU()
	}

	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(len(radii),
			progressbar.OptionSetDescription("Clustering"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	rows := make([]SweepRow, len(radii))

	var wg sync.WaitGroup

	semaphore := make(chan struct{}, maxProcs)

	for i, radius := range radii {
		wg.Add(1)

		go func(i int, radius float64) {
			defer wg.Done()
			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			row := SweepRow{Radius: radius}
			for _, c := range engine.Cluster(locs, clustering.Options{Radius: radius, MinClusterSize: minSize}) {
				if c.IsSingle() {
					row.Singles++
				} else {
					row.Clusters++
				}

				row.Largest = max(row.Largest, c.Size())
			}

			rows[i] = row

			if bar != nil {
				if err := bar.Add(1); err != nil {
					log.Printf("updating progress bar: %v", err)
				}
			}
		}(i, radius)
	}

	wg.Wait()

	return rows
}

func printSweep(w io.Writer, rows []SweepRow) {
	a, b := strings.Repeat("─", 8), strings.Repeat("─", 10)
	fmt.Fprintf(w, "╭─%s─┬─%s─┬─%s─┬─%s─╮\n", a, b, b, b)
	fmt.Fprintf(w, "│ %8s │ %10s │ %10s │ %10s │\n", "Radius", "Clusters", "Singles", "Largest")
	fmt.Fprintf(w, "├─%s─┼─%s─┼─%s─┼─%s─┤\n", a, b, b, b)

	for _, r := range rows {
		fmt.Fprintf(w, "│ %8s │ %10s │ %10s │ %10s │\n",
			utils.FormatPercent(r.Radius),
			utils.FormatInt(int64(r.Clusters)),
			utils.FormatInt(int64(r.Singles)),
			utils.FormatInt(int64(r.Largest)))
	}

	fmt.Fprintf(w, "╰─%s─┴─%s─┴─%s─┴─%s─╯\n", a, b, b, b)
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare how the clusters change across a range of radii",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		radii, err := sweepOptions.radii()
		if err != nil {
			return err
		}

		session, err := newSession(false)
		if err != nil {
			return err
		}

		visible := session.Filter().Apply(session.Locations())
		log.Printf("Sweeping %d radii over %s places", len(radii), utils.FormatInt(int64(len(visible))))

		engine := clustering.NewEngine(session.Bounds())
		printSweep(os.Stdout, sweep(engine, visible, mapOptions.MinSize, radii, sweepOptions.MaxProcs))

		return nil
	},
}

func init() {
	flags := sweepCmd.Flags()
	flags.Float64Var(&sweepOptions.From, "from", 0, "smallest radius")
	flags.Float64Var(&sweepOptions.To, "to", 20, "largest radius")
	flags.Float64Var(&sweepOptions.Step, "step", 2, "radius increment")
	flags.IntVar(&sweepOptions.MaxProcs, "max-procs", 0, "parallel clustering passes (0 = number of CPUs)")
	rootCmd.AddCommand(sweepCmd)
}
