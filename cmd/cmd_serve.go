// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/johnlhuangP/myArea/server"
	"github.com/spf13/cobra"
)

const defaultAddr = "localhost:8080"

var (
	serveAddr          string
	serveAuthenticated bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the map session over HTTP",
	Long: `Loads the places and serves a single map session as a JSON API. The
listen address can also be set with MYAREA_ADDR.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		session, err := newSession(serveAuthenticated)
		if err != nil {
			return err
		}

		if err := server.NewServer(session).Run(serveAddr); err != nil {
			return fmt.Errorf("serving: %w", err)
		}

		return nil
	},
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", envOr("MYAREA_ADDR", defaultAddr), "listen address")
	serveCmd.Flags().BoolVar(&serveAuthenticated, "authenticated", false, "allow adding places")
	rootCmd.AddCommand(serveCmd)
}
