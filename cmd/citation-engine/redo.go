// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/citeworks/citation-engine/internal/ai"
	"github.com/citeworks/citation-engine/internal/cite"
	"github.com/citeworks/citation-engine/internal/meta"
	"github.com/citeworks/citation-engine/internal/resolve"
	"github.com/citeworks/citation-engine/internal/store"
)

var redoCmd = &cobra.Command{
	Use:   "redo <id>",
	Short: "Re-resolve a saved citation from its URL",
	Long: `Redo runs the full resolution pipeline against a saved citation's URL and
merges the fresh record over the stored one, so fields that were filled in
by hand survive. The citation is re-rendered in its stored style and
updated in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runRedo,
}

func init() {
	redoCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	redoCmd.Flags().String("proxy", "", "same-origin proxy base URL for the second stage")
	redoCmd.Flags().StringSlice("reader", nil, "readable-text mirror base URLs (up to three)")
	redoCmd.Flags().String("ai-endpoint", "", "generative text completion endpoint for the AI stage")
	redoCmd.Flags().String("ai-model", "", "model identifier passed to the AI endpoint")

	rootCmd.AddCommand(redoCmd)
}

func runRedo(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("parsing citation id %q: %w", args[0], err)
	}

	s, err := store.Open(storePath())
	if err != nil {
		return err
	}
	defer s.Close()

	existing, err := s.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	if existing.Meta.URL == "" {
		return fmt.Errorf("citation %d has no URL to re-resolve", id)
	}

	cfg := resolveConfig(cmd)
	aiCfg := aiConfig(cmd)

	var backend ai.Backend
	if aiCfg.Endpoint != "" {
		backend = &ai.TextBackend{
			Config:    aiCfg,
			UserAgent: cfg.UserAgent,
			Client:    &http.Client{Timeout: cfg.Timeout},
		}
	}

	pipe := &resolve.Pipeline{
		Client:   &http.Client{Timeout: cfg.Timeout},
		Backend:  backend,
		Config:   cfg,
		MaxChunk: aiCfg.MaxChunkChars,
		Progress: func(stage resolve.Stage, message string) {
			fmt.Fprintf(os.Stderr, "%-7s %s\n", stage, message)
		},
	}

	result := pipe.Resolve(cmd.Context(), existing.Meta.URL)
	if !result.Sufficient {
		fmt.Fprintln(os.Stderr, result.Diagnostic)
	}

	// Fresh fields win; stored fields survive wherever the pipeline came up blank.
	merged := meta.Merge(existing.Meta, result.Metadata)
	merged = meta.Finalize(merged)
	if merged.Accessed == "" {
		merged.Accessed = time.Now().Format("2006-01-02")
	}

	rendered := cite.Format(merged, existing.Style)
	existing.Meta = merged
	existing.Text = rendered.Text
	if err := s.Update(cmd.Context(), existing); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "updated citation %d:\n%s\n", existing.ID, existing.Text)
	return nil
}
