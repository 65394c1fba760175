// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citeworks/citation-engine/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved citations, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(storePath())
		if err != nil {
			return err
		}
		defer s.Close()

		citations, err := s.List(cmd.Context())
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(citations, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding citations: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		for _, c := range citations {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", c.ID, c.Style, c.Text)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("json", false, "output citations as JSON")

	rootCmd.AddCommand(listCmd)
}
