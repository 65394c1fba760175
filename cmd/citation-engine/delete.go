package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/citeworks/citation-engine/internal/store"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved citation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("parsing citation id %q: %w", args[0], err)
		}

		s, err := store.Open(storePath())
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted citation %d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
