package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/citeworks/citation-engine/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved citations as YAML",
	Long: `Export writes every saved citation, including its metadata record, as a
YAML document. With --out the document goes to a file instead of stdout.`,
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

		out := cmd.OutOrStdout()
		if path, _ := cmd.Flags().GetString("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()
			out = f
		}

		enc := yaml.NewEncoder(out)
		defer enc.Close()
		if err := enc.Encode(citations); err != nil {
			return fmt.Errorf("encoding citations: %w", err)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "write the export to a file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}
