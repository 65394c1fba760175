package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/citeworks/citation-engine/internal/ai"
	"github.com/citeworks/citation-engine/internal/cite"
	"github.com/citeworks/citation-engine/internal/resolve"
	"github.com/citeworks/citation-engine/internal/store"
	"github.com/citeworks/citation-engine/pkg/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Resolve bibliographic metadata for a URL",
	Long: `Resolve fetches the page and assembles a metadata record through the layered
pipeline. Cheap stages run first; the AI-assisted stage only runs when the
page itself does not yield a sufficient record. A URL without a scheme is
assumed to be https.

With --save the record is rendered in the chosen style and stored.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	resolveCmd.Flags().String("proxy", "", "same-origin proxy base URL for the second stage")
	resolveCmd.Flags().StringSlice("reader", nil, "readable-text mirror base URLs (up to three)")
	resolveCmd.Flags().String("ai-endpoint", "", "generative text completion endpoint for the AI stage")
	resolveCmd.Flags().String("ai-model", "", "model identifier passed to the AI endpoint")
	resolveCmd.Flags().String("format", "yaml", "output format: yaml or json")
	resolveCmd.Flags().Bool("save", false, "format and save the resolved citation")
	resolveCmd.Flags().String("style", "apa7", "citation style used with --save")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
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

	result := pipe.Resolve(cmd.Context(), args[0])
	if result.Metadata.Accessed == "" {
		result.Metadata.Accessed = time.Now().Format("2006-01-02")
	}
	if !result.Sufficient {
		fmt.Fprintln(os.Stderr, result.Diagnostic)
	}

	if err := printMetadata(cmd, result.Metadata); err != nil {
		return err
	}

	save, _ := cmd.Flags().GetBool("save")
	if !save {
		return nil
	}

	styleKey, _ := cmd.Flags().GetString("style")
	style, err := types.ParseStyle(styleKey)
	if err != nil {
		return err
	}

	rendered := cite.Format(result.Metadata, style)
	s, err := store.Open(storePath())
	if err != nil {
		return err
	}
	defer s.Close()

	c := &types.Citation{Style: style, Text: rendered.Text, Meta: result.Metadata}
	if err := s.Save(cmd.Context(), c); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nsaved citation %d:\n%s\n", c.ID, c.Text)
	return nil
}

func printMetadata(cmd *cobra.Command, m types.Metadata) error {
	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling metadata: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(m)
	default:
		return fmt.Errorf("unknown output format %q (supported: yaml, json)", format)
	}
}
