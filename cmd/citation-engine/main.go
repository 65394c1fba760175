// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citation-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/citeworks/citation-engine/internal/secrets"
	"github.com/citeworks/citation-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "citation-engine/0.1"
	defaultStorePath = "citations.db"
)

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the citation-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "citation-engine",
	Short: "Resolve and format bibliographic citations for web sources",
	Long: `citation-engine resolves bibliographic metadata for a URL through a layered
pipeline (direct page fetch, proxied fetch, then AI-assisted extraction from
a readable-text mirror) and renders the result in APA 7, MLA 9, IEEE, or
Chicago 17 style.

Resolved citations can be saved, listed, re-resolved, and exported through the
store subcommands.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citation-engine.yaml or ~/.config/citation-engine/config.yaml)")
	rootCmd.PersistentFlags().String("store", "", "citation database file (default: citations.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citation-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citation-engine"))
		}
	}

	viper.SetEnvPrefix("CITATION_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// resolveConfig assembles the pipeline configuration from flags, falling back
// to the config file for anything the flags leave unset.
func resolveConfig(cmd *cobra.Command) types.ResolveConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("resolve.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	proxy, _ := cmd.Flags().GetString("proxy")
	if proxy == "" {
		proxy = viper.GetString("resolve.proxy_base")
	}

	mirrors, _ := cmd.Flags().GetStringSlice("reader")
	if len(mirrors) == 0 {
		mirrors = viper.GetStringSlice("resolve.reader_mirrors")
	}

	return types.ResolveConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		ProxyBase:     proxy,
		ReaderMirrors: mirrors,
	}
}

// aiConfig assembles the generative-backend configuration. The API key comes
// from .secrets/ai-api-key unless the config file overrides it.
func aiConfig(cmd *cobra.Command) types.AIConfig {
	endpoint, _ := cmd.Flags().GetString("ai-endpoint")
	if endpoint == "" {
		endpoint = viper.GetString("ai.endpoint")
	}
	model, _ := cmd.Flags().GetString("ai-model")
	if model == "" {
		model = viper.GetString("ai.model")
	}
	apiKey := viper.GetString("ai.api_key")
	if apiKey == "" {
		apiKey = loadedSecrets["ai-api-key"]
	}

	return types.AIConfig{
		Endpoint:      endpoint,
		Model:         model,
		APIKey:        apiKey,
		MaxRetries:    viper.GetInt("ai.max_retries"),
		MaxChunkChars: viper.GetInt("ai.max_chunk_chars"),
	}
}

// storePath returns the citation database path: --store flag, then config
// file, then the default next to the working directory.
func storePath() string {
	path, _ := rootCmd.PersistentFlags().GetString("store")
	if path == "" {
		path = viper.GetString("store.path")
	}
	if path == "" {
		path = defaultStorePath
	}
	return path
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
