// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the site-search CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/site-search/internal/secrets"
	"github.com/pdiddy/site-search/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds values loaded from the secrets directory at startup.
var loadedSecrets secrets.Store

// rootCmd is the base command for the site-search CLI.
var rootCmd = &cobra.Command{
	Use:   "site-search",
	Short: "Query the Google Site Search XML API",
	Long: `site-search builds Google Site Search requests, fetches the XML
responses and prints the parsed results. Pagination links returned by the
API can be followed automatically (query --pages) or turned into absolute
URLs with the paginate command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd.ErrOrStderr(), viper.GetString("log_level"))
		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx := log.WithContext(parent)
		cmd.SetContext(ctx)

		s, err := secrets.Load(ctx, viper.GetString("secrets_dir"))
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := s.Keys()
			sort.Strings(keys)
			log.Debug().Strs("keys", keys).Msg("Loaded secrets")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./site-search.yaml or ~/.config/site-search/config.yaml)")
	flags.String("base-url", types.DefaultBaseURL, "scheme and host of the search endpoint")
	flags.Duration("timeout", types.DefaultTimeout, "HTTP request timeout")
	flags.String("user-agent", "site-search/"+version, "User-Agent header for requests")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("secrets-dir", ".secrets/", "directory of secret files")

	for key, flag := range map[string]string{
		"base_url":    "base-url",
		"timeout":     "timeout",
		"user_agent":  "user-agent",
		"log_level":   "log-level",
		"secrets_dir": "secrets-dir",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
	viper.SetDefault("path", types.DefaultPath)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("site-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "site-search"))
		}
	}

	viper.SetEnvPrefix("SITE_SEARCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// clientConfig assembles the endpoint settings from viper and secrets.
func clientConfig() types.SiteSearchConfig {
	return types.SiteSearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		BaseURL:        viper.GetString("base_url"),
		Path:           viper.GetString("path"),
		SearchEngineID: loadedSecrets.Get(secrets.SearchEngineID, viper.GetString("search_engine_id")),
	}
}

// newLogger writes human-readable logs to w. Unknown levels fall back to warn.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
