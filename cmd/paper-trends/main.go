// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-trends CLI. Each pipeline
// stage is a subcommand: clean, analyze, and run for the full pipeline,
// plus sample and inspect for working with large metadata files.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-trends/internal/observability"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured in PersistentPreRunE from --log-level.
var logger = zerolog.Nop()

// rootCmd is the base command for the paper-trends CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-trends",
	Short: "Clean and summarize bibliographic metadata tables",
	Long: `paper-trends cleans a CORD-19 style metadata.csv and computes publication
trends: yearly and monthly counts with a rolling average, top journals and
sources, cumulative growth of the leading journals, and the most frequent
title words and word pairs.

Use clean to write a cleaned snapshot, analyze to summarize one, or run to
do both in a single pass.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env file is not an error.
		_ = godotenv.Load()

		level := viper.GetString("log.level")
		logger = observability.NewLogger(os.Stderr, level)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("log.metrics_file")
		if path == "" {
			return nil
		}
		if err := observability.WriteTextfile(path); err != nil {
			return err
		}
		logger.Debug().Str("path", path).Msg("Wrote metrics")
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-trends.yaml or ~/.config/paper-trends/paper-trends.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("metrics-file", "", "write pipeline metrics in Prometheus text format to this file")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.metrics_file", rootCmd.PersistentFlags().Lookup("metrics-file"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-trends")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-trends"))
		}
	}

	viper.SetEnvPrefix("PAPER_TRENDS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
