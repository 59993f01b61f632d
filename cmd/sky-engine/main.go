// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sky-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the sky-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "sky-engine",
	Short: "Search and verify astronomical configurations behind scriptural celestial references",
	Long: `sky-engine correlates celestial references in scripture with real
astronomical configurations. It scans date ranges for declarative criteria
(conjunctions, eclipses, multi-body patterns), cross-checks every candidate
against an independent position authority, and records verified events in an
append-only catalog.

Positions come from a built-in analytic ephemeris or from a running
Stellarium instance via its RemoteControl API; a candidate only graduates to
a verified event when both agree.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sky-engine.yaml or ~/.config/sky-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sky-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sky-engine"))
		}
	}

	viper.SetEnvPrefix("SKY_ENGINE")
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
