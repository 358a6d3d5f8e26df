// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the manuscript-press CLI.
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

// rootCmd is the base command for the manuscript-press CLI.
var rootCmd = &cobra.Command{
	Use:   "manuscript-press",
	Short: "Prepare journal manuscripts for submission as Word documents",
	Long: `manuscript-press converts manuscripts written with the journal's macro
set into Word documents. It rewrites the fixed macro vocabulary (title,
author, abstract, keywords, citations, bibliography directives) into
pandoc Markdown, then runs pandoc with the journal's reference style
template to produce the .docx submission file.

Pandoc must be installed; all rendering and styling is delegated to it.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./manuscript-press.yaml or ~/.config/manuscript-press/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("manuscript-press")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "manuscript-press"))
		}
	}

	viper.SetDefault("convert.pandoc_path", "pandoc")
	viper.SetDefault("convert.reference_doc", "reference.docx")
	viper.SetDefault("history.dir", defaultHistoryDir())
	viper.SetDefault("history.max_results", 20)

	viper.SetEnvPrefix("MANUSCRIPT_PRESS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// defaultHistoryDir places the run log under the user state directory,
// falling back to a dot directory in the working directory.
func defaultHistoryDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".manuscript-press"
	}
	return filepath.Join(home, ".local", "state", "manuscript-press")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
