// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/manuscript-press/internal/history"
	"github.com/pdiddy/manuscript-press/internal/pandoc"
	"github.com/pdiddy/manuscript-press/internal/pipeline"
	"github.com/pdiddy/manuscript-press/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <manuscript> [output.docx]",
	Short: "Convert a manuscript to a Word document",
	Long: `Convert rewrites the journal's macros into pandoc Markdown and runs
pandoc to produce the .docx submission document. The output path defaults
to the manuscript path with its extension replaced by .docx.

With --batch, each argument is a directory and every .tex file inside it is
converted to its derived output path.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("pandoc", "", "pandoc binary name or path (default \"pandoc\")")
	convertCmd.Flags().String("reference-doc", "", "reference .docx style template (default \"reference.docx\")")
	convertCmd.Flags().Bool("batch", false, "treat arguments as directories of .tex manuscripts")
	convertCmd.Flags().Bool("no-history", false, "do not record this run in the conversion history")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	batch, _ := cmd.Flags().GetBool("batch")
	if !batch && len(args) > 2 {
		return fmt.Errorf("expected <manuscript> [output.docx]; use --batch to convert directories")
	}

	cfg := convertConfig(cmd)

	invoker := pandoc.New(cfg.PandocPath)
	if err := invoker.Detect(); err != nil {
		return err
	}

	rec, closeRec := openRecorder(cmd)
	defer closeRec()

	if batch {
		return runConvertBatch(invoker, rec, cfg, args)
	}

	output := ""
	if len(args) == 2 {
		output = args[1]
	}
	if pipeline.ConvertFile(invoker, rec, cfg, args[0], output, os.Stdout) == types.RunFailed {
		return fmt.Errorf("conversion of %s failed", args[0])
	}

	if output == "" {
		output = pipeline.DefaultOutputPath(args[0])
	}
	printGuidance(output)
	return nil
}

func runConvertBatch(invoker *pandoc.Invoker, rec pipeline.Recorder, cfg types.ConvertConfig, dirs []string) error {
	var inputs []string
	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*.tex"))
		if err != nil {
			return fmt.Errorf("scanning %s: %w", dir, err)
		}
		inputs = append(inputs, matches...)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no .tex manuscripts found in %v", dirs)
	}
	sort.Strings(inputs)

	result := pipeline.ConvertBatch(invoker, rec, cfg, inputs, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d manuscript(s) failed conversion", result.Failed)
	}
	return nil
}

// printGuidance tells the author what to check before submitting.
func printGuidance(output string) {
	fmt.Printf("\nWrote %s\n", output)
	fmt.Println("Before submitting:")
	fmt.Println("  - open the document and check heading numbering and styles")
	fmt.Println("  - verify the reference list survived the rewrite intact")
	fmt.Println("  - fill in any fields the journal's template leaves blank")
}

// convertConfig resolves conversion settings from flags, config file, and
// environment (flags win).
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	pandocPath, _ := cmd.Flags().GetString("pandoc")
	if pandocPath == "" {
		pandocPath = viper.GetString("convert.pandoc_path")
	}
	refDoc, _ := cmd.Flags().GetString("reference-doc")
	if refDoc == "" {
		refDoc = viper.GetString("convert.reference_doc")
	}
	return types.ConvertConfig{
		PandocPath:   pandocPath,
		ReferenceDoc: refDoc,
	}
}

// historyConfig resolves run-log settings from flags and config.
func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Dir:        viper.GetString("history.dir"),
		Disabled:   viper.GetBool("history.disabled"),
		MaxResults: viper.GetInt("history.max_results"),
	}
}

// openRecorder opens the history store unless recording is disabled. It
// degrades to no recording with a warning when the store cannot open.
func openRecorder(cmd *cobra.Command) (pipeline.Recorder, func()) {
	noHistory, _ := cmd.Flags().GetBool("no-history")
	cfg := historyConfig()
	if noHistory || cfg.Disabled {
		return nil, func() {}
	}

	store, err := history.NewStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: conversion history disabled: %v\n", err)
		return nil, func() {}
	}
	return store, func() { store.Close() }
}
