// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/manuscript-press/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversion runs",
	Long: `History lists recent conversions recorded in the local run log:
input, output, style template, duration, and outcome. Use --format to
export the log as YAML or JSON.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of runs to show (default 20)")
	historyCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")

	cfg := historyConfig()
	store, err := history.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "yaml":
		return store.ExportYAML(os.Stdout, limit)
	case "json":
		return store.ExportJSON(os.Stdout, limit)
	case "text", "":
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}

	records, err := store.Recent(limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No conversions recorded yet.")
		return nil
	}

	fmt.Printf("%-4s  %-19s  %-9s  %-30s  %s\n", "ID", "Started", "Status", "Input", "Output")
	fmt.Println(strings.Repeat("-", 90))
	for _, rec := range records {
		input := rec.Input
		if len(input) > 30 {
			input = "..." + input[len(input)-27:]
		}
		fmt.Printf("%-4d  %-19s  %-9s  %-30s  %s\n",
			rec.ID,
			rec.StartedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Status,
			input,
			rec.Output,
		)
		if rec.Error != "" {
			fmt.Printf("      error: %s\n", rec.Error)
		}
	}
	fmt.Printf("\n%d run(s)\n", len(records))
	return nil
}
