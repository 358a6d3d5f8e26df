// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/manuscript-press/internal/pandoc"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the conversion environment",
	Long: `Check reports whether pandoc is installed, whether the journal's
reference style template is present, and where conversion history is kept.
It exits non-zero when pandoc is missing, since nothing can be converted
without it.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("pandoc", "", "pandoc binary name or path (default \"pandoc\")")
	checkCmd.Flags().String("reference-doc", "", "reference .docx style template (default \"reference.docx\")")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(cmd)
	invoker := pandoc.New(cfg.PandocPath)

	if err := invoker.Detect(); err != nil {
		fmt.Printf("pandoc:          missing\n")
		return err
	}
	version, err := invoker.Version()
	if err != nil {
		version = "version unknown"
	}
	fmt.Printf("pandoc:          %s (%s)\n", cfg.PandocPath, version)

	if _, err := os.Stat(cfg.ReferenceDoc); err == nil {
		fmt.Printf("reference doc:   %s (found)\n", cfg.ReferenceDoc)
	} else {
		fmt.Printf("reference doc:   %s (missing, pandoc default styling will be used)\n", cfg.ReferenceDoc)
	}

	hist := historyConfig()
	if hist.Disabled {
		fmt.Printf("history:         disabled\n")
	} else {
		fmt.Printf("history:         %s\n", filepath.Join(hist.Dir, "history.db"))
	}
	return nil
}
