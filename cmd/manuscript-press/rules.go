// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/manuscript-press/internal/normalize"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the macro rewrite rules",
	Long: `Rules prints the fixed rewrite table in application order: which
macros the normalizer recognizes and what each becomes in the Markdown
handed to pandoc. The table is built into the tool; there are no
user-defined rules.`,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	infos := normalize.Describe()

	switch format {
	case "text", "":
		fmt.Printf("%-28s  %-22s  %s\n", "Macro", "Becomes", "Purpose")
		for _, info := range infos {
			example := info.Example
			if example == "" {
				example = "(dropped)"
			}
			fmt.Printf("%-28s  %-22s  %s\n", info.Macro, example, info.Summary)
		}
		return nil
	case "yaml":
		data, err := yaml.Marshal(infos)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}
