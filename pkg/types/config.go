// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// PandocPath is the pandoc binary name or an absolute path to it
	// (default "pandoc", resolved through PATH).
	PandocPath string `json:"pandoc_path" yaml:"pandoc_path"`

	// ReferenceDoc is the path to the reference .docx style template the
	// journal distributes. When the file is missing, conversion proceeds
	// with pandoc's default styling and a warning.
	ReferenceDoc string `json:"reference_doc" yaml:"reference_doc"`
}

// HistoryConfig holds settings for the conversion-run log.
type HistoryConfig struct {
	// Dir is the directory holding the history database
	// (default: ~/.local/state/manuscript-press).
	Dir string `json:"dir" yaml:"dir"`

	// Disabled turns off run recording entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`

	// MaxResults is the default maximum number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all stage configurations for the tool.
type Config struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	History HistoryConfig `json:"history" yaml:"history"`
}
