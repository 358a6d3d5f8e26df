// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunStatus indicates the outcome of one manuscript conversion.
type RunStatus string

const (
	RunConverted RunStatus = "converted"
	RunFailed    RunStatus = "failed"
)

// RunRecord holds the details of one conversion run as kept in the
// history log.
type RunRecord struct {
	// ID is assigned by the history store on insert.
	ID int64 `json:"id" yaml:"id"`

	// Input is the manuscript path as given on the command line.
	Input string `json:"input" yaml:"input"`

	// Output is the path the word-processor document was written to.
	Output string `json:"output" yaml:"output"`

	// ReferenceDoc is the style template passed to pandoc, empty when the
	// run fell back to default styling.
	ReferenceDoc string `json:"reference_doc,omitempty" yaml:"reference_doc,omitempty"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Duration is how long the run took, including the pandoc call.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Status records whether the run produced a document.
	Status RunStatus `json:"status" yaml:"status"`

	// Error holds the failure description for failed runs.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
