// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the manuscript conversion end to end: read the
// source, rewrite journal macros, stage the normalized Markdown in a
// transient file, and hand it to the converter. The transient file is
// uniquely named per run and removed on every exit path.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/manuscript-press/internal/normalize"
	"github.com/pdiddy/manuscript-press/pkg/types"
)

// docxExt is the word-processor document extension for derived output paths.
const docxExt = ".docx"

// Converter turns a normalized Markdown file into the output document.
// The pandoc invoker implements it; tests supply fakes.
type Converter interface {
	Convert(inPath, outPath, referenceDoc string, diag io.Writer) error
}

// Recorder persists run records for the history log. A nil Recorder
// disables recording.
type Recorder interface {
	Record(rec types.RunRecord) (int64, error)
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the total number of manuscripts processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any manuscript failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// DefaultOutputPath derives the output document path from the manuscript
// path by swapping its extension for .docx.
func DefaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + docxExt
}

// ConvertFile converts one manuscript. An empty output selects the default
// derived path. The outcome is recorded through rec (best effort: a
// recording failure is a warning, never a conversion failure) and reported
// as a status line on w.
func ConvertFile(c Converter, rec Recorder, cfg types.ConvertConfig, input, output string, w io.Writer) types.RunStatus {
	if output == "" {
		output = DefaultOutputPath(input)
	}
	started := time.Now()

	refDoc, err := runOne(c, cfg, input, output, w)

	record := types.RunRecord{
		Input:        input,
		Output:       output,
		ReferenceDoc: refDoc,
		StartedAt:    started.UTC(),
		Duration:     time.Since(started),
		Status:       types.RunConverted,
	}
	if err != nil {
		record.Status = types.RunFailed
		record.Error = err.Error()
	}
	if rec != nil {
		if _, recErr := rec.Record(record); recErr != nil {
			fmt.Fprintf(w, "warning: could not record run history: %v\n", recErr)
		}
	}

	if err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", input, err)
		return types.RunFailed
	}
	fmt.Fprintf(w, "converted: %s -> %s\n", input, output)
	return types.RunConverted
}

// runOne performs the actual conversion steps and returns the reference
// template that was used ("" when styling fell back to pandoc defaults).
func runOne(c Converter, cfg types.ConvertConfig, input, output string, w io.Writer) (string, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("manuscript %s does not exist", input)
		}
		return "", fmt.Errorf("reading manuscript %s: %w", input, err)
	}

	normalized := normalize.Apply(string(data))

	tmp, err := os.CreateTemp("", "manuscript-press-*.md")
	if err != nil {
		return "", fmt.Errorf("creating transient file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(normalized); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing transient file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing transient file: %w", err)
	}

	refDoc := cfg.ReferenceDoc
	if refDoc != "" {
		if _, err := os.Stat(refDoc); err != nil {
			fmt.Fprintf(w, "warning: reference template %s not found, using pandoc default styling\n", refDoc)
			refDoc = ""
		}
	}

	if err := c.Convert(tmp.Name(), output, refDoc, w); err != nil {
		return refDoc, err
	}
	return refDoc, nil
}

// ConvertBatch processes manuscripts in order, printing per-file status to
// w and returning a summary.
func ConvertBatch(c Converter, rec Recorder, cfg types.ConvertConfig, inputs []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, input := range inputs {
		switch ConvertFile(c, rec, cfg, input, "", w) {
		case types.RunConverted:
			result.Converted++
		case types.RunFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}
