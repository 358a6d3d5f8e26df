// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pandoc invokes the external pandoc converter with the journal's
// fixed option set. Pandoc does all actual rendering and .docx production;
// this package only assembles options and surfaces pandoc's exit status.
package pandoc

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const binPandoc = "pandoc"

// installHint is printed when pandoc cannot be found on PATH.
const installHint = "install it from https://pandoc.org/installing or your package manager (e.g. apt install pandoc)"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) (string, error)
	Run(name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

func (o *osExecutor) Run(name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// Invoker runs pandoc. The binary name may be overridden through
// configuration; the option set is fixed.
type Invoker struct {
	bin  string
	exec executor
}

// New creates an Invoker for the given pandoc binary. An empty bin selects
// "pandoc" resolved through PATH.
func New(bin string) *Invoker {
	return newInvoker(bin, defaultExec)
}

func newInvoker(bin string, exec executor) *Invoker {
	if bin == "" {
		bin = binPandoc
	}
	return &Invoker{bin: bin, exec: exec}
}

// Detect verifies that the pandoc binary is reachable. It is called before
// any file work so a missing converter fails fast with install guidance.
func (iv *Invoker) Detect() error {
	if _, err := iv.exec.LookPath(iv.bin); err != nil {
		return fmt.Errorf("pandoc not found (%q): %s", iv.bin, installHint)
	}
	return nil
}

// Version returns the first line of `pandoc --version`.
func (iv *Invoker) Version() (string, error) {
	out, err := iv.exec.Output(iv.bin, "--version")
	if err != nil {
		return "", fmt.Errorf("querying pandoc version: %w", err)
	}
	line, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(line), nil
}

// buildArgs assembles the fixed option set: Markdown in, standalone .docx
// out, numbered sections, no table of contents, optional style template.
func buildArgs(inPath, outPath, referenceDoc string) []string {
	args := []string{
		"-f", "markdown",
		"-t", "docx",
		"--standalone",
		"--number-sections",
		"--toc=false",
	}
	if referenceDoc != "" {
		args = append(args, "--reference-doc="+referenceDoc)
	}
	return append(args, "-o", outPath, inPath)
}

// Convert runs pandoc over the normalized Markdown at inPath, writing the
// document to outPath. referenceDoc may be empty, in which case pandoc's
// default styling applies. Pandoc's own diagnostics go to diag; its exit
// status is the conversion verdict.
func (iv *Invoker) Convert(inPath, outPath, referenceDoc string, diag io.Writer) error {
	if diag == nil {
		diag = os.Stderr
	}
	args := buildArgs(inPath, outPath, referenceDoc)
	if err := iv.exec.Run(iv.bin, args, diag, diag); err != nil {
		return fmt.Errorf("pandoc conversion of %s failed: %w", inPath, err)
	}
	return nil
}
