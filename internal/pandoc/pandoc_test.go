// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool
	versionOutput string
	runErr        error

	ranName string
	ranArgs []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Output(name string, args ...string) (string, error) {
	if !m.availableBins[name] {
		return "", errors.New("not found: " + name)
	}
	return m.versionOutput, nil
}

func (m *mockExecutor) Run(name string, args []string, stdout, stderr io.Writer) error {
	m.ranName = name
	m.ranArgs = args
	return m.runErr
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		bin     string
		exec    *mockExecutor
		wantErr bool
	}{
		{
			name: "pandoc on PATH",
			exec: &mockExecutor{availableBins: map[string]bool{"pandoc": true}},
		},
		{
			name:    "pandoc missing",
			exec:    &mockExecutor{availableBins: map[string]bool{}},
			wantErr: true,
		},
		{
			name: "overridden binary",
			bin:  "/opt/pandoc/bin/pandoc",
			exec: &mockExecutor{availableBins: map[string]bool{"/opt/pandoc/bin/pandoc": true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv := newInvoker(tt.bin, tt.exec)
			err := iv.Detect()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), "pandoc.org/installing") {
					t.Errorf("error should carry install guidance, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Detect() = %v, want nil", err)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	exec := &mockExecutor{
		availableBins: map[string]bool{"pandoc": true},
		versionOutput: "pandoc 3.1.11\nFeatures: +server +lua\n",
	}
	iv := newInvoker("", exec)

	got, err := iv.Version()
	if err != nil {
		t.Fatal(err)
	}
	if got != "pandoc 3.1.11" {
		t.Errorf("Version() = %q, want %q", got, "pandoc 3.1.11")
	}
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name         string
		referenceDoc string
		want         []string
	}{
		{
			name:         "with reference template",
			referenceDoc: "reference.docx",
			want: []string{
				"-f", "markdown", "-t", "docx",
				"--standalone", "--number-sections", "--toc=false",
				"--reference-doc=reference.docx",
				"-o", "out.docx", "in.md",
			},
		},
		{
			name: "without reference template",
			want: []string{
				"-f", "markdown", "-t", "docx",
				"--standalone", "--number-sections", "--toc=false",
				"-o", "out.docx", "in.md",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildArgs("in.md", "out.docx", tt.referenceDoc)
			if len(got) != len(tt.want) {
				t.Fatalf("buildArgs = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("buildArgs[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestConvert(t *testing.T) {
	t.Run("passes assembled args to pandoc", func(t *testing.T) {
		exec := &mockExecutor{availableBins: map[string]bool{"pandoc": true}}
		iv := newInvoker("", exec)

		if err := iv.Convert("draft.md", "draft.docx", "reference.docx", io.Discard); err != nil {
			t.Fatal(err)
		}
		if exec.ranName != "pandoc" {
			t.Errorf("ran %q, want pandoc", exec.ranName)
		}
		joined := strings.Join(exec.ranArgs, " ")
		for _, want := range []string{"--reference-doc=reference.docx", "-o draft.docx draft.md", "--number-sections"} {
			if !strings.Contains(joined, want) {
				t.Errorf("args %q missing %q", joined, want)
			}
		}
	})

	t.Run("surfaces pandoc failure", func(t *testing.T) {
		exec := &mockExecutor{
			availableBins: map[string]bool{"pandoc": true},
			runErr:        errors.New("exit status 64"),
		}
		iv := newInvoker("", exec)

		err := iv.Convert("draft.md", "draft.docx", "", io.Discard)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "draft.md") {
			t.Errorf("error should name the input, got: %v", err)
		}
	})
}
