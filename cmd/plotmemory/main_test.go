package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carbocation/memplot"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	for _, spec := range memplot.DefaultSpecs {
		if err := os.WriteFile(filepath.Join(dir, spec.Source), []byte("1 2.5\n2 3.75\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out := filepath.Join(dir, "chart.png")
	summary := filepath.Join(dir, "summary.csv")

	if err := run(dir, out, "", summary, 320, 240, false, false); err != nil {
		t.Fatal(err)
	}

	img, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(img, []byte("\x89PNG")) {
		t.Errorf("run did not write a PNG to %s", out)
	}

	csv, err := os.ReadFile(summary)
	if err != nil {
		t.Fatal(err)
	}
	for _, label := range []string{"LongLongMap", "HashMap", "Hashtable", "TreeMap"} {
		if !strings.Contains(string(csv), label) {
			t.Errorf("summary CSV is missing %s", label)
		}
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()

	err := run(dir, filepath.Join(dir, "chart.png"), "", "", 0, 0, false, false)
	if err == nil {
		t.Fatal("run succeeded with no input files")
	}
}
