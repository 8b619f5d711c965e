package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chronos-tachyon/canonhuff"
)

func TestAnalyze(t *testing.T) {
	data := []byte("this is an example for huffman encoding")
	r, err := analyze("rosetta", data, options{bytewise: true, codeLimit: 3})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if r.size != len(data) {
		t.Errorf("expected size %d, got %d", len(data), r.size)
	}
	if r.saved != r.size-r.after {
		t.Errorf("inconsistent estimate: size %d, after %d, saved %d", r.size, r.after, r.saved)
	}

	lines := strings.Split(r.text, "\n")
	if lines[0] != "rosetta" {
		t.Errorf("expected name line, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "20 x  6: ") {
		t.Errorf("expected space to be listed first, got %q", lines[1])
	}
	for _, want := range []string{"decode: pass\n", "round trip: 39 symbols in ", "would compress 39 bytes to "} {
		if !strings.Contains(r.text, want) {
			t.Errorf("output missing %q:\n%s", want, r.text)
		}
	}
}

func TestAnalyze_Nibbles(t *testing.T) {
	data := []byte{0x00, 0x01, 0x10, 0x00, 0xff}
	r, err := analyze("tiles", data, options{codeLimit: 16})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if !strings.Contains(r.text, "round trip: 10 symbols in ") {
		t.Errorf("unexpected output:\n%s", r.text)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	_, err := analyze("empty", nil, options{})
	if !errors.Is(err, canonhuff.ErrNoSymbols) {
		t.Errorf("expected ErrNoSymbols, got %v", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.bin", "b.bin", "c.bin"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(strings.Repeat(name, 10)), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}

	reports, err := run(context.Background(), paths, 2, options{codeLimit: 2})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(reports) != len(paths) {
		t.Fatalf("expected %d reports, got %d", len(paths), len(reports))
	}
	for i, r := range reports {
		if r.name != paths[i] {
			t.Errorf("report %d: expected %s, got %s", i, paths[i], r.name)
		}
		if r.size != 50 {
			t.Errorf("report %d: expected 50 bytes, got %d", i, r.size)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(context.Background(), []string{empty}, 1, options{}); !errors.Is(err, canonhuff.ErrNoSymbols) {
		t.Errorf("expected ErrNoSymbols, got %v", err)
	}
	if _, err := run(context.Background(), []string{filepath.Join(dir, "missing.bin")}, 1, options{}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
