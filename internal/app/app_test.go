package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const referenceInput = "eightwothree\n" +
	"abcone2threexyz\n" +
	"treb7uchet\n" +
	"7pqrstsixteen\n" +
	"abcdefg\n"

func TestRun_ReferenceFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(in, []byte(referenceInput), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	var out bytes.Buffer
	a := New(Config{InputPath: in, ReportEvery: time.Hour})
	a.out = &out

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.HasSuffix(out.String(), "\nTotal amount: 249\n") {
		t.Fatalf("missing trailing total:\n%s", out.String())
	}
}

func TestRun_OpenFailure(t *testing.T) {
	a := New(Config{InputPath: filepath.Join(t.TempDir(), "missing.txt")})
	err := a.Run(context.Background())
	if !errors.Is(err, ErrOpenInput) {
		t.Fatalf("expected ErrOpenInput, got %v", err)
	}
}

func TestRun_WritesPDFSummary(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	pdfPath := filepath.Join(dir, "summary.pdf")
	if err := os.WriteFile(in, []byte(referenceInput), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	a := New(Config{InputPath: in, OutputPDFPath: pdfPath, ReportEvery: time.Hour})
	a.out = &bytes.Buffer{}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run error: %v", err)
	}

	st, err := os.Stat(pdfPath)
	if err != nil || st.Size() == 0 {
		t.Fatalf("expected PDF artifact, err=%v", err)
	}
}
