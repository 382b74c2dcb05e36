package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Wew-Laddie/OxyIPS/ips"

	"github.com/scott-cotton/cli"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.bin")
	if err := writeFileAtomic(p, []byte("one"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := writeFileAtomic(p, []byte("two"), 0644); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "two" {
		t.Errorf("got %q", d)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 {
		t.Errorf("temporary files left behind: %v", ents)
	}
}

func TestWriteOutputMissingDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope", "out.bin")
	err := writeOutput(roleOutput, p, []byte{1})
	if err == nil {
		t.Fatal("expected error")
	}
	want := "Failed to write output file '" + p + "'!"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err, want)
	}
	if code := exitCode(err); code != exitIO {
		t.Errorf("exit code %d, want %d", code, exitIO)
	}
}

func TestReadInputStdin(t *testing.T) {
	d, err := readInput(strings.NewReader("PATCHEOF"), rolePatch, "-")
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "PATCHEOF" {
		t.Errorf("got %q", d)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestReadInputError(t *testing.T) {
	_, err := readInput(errReader{}, roleROM, "-")
	if err == nil || err.Error() != "Failed to read ROM file '-'!" {
		t.Errorf("got %v", err)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{nil, exitOK},
		{cli.ErrUsage, exitUsage},
		{&fileError{err: os.ErrNotExist}, exitNotFound},
		{&fileError{err: ips.ErrInvalidSignature}, exitSignature},
		{&ips.RecordError{Err: ips.ErrTruncatedPatch}, exitTruncated},
		{&ips.RecordError{Err: ips.ErrOutOfRange}, exitRange},
		{&ips.RecordError{Err: ips.ErrOffsetGap}, exitGap},
		{ips.ErrOffsetTooLarge, exitCreate},
		{errors.New("disk on fire"), exitIO},
	}
	for _, tt := range tests {
		if code := exitCode(tt.err); code != tt.code {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, code, tt.code)
		}
	}
}

func TestReport(t *testing.T) {
	buf := &strings.Builder{}
	err := report(buf, nil, &fileError{role: rolePatch, path: "x.ips", err: ips.ErrInvalidSignature})
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := buf.String(), "Error: IPS patch file 'x.ips' is invalid!\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if err := report(buf, nil, cli.ErrUsage); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("usage error not passed through: %v", err)
	}
}

func TestListConfigValidate(t *testing.T) {
	cfg := &ListConfig{MainConfig: &MainConfig{}, Preview: -1}
	if err := cfg.validate(); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v, want usage error", err)
	}
	cfg.Preview = 0
	if err := cfg.validate(); err != nil {
		t.Error(err)
	}
}

func TestWroteLine(t *testing.T) {
	if got, want := wroteLine(nil, false, "3 records to out.bin."), "Wrote 3 records to out.bin."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := wroteLine(nil, true, "3 records to out.bin."), "Would write 3 records to out.bin."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
