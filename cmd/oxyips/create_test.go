package main

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/Wew-Laddie/OxyIPS/libdiff"

	"github.com/google/go-cmp/cmp"
)

func TestCreateApplyRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rng := rand.New(rand.NewSource(7))
	orig := make([]byte, 4096)
	rng.Read(orig)
	mod := append([]byte{}, orig...)
	for i := 100; i < 140; i++ {
		mod[i] = 0xff
	}
	mod[2000] ^= 1
	mod = append(mod, []byte("trailer")...)

	origPath := writeFile(t, dir, "orig.bin", orig)
	modPath := writeFile(t, dir, "mod.bin", mod)
	patchPath := filepath.Join(dir, "p.ips")
	outPath := filepath.Join(dir, "out.bin")

	cfg := &CreateConfig{MainConfig: &MainConfig{}, MinRun: libdiff.DefaultMinRun}
	n, size, err := createFiles(cfg, nil, origPath, modPath, patchPath)
	if err != nil {
		t.Fatal(err)
	}
	if n == 0 || size == 0 {
		t.Fatalf("got %d records in %d bytes", n, size)
	}
	if st, err := os.Stat(patchPath); err != nil || st.Size() != int64(size) {
		t.Fatalf("patch file: %v %v", st, err)
	}
	if _, err := applyFiles(cfg.MainConfig, nil, patchPath, origPath, outPath, false); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(outPath)
	if diff := cmp.Diff(mod, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestCreateShrink(t *testing.T) {
	dir := t.TempDir()
	origPath := writeFile(t, dir, "orig.bin", []byte{1, 2, 3})
	modPath := writeFile(t, dir, "mod.bin", []byte{1, 2})
	patchPath := filepath.Join(dir, "p.ips")

	cfg := &CreateConfig{MainConfig: &MainConfig{}}
	_, _, err := createFiles(cfg, nil, origPath, modPath, patchPath)
	if !errors.Is(err, libdiff.ErrShrink) {
		t.Fatalf("got %v, want %v", err, libdiff.ErrShrink)
	}
	if code := exitCode(err); code != exitCreate {
		t.Errorf("exit code %d, want %d", code, exitCreate)
	}
	if _, err := os.Stat(patchPath); err == nil {
		t.Error("patch written for shrinking file")
	}
}
