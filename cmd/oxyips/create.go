package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Wew-Laddie/OxyIPS/ips"
	"github.com/Wew-Laddie/OxyIPS/libdiff"

	"github.com/scott-cotton/cli"
)

func create(cfg *CreateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Create.Parse(cc, args)
	if err != nil {
		cfg.Create.Usage(cc, err)
		return cli.ExitCodeErr(exitUsage)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: create requires 3 arguments, an original, a modified and a patch file", cli.ErrUsage)
	}
	n, size, err := createFiles(cfg, cc.In, args[0], args[1], args[2])
	if err != nil {
		return report(os.Stderr, cfg.colors(os.Stderr), err)
	}
	what := fmt.Sprintf("%d records (%d bytes) to %s.", n, size, args[2])
	fmt.Fprintln(cc.Out, wroteLine(cfg.colors(cc.Out), cfg.DryRun, what))
	return nil
}

// createFiles writes a patch turning the file at origPath into the file at
// modPath, returning the number of records and the patch size.
func createFiles(cfg *CreateConfig, in io.Reader, origPath, modPath, patchPath string) (int, int, error) {
	orig, err := readInput(in, roleOriginal, origPath)
	if err != nil {
		return 0, 0, err
	}
	mod, err := readInput(in, roleModified, modPath)
	if err != nil {
		return 0, 0, err
	}
	recs, err := libdiff.Diff(orig, mod, cfg.diffOpts()...)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot create patch from '%s' to '%s': %w", origPath, modPath, err)
	}
	patch, err := ips.Marshal(recs)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot encode patch: %w", err)
	}
	theLog.Debug("created", "records", len(recs), "size", len(patch), "minRun", cfg.MinRun)
	if cfg.DryRun {
		return len(recs), len(patch), nil
	}
	if err := writeOutput(rolePatch, patchPath, patch); err != nil {
		return 0, 0, err
	}
	return len(recs), len(patch), nil
}
