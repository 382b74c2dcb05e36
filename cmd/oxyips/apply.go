package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Wew-Laddie/OxyIPS/encode"
	"github.com/Wew-Laddie/OxyIPS/ips"

	"github.com/scott-cotton/cli"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(exitUsage)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: apply requires 3 arguments, a patch, a rom and an output file", cli.ErrUsage)
	}
	return applyMain(cfg.MainConfig, cc, args[0], args[1], args[2], cfg.DryRun)
}

func applyMain(cfg *MainConfig, cc *cli.Context, patchPath, romPath, outPath string, dryRun bool) error {
	n, err := applyFiles(cfg, cc.In, patchPath, romPath, outPath, dryRun)
	if err != nil {
		return report(os.Stderr, cfg.colors(os.Stderr), err)
	}
	fmt.Fprintln(cc.Out, wroteLine(cfg.colors(cc.Out), dryRun, fmt.Sprintf("%d records to %s.", n, outPath)))
	return nil
}

// wroteLine reports a written, or with dryRun a would-be written, file.
func wroteLine(c *encode.Colors, dryRun bool, what string) string {
	verb := "Wrote"
	if dryRun {
		verb = "Would write"
	}
	return c.Sprintf(encode.OKColor, "%s", verb) + " " + what
}

// applyFiles applies the patch at patchPath to the rom at romPath and writes
// the result to outPath, returning the number of records applied. Both files
// are read before the patch signature is checked.
func applyFiles(cfg *MainConfig, in io.Reader, patchPath, romPath, outPath string, dryRun bool) (int, error) {
	if patchPath == "-" && romPath == "-" {
		return 0, fmt.Errorf("%w: only one of patch and rom can be read from stdin", cli.ErrUsage)
	}
	patch, err := readInput(in, rolePatch, patchPath)
	if err != nil {
		return 0, err
	}
	rom, err := readInput(in, roleROM, romPath)
	if err != nil {
		return 0, err
	}
	out, n, err := ips.Apply(patch, rom, ips.ApplyGap(cfg.Gap))
	if err != nil {
		return 0, &fileError{role: rolePatch, path: patchPath, err: err}
	}
	theLog.Debug("applied", "records", n, "rom", len(rom), "output", len(out), "gap", cfg.Gap)
	if dryRun {
		return n, nil
	}
	if err := writeOutput(roleOutput, outPath, out); err != nil {
		return 0, err
	}
	return n, nil
}
