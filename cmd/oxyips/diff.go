package main

import (
	"fmt"
	"os"

	"github.com/Wew-Laddie/OxyIPS/encode"
	"github.com/Wew-Laddie/OxyIPS/ips"
	"github.com/Wew-Laddie/OxyIPS/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(exitUsage)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments, a patch and a rom", cli.ErrUsage)
	}
	if cfg.Context < 0 {
		return fmt.Errorf("%w: negative context %d", cli.ErrUsage, cfg.Context)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: only one of patch and rom can be read from stdin", cli.ErrUsage)
	}
	errColors := cfg.colors(os.Stderr)
	patch, err := readInput(cc.In, rolePatch, args[0])
	if err != nil {
		return report(os.Stderr, errColors, err)
	}
	rom, err := readInput(cc.In, roleROM, args[1])
	if err != nil {
		return report(os.Stderr, errColors, err)
	}
	out, n, err := ips.Apply(patch, rom, ips.ApplyGap(cfg.Gap))
	if err != nil {
		return report(os.Stderr, errColors, &fileError{role: rolePatch, path: args[0], err: err})
	}
	lines := libdiff.HexDiff(rom, out)
	theLog.Debug("diff", "records", n, "lines", len(lines), "changed", libdiff.Changed(lines))
	opts := append(cfg.encOpts(cc.Out), encode.EncodeContext(cfg.Context))
	if err := encode.HexDiff(cc.Out, lines, opts...); err != nil {
		return fmt.Errorf("error encoding diff: %w", err)
	}
	return nil
}
