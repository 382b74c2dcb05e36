package main

import (
	"fmt"
	"os"

	"github.com/Wew-Laddie/OxyIPS/encode"
	"github.com/Wew-Laddie/OxyIPS/ips"

	"github.com/scott-cotton/cli"
)

func info(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Info.Parse(cc, args)
	if err != nil {
		cfg.Info.Usage(cc, err)
		return cli.ExitCodeErr(exitUsage)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: info requires one argument, a patch", cli.ErrUsage)
	}
	patch, err := readInput(cc.In, rolePatch, args[0])
	if err != nil {
		return report(os.Stderr, cfg.colors(os.Stderr), err)
	}
	s, err := ips.Inspect(patch)
	if err != nil {
		return report(os.Stderr, cfg.colors(os.Stderr), &fileError{role: rolePatch, path: args[0], err: err})
	}
	if err := encode.Summary(cc.Out, s, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding summary: %w", err)
	}
	return nil
}
