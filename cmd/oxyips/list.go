package main

import (
	"fmt"
	"os"

	"github.com/Wew-Laddie/OxyIPS/encode"
	"github.com/Wew-Laddie/OxyIPS/ips"
	"github.com/Wew-Laddie/OxyIPS/match"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(exitUsage)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: list requires one argument, a patch", cli.ErrUsage)
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	m, err := match.Compile(cfg.Where)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	patch, err := readInput(cc.In, rolePatch, args[0])
	if err != nil {
		return report(os.Stderr, cfg.colors(os.Stderr), err)
	}
	recs, err := ips.Parse(patch)
	if err != nil {
		return report(os.Stderr, cfg.colors(os.Stderr), &fileError{role: rolePatch, path: args[0], err: err})
	}
	idx, err := m.Filter(recs)
	if err != nil {
		return report(os.Stderr, cfg.colors(os.Stderr), err)
	}
	theLog.Debug("list", "records", len(recs), "matched", len(idx), "where", m)
	opts := append(cfg.encOpts(cc.Out), encode.EncodePreview(cfg.Preview))
	if err := encode.Records(cc.Out, recs, idx, opts...); err != nil {
		return fmt.Errorf("error encoding records: %w", err)
	}
	return nil
}
