package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

const (
	name    = "OxyIPS"
	version = "1.0.0"
)

const bannerUsage = `Usage: oxyips [patch] [rom] [output]
       oxyips [opts] command [opts] [args]

Commands: apply, list, info, create, diff, version.
Run 'oxyips command -h' for the options of a command.
`

func writeBanner(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s by Wew-Laddie\n%s", name, version, bannerUsage)
	return err
}

func versionMain(cfg *VersionConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Version.Parse(cc, args); err != nil {
		cfg.Version.Usage(cc, err)
		return cli.ExitCodeErr(exitUsage)
	}
	_, err := fmt.Fprintf(cc.Out, "%s %s\n", name, version)
	return err
}
