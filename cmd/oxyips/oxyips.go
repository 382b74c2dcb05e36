package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func oxyipsMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.Y, cfg.J) > 1 {
		return fmt.Errorf("%w: must specify at most one of -y[aml] -j[son]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return writeBanner(cc.Out)
	}
	cfg.start()
	defer cfg.stop()

	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		if len(args) == 3 {
			return applyMain(cfg, cc, args[0], args[1], args[2], false)
		}
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		cfg.stop()
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}
