package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Wew-Laddie/OxyIPS/encode"
	"github.com/Wew-Laddie/OxyIPS/format"
	"github.com/Wew-Laddie/OxyIPS/ips"
	"github.com/Wew-Laddie/OxyIPS/libdiff"

	"github.com/fatih/color"
	"github.com/google/gops/agent"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='output with color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages'"`
	Gops    bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`
	J bool `cli:"name=j aliases=json desc='output json'"`

	OutFormat *format.Format
	Gap       ips.GapPolicy

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) gapFunc(_ *cli.Context, v string) (any, error) {
	p, err := ips.ParseGapPolicy(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Gap = p
	return p, nil
}

// start applies the options which affect the whole process.
func (cfg *MainConfig) start() {
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if cfg.colorSet() {
		color.NoColor = !cfg.Color
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
			cfg.Gops = false
		}
	}
}

func (cfg *MainConfig) stop() {
	if cfg.Gops {
		agent.Close()
		cfg.Gops = false
	}
}

func (cfg *MainConfig) outputFormat() format.Format {
	var f format.Format
	switch {
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

// colorSet reports whether -color was given on the command line.
func (cfg *MainConfig) colorSet() bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		return opt.Value != nil
	}
	return false
}

// colors returns the colors for output written to w, or nil for plain
// output.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	if cfg.colorSet() {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeFormat(cfg.outputFormat()),
		encode.EncodeColors(cfg.colors(w)),
	}
}

type ApplyConfig struct {
	*MainConfig
	DryRun bool `cli:"name=n aliases=dry-run desc='apply without writing the output file'"`

	Apply *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where   string `cli:"name=where aliases=w desc='only list records matching an expression'"`
	Preview int    `cli:"name=preview desc='number of literal bytes shown in text output'"`

	List *cli.Command
}

func (cfg *ListConfig) validate() error {
	if cfg.Preview < 0 {
		return fmt.Errorf("%w: negative preview %d", cli.ErrUsage, cfg.Preview)
	}
	return nil
}

type InfoConfig struct {
	*MainConfig

	Info *cli.Command
}

type CreateConfig struct {
	*MainConfig
	MinRun int  `cli:"name=min-run desc='shortest run encoded as rle, 0 disables rle'"`
	DryRun bool `cli:"name=n aliases=dry-run desc='build the patch without writing it'"`

	Create *cli.Command
}

func (cfg *CreateConfig) diffOpts() []libdiff.DiffOpt {
	return []libdiff.DiffOpt{libdiff.DiffMinRun(cfg.MinRun)}
}

type DiffConfig struct {
	*MainConfig
	Context int `cli:"name=context aliases=c desc='unchanged lines shown around changes'"`

	Diff *cli.Command
}

type VersionConfig struct {
	*MainConfig

	Version *cli.Command
}
