package main

import (
	"github.com/Wew-Laddie/OxyIPS/libdiff"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "gap",
			Description: "records past the end of the image: zero (pad, default), append (at the end), error",
			Type:        cli.NamedFuncOpt(cfg.gapFunc, "(policy)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "oxyips").
		WithSynopsis("oxyips [opts] <patch> <rom> <output> | oxyips [opts] command [opts]").
		WithDescription("oxyips applies, inspects and creates IPS patches.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return oxyipsMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			ListCommand(cfg),
			InfoCommand(cfg),
			CreateCommand(cfg),
			DiffCommand(cfg),
			VersionCommand(cfg))
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a", "ap").
		WithSynopsis("apply [-n] <patch> <rom> <output>").
		WithDescription(applyDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

const applyDescription = `apply applies an IPS patch to a ROM image and writes the result.

The patch and the ROM are read completely before any record is applied. The
output file is only written once every record applied cleanly, so a bad
patch never leaves a partial output behind. A patch or ROM path of '-' reads
standard input.

Records starting past the end of the image are handled according to the
-gap option of oxyips:

  zero    pad the image with zero bytes up to the record offset (default)
  append  write the record at the current end of the image, as the
          original OxyIPS did
  error   fail

Exit status

  0 success, 1 usage, 2 file not found, 3 i/o failure, 4 invalid signature,
  5 truncated patch, 6 write out of range, 7 offset gap (-gap error)`

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg, Preview: 8}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [-where expr] <patch>").
		WithDescription(listDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

const listDescription = `list lists the records of an IPS patch.

-where takes an expression over the fields

  index   position of the record in the patch
  offset  target offset
  size    number of bytes written
  end     offset + size
  kind    "literal" or "rle"
  fill    fill byte of rle records, -1 for literals

for example: -where 'kind == "rle" && offset >= 0x8000'`

func InfoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InfoConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Info, "info").
		WithAliases("i").
		WithSynopsis("info <patch>").
		WithDescription("summarize the structure of an IPS patch").
		WithRun(func(cc *cli.Context, args []string) error {
			return info(cfg, cc, args)
		})
}

func CreateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CreateConfig{MainConfig: mainCfg, MinRun: libdiff.DefaultMinRun}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Create, "create").
		WithAliases("c", "mk").
		WithSynopsis("create [-min-run n] [-n] <original> <modified> <patch>").
		WithDescription("create an IPS patch turning original into modified").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return create(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 2}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-context n] <patch> <rom>").
		WithDescription("show a hex dump diff of a ROM before and after patching").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VersionConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Version, "version").
		WithSynopsis("version").
		WithDescription("print the version").
		WithRun(func(cc *cli.Context, args []string) error {
			return versionMain(cfg, cc, args)
		})
}
