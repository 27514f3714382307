package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/enbt/input"
)

type Config struct {
	*cli.Command

	Input    string `cli:"name=i aliases=input desc='input file with the server list, - for stdin'"`
	Output   string `cli:"name=o aliases=output desc='output file, - for stdout (default servers.dat)'"`
	NoRepair bool   `cli:"name=no-repair desc='leave unclosed containers as is instead of completing them'"`
	MaxDepth int    `cli:"name=max-depth desc='maximum container nesting depth'"`
	Color    bool   `cli:"name=color desc='color diagnostics even when stderr is not a terminal'"`
	Verbose  bool   `cli:"name=v aliases=verbose desc='log writer activity'"`

	Format *input.Format
}

func (cfg *Config) fmtFunc(_ *cli.Context, v string) (any, error) {
	f, err := input.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Format = &f
	return f, nil
}

func MainCommand() *cli.Command {
	cfg, err := envDefaults(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring environment: %v\n", err)
		cfg = &Config{Output: defaultOutput}
	}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "t",
		Aliases:     []string{"type"},
		Description: "input format: csv, toml, json, yaml, msgpack, cbor (default from the input extension)",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.fmtFunc), "(format)"),
	})
	return cli.NewCommandAt(&cfg.Command, "enbt").
		WithSynopsis("enbt -i <input> [opts]").
		WithDescription("enbt converts a list of multiplayer servers into a servers.dat file.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return enbt(cfg, cc, args)
		})
}

func enbt(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrUsage, args)
	}
	_, err = convert(cfg, cc.In, os.Stderr, isTerminal(os.Stderr))
	return err
}
