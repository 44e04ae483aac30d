package main

import (
	"github.com/scott-cotton/cli"

	"github.com/telefunkenvf14/xmlkit/patchset"
)

type ApplyConfig struct {
	*MainConfig
	Env map[string]any

	Apply *cli.Command
}

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	dir := "."
	if len(args) != 0 {
		dir = args[0]
	}
	set, err := patchset.Open(dir, cfg.Env)
	if err != nil {
		return err
	}
	return set.Apply()
}
