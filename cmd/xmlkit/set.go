package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/telefunkenvf14/xmlkit"
	"github.com/telefunkenvf14/xmlkit/textdiff"
)

type SetConfig struct {
	*MainConfig
	Diff bool `cli:"name=diff desc='print a colored before/after diff'"`
	Dry  bool `cli:"name=dry desc='do not write files back'"`

	Set *cli.Command
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires an xpath and a value", cli.ErrUsage)
	}
	src, value := args[0], args[1]
	if len(args) == 2 {
		return fmt.Errorf("%w: set requires at least one file", cli.ErrUsage)
	}
	for _, file := range args[2:] {
		doc, err := xmlkit.Load(file)
		if err != nil {
			return err
		}
		before := doc.String()
		if _, err := doc.PokeNS(src, cfg.NS, value); err != nil {
			return fmt.Errorf("could not patch %q: %w", file, err)
		}
		if cfg.Diff {
			color.NoColor = !cfg.colorEnabled()
			fmt.Fprintln(cc.Out, textdiff.Diff(before, doc.String()))
		}
		if cfg.Dry {
			continue
		}
		if err := doc.Save(); err != nil {
			return err
		}
	}
	return nil
}
