package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/telefunkenvf14/xmlkit/fspath"
)

type ContainsConfig struct {
	*MainConfig

	Contains *cli.Command
}

func contains(cfg *ContainsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Contains.Parse(cc, args)
	if err != nil {
		cfg.Contains.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: contains requires an ancestor and at least one path", cli.ErrUsage)
	}
	ancestor := args[0]
	for _, p := range args[1:] {
		fmt.Fprintf(cc.Out, "%s %v\n", p, fspath.IsSubfolderOf(p, ancestor))
	}
	return nil
}
