package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/telefunkenvf14/xmlkit"
)

type GetConfig struct {
	*MainConfig
	Optional bool `cli:"name=n desc='lenient: print nothing when file or match is missing'"`

	Get *cli.Command
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires an xpath expression", cli.ErrUsage)
	}
	src := args[0]
	for _, file := range args[1:] {
		if cfg.Optional {
			for s := range xmlkit.Read(file, cfg.NS, src) {
				fmt.Fprintln(cc.Out, s)
			}
			continue
		}
		seq, err := xmlkit.ReadStrict(file, cfg.NS, src)
		if err != nil {
			return err
		}
		for s := range seq {
			fmt.Fprintln(cc.Out, s)
		}
	}
	return nil
}

type IntConfig struct {
	*MainConfig
	Optional bool `cli:"name=n desc='lenient: print nothing on a failed read'"`

	Int *cli.Command
}

func intRun(cfg *IntConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Int.Parse(cc, args)
	if err != nil {
		cfg.Int.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: int requires an xpath expression", cli.ErrUsage)
	}
	src := args[0]
	for _, file := range args[1:] {
		if cfg.Optional {
			if n, ok := xmlkit.ReadInt(file, cfg.NS, src); ok {
				fmt.Fprintln(cc.Out, n)
			}
			continue
		}
		n, err := xmlkit.ReadIntStrict(file, cfg.NS, src)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, n)
	}
	return nil
}
