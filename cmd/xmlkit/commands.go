package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{NS: map[string]string{}}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "ns",
		Description: "bind an xml namespace prefix",
		Type:        cli.NamedFuncOpt(nsOptFunc(cfg.NS), "(prefix=uri)"),
	})

	return cli.NewCommandAt(&cfg.Main, "xmlkit").
		WithSynopsis("xmlkit [opts] command [opts]").
		WithDescription("xmlkit queries and patches xml files with xpath.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			if _, err := cfg.Main.Parse(cc, args); err != nil {
				return err
			}
			return fmt.Errorf("%w: expected a command", cli.ErrUsage)
		}).
		WithSubs(
			GetCommand(cfg),
			IntCommand(cfg),
			SetCommand(cfg),
			ApplyCommand(cfg),
			ContainsCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-n] <xpath> [files]").
		WithDescription("print xpath query results from xml files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func IntCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &IntConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Int, "int").
		WithAliases("i").
		WithSynopsis("int [-n] <xpath> [files]").
		WithDescription("print the first xpath query result as an integer").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return intRun(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [-diff] [-dry] <xpath> <value> [files]").
		WithDescription("rewrite the single node an xpath selects in xml files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts := []*cli.Opt{{
		Name:        "e",
		Description: "set an env value",
		Type:        cli.NamedFuncOpt(envOptFunc(cfg.Env), "(key=val)"),
	}}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a").
		WithSynopsis("apply [-e key=val]... [dir]").
		WithDescription("apply the patch set in dir (default .)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

func ContainsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ContainsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Contains, "contains").
		WithAliases("c").
		WithSynopsis("contains <ancestor> <path>...").
		WithDescription("report whether paths lie under an ancestor directory").
		WithRun(func(cc *cli.Context, args []string) error {
			return contains(cfg, cc, args)
		})
}
