package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored diff output'"`

	NS map[string]string

	Main *cli.Command
}

func (cfg *MainConfig) colorEnabled() bool {
	return cfg.Color || isatty.IsTerminal(os.Stdout.Fd())
}

func nsOptFunc(ns map[string]string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		prefix, uri, ok := strings.Cut(v, "=")
		if !ok || prefix == "" {
			return nil, fmt.Errorf("%w: expected prefix=uri, got %q", cli.ErrUsage, v)
		}
		ns[prefix] = uri
		return 0, nil
	})
}

func envOptFunc(env map[string]any) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		key, val, ok := strings.Cut(v, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: expected key=val, got %q", cli.ErrUsage, v)
		}
		env[key] = val
		return 0, nil
	})
}
