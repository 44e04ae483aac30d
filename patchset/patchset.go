// Package patchset interprets a directory holding a declarative list of
// XML patches.
package patchset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"

	"github.com/telefunkenvf14/xmlkit"
	"github.com/telefunkenvf14/xmlkit/debug"
)

// Patch is one declarative XML rewrite: an XPath into a file and the
// replacement value, either literal (value) or computed from the env
// (valueFrom). An optional if expression gates the patch.
type Patch struct {
	File      string            `yaml:"file"`
	Path      string            `yaml:"path"`
	Value     string            `yaml:"value,omitempty"`
	ValueFrom string            `yaml:"valueFrom,omitempty"`
	NS        map[string]string `yaml:"ns,omitempty"`
	If        string            `yaml:"if,omitempty"`
}

// Set is a loaded patches.{yaml,yml} file. Patches whose if expression
// evaluated false over the env have already been filtered out.
type Set struct {
	Root    string         `yaml:"-"`
	Env     map[string]any `yaml:"env,omitempty"`
	Patches []Patch        `yaml:"patches"`
}

// Open loads the patch set in dir. Entries of env override the file's
// own env before if expressions are evaluated.
func Open(dir string, env map[string]any) (*Set, error) {
	if debug.Patchset() {
		debug.Logf("open patch set in %q env %s\n", dir, debug.JSON(env))
	}
	extensions := []string{".yaml", ".yml"}
	var (
		data  []byte
		path  string
		found bool
	)
	for _, ext := range extensions {
		candidate := filepath.Join(dir, "patches"+ext)
		d, err := os.ReadFile(candidate)
		if err == nil {
			data, path, found = d, candidate, true
			break
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not read %q: %w", candidate, err)
		}
	}
	if !found {
		return nil, fmt.Errorf("could not find patches.{yaml,yml} in %q", dir)
	}
	set := &Set{Root: dir}
	if err := yaml.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}
	if set.Env == nil {
		set.Env = map[string]any{}
	}
	for k, v := range env {
		set.Env[k] = v
	}
	if err := set.filterPatches(); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *Set) filterPatches() error {
	j := 0
	for i := range s.Patches {
		p := &s.Patches[i]
		if p.If == "" {
			s.Patches[j] = *p
			j++
			continue
		}
		prg, err := expr.Compile(p.If, expr.Env(s.Env), expr.AllowUndefinedVariables(), expr.AsBool())
		if err != nil {
			return fmt.Errorf("could not compile if %q: %w", p.If, err)
		}
		res, err := expr.Run(prg, s.Env)
		if err != nil {
			return fmt.Errorf("could not evaluate if %q: %w", p.If, err)
		}
		if ok, _ := res.(bool); !ok {
			if debug.Patchset() {
				debug.Logf("skip patch %s %s\n", p.File, p.Path)
			}
			continue
		}
		s.Patches[j] = *p
		j++
	}
	s.Patches = s.Patches[:j]
	return nil
}

// value resolves the replacement value of p against the set env.
func (s *Set) value(p *Patch) (string, error) {
	switch {
	case p.Value != "" && p.ValueFrom != "":
		return "", fmt.Errorf("patch %s %s: value and valueFrom are mutually exclusive", p.File, p.Path)
	case p.ValueFrom == "":
		return p.Value, nil
	}
	prg, err := expr.Compile(p.ValueFrom, expr.Env(s.Env), expr.AllowUndefinedVariables())
	if err != nil {
		return "", fmt.Errorf("could not compile valueFrom %q: %w", p.ValueFrom, err)
	}
	res, err := expr.Run(prg, s.Env)
	if err != nil {
		return "", fmt.Errorf("could not evaluate valueFrom %q: %w", p.ValueFrom, err)
	}
	return fmt.Sprintf("%v", res), nil
}

// Apply runs every remaining patch through the file-backed poke. Patch
// file paths are relative to the set root.
func (s *Set) Apply() error {
	for i := range s.Patches {
		p := &s.Patches[i]
		value, err := s.value(p)
		if err != nil {
			return err
		}
		target := filepath.Join(s.Root, p.File)
		if debug.Patchset() {
			debug.Logf("patch %s %s = %q\n", target, p.Path, value)
		}
		if err := xmlkit.PokeFileNS(target, p.Path, p.NS, value); err != nil {
			return err
		}
	}
	return nil
}
