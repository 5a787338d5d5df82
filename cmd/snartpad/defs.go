package main

import (
	"github.com/dshills/snartpad/internal/definition"
	"github.com/dshills/snartpad/internal/preset"
	"github.com/dshills/snartpad/internal/schema"
	"github.com/dshills/snartpad/internal/score"
	"github.com/spf13/cobra"
)

// defFlags are the definition sources shared by score and watch.
type defFlags struct {
	presets []string
	files   []string
	inline  []string
	strict  bool
}

func addDefFlags(cmd *cobra.Command, f *defFlags) {
	flags := cmd.Flags()
	flags.StringSliceVar(&f.presets, "preset", nil, "Built-in preset name (may be repeated)")
	flags.StringSliceVar(&f.files, "defs", nil, "YAML definition file (may be repeated)")
	flags.StringArrayVar(&f.inline, "def", nil, "Inline definition as pattern=points (may be repeated)")
	flags.BoolVar(&f.strict, "strict", false, "Fail on duplicate or empty patterns in definition files")
}

// buildDefinitions assembles the definition set in order: presets, then
// definition files, then inline definitions. Later duplicates are skipped.
// It returns the set, the list of sources used, and the compiled scorer.
func buildDefinitions(f *defFlags, verbose func(string, ...any)) (*definition.Set, []string, *score.Scorer, error) {
	set := &definition.Set{}
	var sources []string

	apply := func(source string, p *preset.Preset) error {
		errs := schema.Validate(p)
		for _, e := range errs {
			verbose("%s: %s", source, e)
		}
		if schema.HasKind(errs, schema.KindInvalid) {
			return exitError(5, "invalid definitions in %s: %v", source, schema.Join(errs))
		}
		if f.strict && len(errs) > 0 {
			return exitError(5, "definition validation failed for %s (--strict): %v", source, schema.Join(errs))
		}
		for _, pattern := range p.Apply(set) {
			verbose("%s: skipping pattern %q (empty or already defined)", source, pattern)
		}
		sources = append(sources, source)
		return nil
	}

	for _, name := range f.presets {
		verbose("Loading preset: %s", name)
		p, err := preset.LoadBuiltin(name)
		if err != nil {
			return nil, nil, nil, exitError(3, "failed to load preset: %v", err)
		}
		if err := apply("preset:"+name, p); err != nil {
			return nil, nil, nil, err
		}
	}

	for _, path := range f.files {
		verbose("Loading definitions: %s", path)
		p, err := preset.Load(path)
		if err != nil {
			return nil, nil, nil, exitError(3, "failed to load definitions: %v", err)
		}
		if err := apply(path, p); err != nil {
			return nil, nil, nil, err
		}
	}

	for _, raw := range f.inline {
		d, err := definition.Parse(raw)
		if err != nil {
			return nil, nil, nil, exitError(3, "bad --def: %v", err)
		}
		if !set.Add(d.Pattern, d.Points) {
			verbose("--def: skipping pattern %q (already defined)", d.Pattern)
		}
	}
	if len(f.inline) > 0 {
		sources = append(sources, "inline")
	}

	sc, err := score.Compile(set.List())
	if err != nil {
		return nil, nil, nil, exitError(5, "%v", err)
	}
	verbose("Using %d definitions", set.Len())
	return set, sources, sc, nil
}
