// Package preset loads named definition sets from YAML, including the
// built-in sets embedded in the binary.
package preset

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/snartpad/internal/definition"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Preset is a named, ordered list of definitions.
type Preset struct {
	Name        string                  `yaml:"name"`
	Version     int                     `yaml:"version"`
	Description string                  `yaml:"description"`
	Definitions []definition.Definition `yaml:"definitions"`
}

// LoadBuiltin loads a built-in preset by name.
func LoadBuiltin(name string) (*Preset, error) {
	filename := name + ".yaml"
	data, err := builtinFS.ReadFile("builtin/" + filename)
	if err != nil {
		return nil, fmt.Errorf("preset.LoadBuiltin: unknown preset %q: %w", name, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset.LoadBuiltin: parse %q: %w", name, err)
	}
	return p, nil
}

// Load reads a definition file from disk.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset.Load: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset.Load: parse %q: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML definition document. Unknown fields are rejected.
func Parse(data []byte) (*Preset, error) {
	var p Preset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns the names of all available built-in presets.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}

// Apply adds the preset's definitions to s in file order. Patterns that s
// refused (empty or already present) are returned.
func (p *Preset) Apply(s *definition.Set) (skipped []string) {
	for _, d := range p.Definitions {
		if !s.Add(d.Pattern, d.Points) {
			skipped = append(skipped, d.Pattern)
		}
	}
	return skipped
}

// Format renders the preset as human-readable text.
func Format(p *Preset) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (v%d)\n", p.Name, p.Version)
	if p.Description != "" {
		fmt.Fprintf(&b, "%s\n", strings.TrimSpace(p.Description))
	}
	b.WriteString("\n")
	for _, d := range p.Definitions {
		fmt.Fprintf(&b, "  %-24s -> %d\n", d.Pattern, d.Points)
	}
	return b.String()
}
