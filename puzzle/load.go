// SPDX-License-Identifier: MIT
package puzzle

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtins embed.FS

// Load decodes one YAML definition from r. Unknown fields are rejected.
func Load(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Definition
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing puzzle: empty document: %w", ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("parsing puzzle: %w: %w", ErrInvalidDefinition, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// LoadFile reads a definition from a YAML file. A missing name defaults to
// the file's base name.
func LoadFile(file string) (*Definition, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("reading puzzle file: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}

	return d, nil
}

// Builtin returns a fresh copy of a shipped puzzle.
func Builtin(name string) (*Definition, error) {
	f, err := builtins.Open("builtin/" + name + ".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("Builtin(%q): %w", name, ErrUnknownPuzzle)
		}
		return nil, fmt.Errorf("Builtin(%q): %w", name, err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("Builtin(%q): %w", name, err)
	}
	if d.Name == "" {
		d.Name = name
	}

	return d, nil
}

// Names lists the shipped puzzles in alphabetical order.
func Names() []string {
	entries, err := builtins.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)

	return names
}
