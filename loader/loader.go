package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ieml/parser"
	"github.com/katalvlaran/ieml/relation"
)

// RootSpec is one universe entry in text form.
type RootSpec struct {
	Script      string   `yaml:"script"`
	Inhibitions []string `yaml:"inhibitions,omitempty"`
}

// Universe is a decoded universe document.
type Universe struct {
	Roots []RootSpec `yaml:"roots"`
}

// Decode reads a universe document. Unknown fields are rejected; an empty
// document decodes to an empty Universe.
func Decode(r io.Reader) (*Universe, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var u Universe
	if err := dec.Decode(&u); err != nil && !errors.Is(err, io.EOF) {
		return nil, &OpError{Op: "loader.decode", Err: err}
	}

	return &u, nil
}

// Load reads the universe document at path.
func Load(path string) (*Universe, error) {
	path = filepath.Clean(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpError{Op: "loader.load", Path: path, Err: err}
	}
	defer f.Close()

	u, err := Decode(f)
	if err != nil {
		var oe *OpError
		if errors.As(err, &oe) {
			oe.Path = path
		}

		return nil, err
	}

	return u, nil
}

// Resolve parses every entry into a relation.Root, keeping document order.
func (u *Universe) Resolve() ([]relation.Root, error) {
	roots := make([]relation.Root, 0, len(u.Roots))
	for i, spec := range u.Roots {
		text := strings.TrimSpace(spec.Script)
		if text == "" {
			return nil, &OpError{
				Op:  "loader.resolve",
				Err: fmt.Errorf("root %d: empty script: %w", i, ErrInvalidUniverse),
			}
		}
		s, err := parser.Parse(text)
		if err != nil {
			return nil, &OpError{Op: "loader.resolve", Err: fmt.Errorf("root %d: %w", i, err)}
		}
		kinds, err := relation.ParseKinds(spec.Inhibitions)
		if err != nil {
			return nil, &OpError{Op: "loader.resolve", Err: fmt.Errorf("root %d (%s): %w", i, text, err)}
		}
		roots = append(roots, relation.Root{Script: s, Inhibitions: kinds})
	}

	return roots, nil
}

// Texts returns the root scripts as written, in document order.
func (u *Universe) Texts() []string {
	return lo.Map(u.Roots, func(r RootSpec, _ int) string { return strings.TrimSpace(r.Script) })
}

// LoadRoots is Load followed by Resolve.
func LoadRoots(path string) ([]relation.Root, error) {
	u, err := Load(path)
	if err != nil {
		return nil, err
	}
	roots, err := u.Resolve()
	if err != nil {
		var oe *OpError
		if errors.As(err, &oe) {
			oe.Path = filepath.Clean(path)
		}

		return nil, err
	}

	return roots, nil
}
