// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/davetashner/lakedash/internal/dataset"
)

// Definition binds a chart name to the dataset and style it is built from.
type Definition struct {
	Name    string
	Dataset string
	Kind    Kind
	Style   Style
}

// Registry maps chart names to specs built once at startup.
type Registry struct {
	specs map[string]Spec
	order []string // definition order for deterministic listing
}

// NewRegistry builds every definition against tbl. A definition naming a
// dataset that tbl does not hold is a programming error and fails the whole
// registry.
func NewRegistry(tbl *dataset.Table, defs []Definition) (*Registry, error) {
	r := &Registry{specs: make(map[string]Spec, len(defs))}
	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("chart definition for dataset %q has no name", def.Dataset)
		}
		if _, exists := r.specs[def.Name]; exists {
			return nil, fmt.Errorf("chart %q defined twice", def.Name)
		}
		d, err := tbl.Get(def.Dataset)
		if err != nil {
			return nil, fmt.Errorf("chart %q: %w", def.Name, err)
		}
		spec, err := Build(d, def.Kind, def.Style)
		if err != nil {
			return nil, fmt.Errorf("chart %q: %w", def.Name, err)
		}
		spec.Name = def.Name
		r.specs[def.Name] = spec
		r.order = append(r.order, def.Name)
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
func MustRegistry(tbl *dataset.Table, defs []Definition) *Registry {
	r, err := NewRegistry(tbl, defs)
	if err != nil {
		panic(fmt.Sprintf("chart registry: %v", err))
	}
	return r
}

// Get returns a copy of the named spec.
func (r *Registry) Get(name string) (Spec, bool) {
	s, ok := r.specs[name]
	if !ok {
		return Spec{}, false
	}
	return s.Clone(), true
}

// Lookup is like Get but returns ErrUnknownChart for a missing name.
func (r *Registry) Lookup(name string) (Spec, error) {
	s, ok := r.Get(name)
	if !ok {
		names := r.Names()
		sort.Strings(names)
		return Spec{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownChart, name, strings.Join(names, ", "))
	}
	return s, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.specs[name]
	return ok
}

// Names returns chart names in definition order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns copies of every spec in definition order.
func (r *Registry) All() []Spec {
	out := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.specs[name].Clone())
	}
	return out
}

// Len returns the number of registered charts.
func (r *Registry) Len() int {
	return len(r.order)
}
