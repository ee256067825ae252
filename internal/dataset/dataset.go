// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

// Package dataset holds the fixed survey tables that feed every chart.
// Datasets are defined once at process start and never mutated.
package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownDataset is returned when a dataset name does not resolve.
var ErrUnknownDataset = errors.New("unknown dataset")

// Row is a single (category, value) entry. Group is the secondary key for
// grouped datasets (e.g. the year or the income level) and is empty otherwise.
type Row struct {
	Category string  `json:"category" yaml:"category" toml:"category"`
	Group    string  `json:"group,omitempty" yaml:"group,omitempty" toml:"group,omitempty"`
	Value    float64 `json:"value" yaml:"value" toml:"value"`
}

// Dataset is a named, ordered table of rows.
type Dataset struct {
	Name          string `json:"name" yaml:"name" toml:"name"`
	Title         string `json:"title" yaml:"title" toml:"title"`
	CategoryLabel string `json:"category_label" yaml:"category_label" toml:"category_label"`
	ValueLabel    string `json:"value_label" yaml:"value_label" toml:"value_label"`
	GroupLabel    string `json:"group_label,omitempty" yaml:"group_label,omitempty" toml:"group_label,omitempty"`
	Rows          []Row  `json:"rows" yaml:"rows" toml:"rows"`
}

// Grouped reports whether the dataset carries a secondary grouping key.
func (d *Dataset) Grouped() bool {
	return d.GroupLabel != ""
}

// Categories returns the category of every row, in row order.
func (d *Dataset) Categories() []string {
	out := make([]string, len(d.Rows))
	for i, r := range d.Rows {
		out[i] = r.Category
	}
	return out
}

// Values returns the value of every row, in row order.
func (d *Dataset) Values() []float64 {
	out := make([]float64, len(d.Rows))
	for i, r := range d.Rows {
		out[i] = r.Value
	}
	return out
}

// Groups returns the distinct group keys in order of first appearance.
func (d *Dataset) Groups() []string {
	if !d.Grouped() {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, r := range d.Rows {
		if !seen[r.Group] {
			seen[r.Group] = true
			out = append(out, r.Group)
		}
	}
	return out
}

// Total returns the sum of all row values.
func (d *Dataset) Total() float64 {
	var sum float64
	for _, r := range d.Rows {
		sum += r.Value
	}
	return sum
}

// Clone returns a deep copy so callers cannot mutate the shared table.
func (d *Dataset) Clone() *Dataset {
	c := *d
	c.Rows = make([]Row, len(d.Rows))
	copy(c.Rows, d.Rows)
	return &c
}

// Validate checks the structural rules every dataset must satisfy.
func (d *Dataset) Validate() error {
	var errs []string
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, "name: must not be empty")
	}
	if d.CategoryLabel == "" {
		errs = append(errs, "category_label: must not be empty")
	}
	if d.ValueLabel == "" {
		errs = append(errs, "value_label: must not be empty")
	}

	seen := make(map[string]bool, len(d.Rows))
	for i, r := range d.Rows {
		if r.Category == "" {
			errs = append(errs, fmt.Sprintf("rows[%d]: empty category", i))
			continue
		}
		if d.Grouped() && r.Group == "" {
			errs = append(errs, fmt.Sprintf("rows[%d]: missing %s", i, strings.ToLower(d.GroupLabel)))
		}
		if !d.Grouped() && r.Group != "" {
			errs = append(errs, fmt.Sprintf("rows[%d]: group %q set on ungrouped dataset", i, r.Group))
		}
		key := r.Group + "\x00" + r.Category
		if seen[key] {
			errs = append(errs, fmt.Sprintf("rows[%d]: duplicate category %q", i, r.Category))
		}
		seen[key] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("dataset %q invalid:\n  %s", d.Name, strings.Join(errs, "\n  "))
	}
	return nil
}

// Table is an immutable name -> dataset mapping that preserves definition order.
type Table struct {
	byName map[string]*Dataset
	order  []string
}

// NewTable validates the datasets and indexes them by name.
func NewTable(sets ...*Dataset) (*Table, error) {
	t := &Table{byName: make(map[string]*Dataset, len(sets))}
	for _, d := range sets {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, exists := t.byName[d.Name]; exists {
			return nil, fmt.Errorf("dataset %q defined twice", d.Name)
		}
		t.byName[d.Name] = d.Clone()
		t.order = append(t.order, d.Name)
	}
	return t, nil
}

// MustTable is like NewTable but panics on error. Only for static data.
func MustTable(sets ...*Dataset) *Table {
	t, err := NewTable(sets...)
	if err != nil {
		panic(err)
	}
	return t
}

// Get returns a copy of the named dataset.
func (t *Table) Get(name string) (*Dataset, error) {
	d, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownDataset, name, strings.Join(t.sortedNames(), ", "))
	}
	return d.Clone(), nil
}

// Has reports whether the named dataset exists.
func (t *Table) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Names returns dataset names in definition order.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// All returns copies of every dataset in definition order.
func (t *Table) All() []*Dataset {
	out := make([]*Dataset, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.byName[name].Clone())
	}
	return out
}

// Len returns the number of datasets.
func (t *Table) Len() int {
	return len(t.order)
}

func (t *Table) sortedNames() []string {
	names := t.Names()
	sort.Strings(names)
	return names
}
