// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

// Package dispatch maps the most recently activated sidebar control to the
// chart the interactive page should show.
package dispatch

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnboundChart is returned when a control is bound to a chart the
// registry does not know.
var ErrUnboundChart = errors.New("control bound to unknown chart")

// Control is a sidebar button. Its ID is the stable identifier carried by
// activation events.
type Control struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Chart string `json:"chart"`
}

// Target is what the content pane should show.
type Target struct {
	// Control is the active control id, or empty when nothing is selected.
	Control string `json:"control,omitempty"`
	// Chart is the chart to render. Empty when Placeholder is set.
	Chart string `json:"chart,omitempty"`
	// Placeholder means the welcome content is shown instead of a chart.
	Placeholder bool `json:"placeholder"`
}

// ChartSet reports whether a chart name exists. *chart.Registry satisfies it.
type ChartSet interface {
	Has(name string) bool
}

// Dispatcher holds the selection state for one page session. The zero
// selection is "none". A Dispatcher is safe for concurrent use.
type Dispatcher struct {
	controls []Control
	bindings map[string]string
	rank     map[string]int

	mu     sync.Mutex
	active string
}

// New creates a dispatcher for controls. The slice order is the priority
// order used to break ties between simultaneous activations. Every binding
// is checked against charts so a typo fails at startup, not at click time.
func New(controls []Control, charts ChartSet) (*Dispatcher, error) {
	d := &Dispatcher{
		controls: append([]Control(nil), controls...),
		bindings: make(map[string]string, len(controls)),
		rank:     make(map[string]int, len(controls)),
	}
	for i, c := range controls {
		if c.ID == "" {
			return nil, fmt.Errorf("control %d (%q) has no id", i, c.Label)
		}
		if _, dup := d.bindings[c.ID]; dup {
			return nil, fmt.Errorf("control %q defined twice", c.ID)
		}
		if charts != nil && !charts.Has(c.Chart) {
			return nil, fmt.Errorf("control %q: %w: %q", c.ID, ErrUnboundChart, c.Chart)
		}
		d.bindings[c.ID] = c.Chart
		d.rank[c.ID] = i
	}
	return d, nil
}

// Controls returns the controls in priority order.
func (d *Dispatcher) Controls() []Control {
	return append([]Control(nil), d.controls...)
}

// Known reports whether id is one of the dispatcher's controls.
func (d *Dispatcher) Known(id string) bool {
	_, ok := d.bindings[id]
	return ok
}

// Activate records id as the last-activated control, whatever the prior
// state was. Unknown ids are accepted and resolve to the placeholder.
func (d *Dispatcher) Activate(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active = id
}

// ActivateAll handles several controls reporting activation at once. The
// winner is the earliest id in priority order; unknown ids rank after every
// known id and among themselves in lexical order. It returns the winning id,
// or "" and leaves the state unchanged when ids is empty.
func (d *Dispatcher) ActivateAll(ids ...string) string {
	if len(ids) == 0 {
		return ""
	}
	winner := d.pick(ids)
	d.Activate(winner)
	return winner
}

func (d *Dispatcher) pick(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, iKnown := d.rank[sorted[i]]
		rj, jKnown := d.rank[sorted[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return sorted[i] < sorted[j]
		}
	})
	return sorted[0]
}

// Reset returns the dispatcher to the no-selection state.
func (d *Dispatcher) Reset() {
	d.Activate("")
}

// Active returns the last-activated control id, or "" for none.
func (d *Dispatcher) Active() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// Resolve maps the current state to what the content pane shows.
func (d *Dispatcher) Resolve() Target {
	return d.ResolveID(d.Active())
}

// ResolveID maps an arbitrary control id without touching the state.
func (d *Dispatcher) ResolveID(id string) Target {
	chart, ok := d.bindings[id]
	if id == "" || !ok {
		return Target{Control: id, Placeholder: true}
	}
	return Target{Control: id, Chart: chart}
}
