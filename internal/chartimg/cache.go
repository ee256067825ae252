// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package chartimg

import (
	"bytes"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/davetashner/lakedash/internal/chart"
)

// Cache memoizes rendered images per chart name and format. Concurrent
// requests for the same key share one render. Specs are immutable, so
// entries never go stale.
type Cache struct {
	width int
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string][]byte

	// renderFunc is swapped in tests to count renders.
	renderFunc func(spec chart.Spec, format Format, width int) ([]byte, error)
}

// NewCache returns an empty cache rendering at width pixels.
func NewCache(width int) *Cache {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Cache{
		width:      width,
		entries:    make(map[string][]byte),
		renderFunc: renderBytes,
	}
}

func renderBytes(spec chart.Spec, format Format, width int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, spec, format, width); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Get returns the encoded image for spec, rendering it on first use. The
// returned slice is shared and must not be modified.
func (c *Cache) Get(spec chart.Spec, format Format) ([]byte, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	key := spec.Name + "." + string(format)

	c.mu.RLock()
	b, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return b, nil
	}

	v, err, shared := c.group.Do(key, func() (any, error) {
		out, err := c.renderFunc(spec, format, c.width)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = out
		c.mu.Unlock()
		slog.Debug("chart image rendered", "chart", spec.Name, "format", format, "bytes", len(out))
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		slog.Debug("chart image render shared", "chart", spec.Name, "format", format)
	}
	return v.([]byte), nil
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
