// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetValue retrieves a value from a Config by dot-notation key path, such as
// "port" or "theme.primary". Intermediate keys return maps.
func GetValue(cfg *Config, keyPath string) (any, error) {
	if err := ValidateKeyPath(keyPath); err != nil {
		return nil, err
	}
	m, err := ToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return navigateMap(m, keyPath)
}

// ToMap converts a Config to a nested map via a YAML round-trip. Unset
// fields are absent.
func ToMap(cfg *Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// FlattenMap recursively flattens a nested map to dot-notation keys.
func FlattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			for sk, sv := range FlattenMap(sub, key) {
				result[sk] = sv
			}
		} else {
			result[key] = v
		}
	}
	return result
}

// ValidateKeyPath checks that a dot-notation key path names a Config field.
// It uses yaml struct tags to build the valid key set.
func ValidateKeyPath(keyPath string) error {
	if keyPath == "" {
		return fmt.Errorf("empty key path")
	}
	parts := strings.Split(keyPath, ".")
	t := reflect.TypeOf(Config{})
	for i, part := range parts {
		fields := yamlFields(t)
		ft, ok := fields[part]
		if !ok {
			where := "top-level keys"
			if i > 0 {
				where = "keys under " + strings.Join(parts[:i], ".")
			}
			return fmt.Errorf("unknown key %q; valid %s: %s", part, where, sortedKeys(fields))
		}
		if ft.Kind() != reflect.Struct && i < len(parts)-1 {
			return fmt.Errorf("key %q is a scalar; cannot use sub-keys", strings.Join(parts[:i+1], "."))
		}
		t = ft
	}
	return nil
}

// navigateMap traverses a nested map using a dot-notation key path.
func navigateMap(m map[string]any, keyPath string) (any, error) {
	var current any = m
	for _, part := range strings.Split(keyPath, ".") {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %q: parent is not a map", part)
		}
		val, exists := cm[part]
		if !exists {
			return nil, fmt.Errorf("key %q not set", keyPath)
		}
		current = val
	}
	return current, nil
}

// yamlFields maps yaml tag names of a struct type to their field types.
func yamlFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type)
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		if name := strings.Split(tag, ",")[0]; name != "" {
			fields[name] = t.Field(i).Type
		}
	}
	return fields
}

func sortedKeys(m map[string]reflect.Type) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
