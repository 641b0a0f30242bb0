// Package normalization maps loosely formatted user input (flags, env vars,
// record fields) onto typed enum values.
package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer provides type-safe string-to-enum normalization.
type Normalizer[T comparable] struct {
	validValues  map[string]T
	defaultValue T
	validKeys    []string
}

// NewNormalizer creates a normalizer from string->value pairs. Keys are matched
// case-insensitively with surrounding whitespace ignored.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	keys := make([]string, 0, len(values))
	for k, v := range values {
		nk := clean(k)
		normalized[nk] = v
		keys = append(keys, nk)
	}
	sort.Strings(keys)
	return &Normalizer[T]{validValues: normalized, defaultValue: defaultValue, validKeys: keys}
}

// Normalize converts raw to the enum value, falling back to the default.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.validValues[clean(raw)]; ok {
		return v
	}
	return n.defaultValue
}

// Parse converts raw to the enum value and reports unknown input as an error.
func (n *Normalizer[T]) Parse(raw string) (T, error) {
	if v, ok := n.validValues[clean(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, valid options: %v", raw, n.validKeys)
}

// ValidKeys returns all accepted keys in sorted order.
func (n *Normalizer[T]) ValidKeys() []string {
	out := make([]string, len(n.validKeys))
	copy(out, n.validKeys)
	return out
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
