// Package testutil defines support code for unit tests.
package testutil

import (
	"encoding/json"
	"testing"
)

// MustDecode decodes text with encoding/json into an empty interface, or
// fails the test.
func MustDecode(t testing.TB, text string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		t.Fatalf("Decode %#q: %v", text, err)
	}
	return v
}

// Clone returns a deep copy of v, which must be composed of the types that
// encoding/json produces when decoding into an empty interface.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for key, elt := range t {
			m[key] = Clone(elt)
		}
		return m
	case []any:
		a := make([]any, len(t))
		for i, elt := range t {
			a[i] = Clone(elt)
		}
		return a
	}
	return v
}

// Subsumes reports whether every member and element of old is present with
// the same value in cur. Objects and arrays in cur may have grown; scalars
// must be equal.
func Subsumes(cur, old any) bool {
	switch o := old.(type) {
	case map[string]any:
		c, ok := cur.(map[string]any)
		if !ok {
			return false
		}
		for key, elt := range o {
			if v, ok := c[key]; !ok || !Subsumes(v, elt) {
				return false
			}
		}
		return true
	case []any:
		c, ok := cur.([]any)
		if !ok || len(c) < len(o) {
			return false
		}
		for i, elt := range o {
			if !Subsumes(c[i], elt) {
				return false
			}
		}
		return true
	}
	return cur == old
}
