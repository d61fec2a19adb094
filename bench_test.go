// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpartial_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jpartial"
	"github.com/creachadair/jpartial/internal/fragment"
)

// benchInput returns a document of n records resembling structured output
// streamed from a model.
func benchInput(n int) string {
	var sb strings.Builder
	sb.WriteString(`{"items": [`)
	for i := range n {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": "item \"%d\"", "score": %d.25e-1, "tags": ["a", "bé"], "ok": %v, "note": null}`,
			i, i, i, i%2 == 0)
	}
	sb.WriteString(`], "done": true}`)
	return sb.String()
}

func BenchmarkParse(b *testing.B) {
	input := benchInput(500)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		for b.Loop() {
			var v any
			if err := json.Unmarshal([]byte(input), &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Parse", func(b *testing.B) {
		for b.Loop() {
			if res := jpartial.Parse(input); !res.Complete() {
				b.Fatalf("Parse: partial=%v err=%v", res.Partial, res.Err)
			}
		}
	})

	// Simulate a stream of small fragments, examining the result after each.
	frags := fragment.Fixed(input, 16)
	b.Run("Resume", func(b *testing.B) {
		p := jpartial.New()
		for b.Loop() {
			p.Reset()
			var res jpartial.Result
			for _, frag := range frags {
				res = p.Resume(frag)
			}
			if !res.Complete() {
				b.Fatalf("Resume: partial=%v err=%v", res.Partial, res.Err)
			}
		}
	})
}
