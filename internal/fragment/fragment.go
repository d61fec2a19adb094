// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package fragment divides text into fragments, to simulate input that
// arrives piecemeal from a stream.
package fragment

import "math/rand/v2"

// Fixed splits text into fragments of n bytes. The last fragment may be
// shorter. If n <= 0, Fixed returns text as a single fragment.
func Fixed(text string, n int) []string {
	if n <= 0 || n >= len(text) {
		return []string{text}
	}
	out := make([]string, 0, (len(text)+n-1)/n)
	for len(text) > n {
		out = append(out, text[:n])
		text = text[n:]
	}
	return append(out, text)
}

// Random splits text into fragments whose lengths are chosen uniformly from
// 1 to limit bytes, using a generator seeded with seed. The same seed always
// yields the same split. If limit <= 0, Random returns text as a single
// fragment.
func Random(text string, limit int, seed uint64) []string {
	if limit <= 0 {
		return []string{text}
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var out []string
	for len(text) != 0 {
		n := min(1+rng.IntN(limit), len(text))
		out = append(out, text[:n])
		text = text[n:]
	}
	return out
}

// At splits text into two fragments at offset i.
func At(text string, i int) []string { return []string{text[:i], text[i:]} }
