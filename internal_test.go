// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpartial

import (
	"testing"

	"github.com/creachadair/mds/mtest"
)

func TestFailPanics(t *testing.T) {
	p := New()
	p.buf = []byte("[\n  x")
	mtest.MustPanic(t, func() { p.fail(UnexpectedCharacter, 4, "", "bad %q", 'x') })

	// A syntax error is recovered and recorded.
	p.catch(func() { p.fail(UnexpectedCharacter, 4, "", "bad %q", 'x') })
	if p.err == nil {
		t.Fatal("catch did not record the error")
	}
	if got, want := p.err.Error(), `at 2:3: bad 'x'`; got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}

	// Other panics are not recovered.
	mtest.MustPanic(t, func() { p.catch(func() { panic("unrelated") }) })
}

func TestNumState(t *testing.T) {
	tests := []struct {
		input string
		ok    bool // a complete number
	}{
		{"0", true},
		{"-0", true},
		{"7", true},
		{"-12", true},
		{"1.5", true},
		{"0.0001", true},
		{"1e5", true},
		{"1E+5", true},
		{"2.5e-10", true},
		{"-", false},
		{"1.", false},
		{"1e", false},
		{"1e+", false},
		{"00", false},
		{"-01", false},
		{"1.2.3", false},
		{"1e5.0", false},
		{".5", false},
		{"+1", false},
		{"0x1", false},
	}
	for _, test := range tests {
		if !isNumStart(test.input[0]) {
			if test.ok {
				t.Errorf("Number %q: rejected first byte", test.input)
			}
			continue
		}
		s := startNum(test.input[0])
		for i := 1; i < len(test.input) && s != numNone; i++ {
			s = s.next(test.input[i])
		}
		if got := s.accepting(); got != test.ok {
			t.Errorf("Number %q: got accepting=%v, want %v", test.input, got, test.ok)
		}
	}
}

func TestLineColAt(t *testing.T) {
	const text = "ab\ncd\n\nefg"
	tests := []struct {
		off  int
		want LineCol
	}{
		{-1, LineCol{1, 1}},
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the newline itself
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{9, LineCol{4, 3}},
		{10, LineCol{4, 4}}, // end of input
		{99, LineCol{4, 4}},
	}
	for _, test := range tests {
		if got := lineColAt([]byte(text), test.off); got != test.want {
			t.Errorf("lineColAt(%d): got %v, want %v", test.off, got, test.want)
		}
	}
}
