// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpartial_test

import (
	"testing"

	"github.com/creachadair/jpartial"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"h\u00e9llo \U0001F600", "\"h\u00e9llo \U0001F600\""},
		{"bad \xff byte", `"bad \ufffd byte"`},
	}
	for _, test := range tests {
		got := jpartial.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},                                      // missing quotes
		{`"missing quote`, ``, true},                        // missing quotes
		{`missing quote"`, ``, true},                        // missing quotes
		{`""`, ``, false},                                   // ok
		{`"ok go"`, "ok go", false},                         // ok
		{`"abc\ndef"`, "abc\ndef", false},                   // C escapes
		{`"\tabc\n"`, "\tabc\n", false},                     // C escapes
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false},               // C escapes
		{`"a \u0026 b"`, "a & b", false},                    // short Unicode escape
		{`"\ud83d\ude00!"`, "\U0001F600!", false},           // surrogate pair
		{`"\ud800"`, "\ufffd", false},                       // lone high surrogate
		{`"\udc00x"`, "\ufffdx", false},                     // lone low surrogate
		{`"\ud800\ud800\udc00"`, "\ufffd\U00010000", false}, // unpaired, then paired
		{"\"a\xffb\"", "a\ufffdb", false},                   // invalid UTF-8
		{`"\u"`, ``, true},                                  // incomplete Unicode escape
		{`"\u00"`, ``, true},                                // incomplete Unicode escape
		{`"\u00x9"`, ``, true},                              // invalid Unicode escape
		{`"\q"`, ``, true},                                  // invalid escape
		{`"trailing \"`, ``, true},                          // incomplete escape
		{`"a"b"`, ``, true},                                 // unescaped quote
		{"\"a\tb\"", ``, true},                              // unescaped control
		{`"a\"b"`, `a"b`, false},                            // ok
		{`"a\\b\\cd"`, `a\b\cd`, false},                     // ok
	}

	for _, test := range tests {
		got, err := jpartial.Unquote(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if got != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}
