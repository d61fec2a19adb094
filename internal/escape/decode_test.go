// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/jpartial/internal/escape"
	"github.com/google/go-cmp/cmp"
	"go4.org/mem"
)

// feed delivers the bytes of s to d, and reports the status after the last.
func feed(d *escape.Decoder, s string) escape.Status {
	st := escape.More
	for i := 0; i < len(s) && st == escape.More; i++ {
		st = d.Feed(s[i])
	}
	return st
}

func TestDecoder(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"`, ""},
		{`abc"`, "abc"},
		{`\"\\\/\b\f\n\r\t"`, "\"\\/\b\f\n\r\t"},
		{`A\u00e9"`, "A\u00e9"},
		{`\ud83d\ude00"`, "\U0001F600"},
		{`\uD83D\uDE00"`, "\U0001F600"},
		{`\ud83dx"`, "\ufffdx"},
		{`\ud83d"`, "\ufffd"},
		{`\ud83d\n"`, "\ufffd\n"},
		{`\ude00\ud83d"`, "\ufffd\ufffd"},
		{"\xff\"", "\ufffd"},
		{"ok \xc3\"", "ok \ufffd"},
	}
	for _, test := range tests {
		var d escape.Decoder
		if st := feed(&d, test.input); st != escape.Done {
			t.Errorf("Feed %#q: got status %v, want %v", test.input, st, escape.Done)
			continue
		}
		if got := d.Text(); got != test.want {
			t.Errorf("Feed %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestDecoderErrors(t *testing.T) {
	tests := []struct {
		input string
		want  escape.Status
	}{
		{`\x`, escape.BadEscape},
		{`\U`, escape.BadEscape},
		{`\u12g`, escape.BadHex},
		{`\u"`, escape.BadHex},
		{"a\x01", escape.Control},
		{"\n", escape.Control},
	}
	for _, test := range tests {
		var d escape.Decoder
		if got := feed(&d, test.input); got != test.want {
			t.Errorf("Feed %#q: got status %v, want %v", test.input, got, test.want)
		}
	}
}

func TestDecoderPrefix(t *testing.T) {
	type step struct {
		input    string
		prefix   string
		inEscape bool
	}
	tests := [][]step{
		{{"abc", "abc", false}, {"def", "abcdef", false}},
		{{`a\`, "a", true}, {`n`, "a\n", false}},
		{{`\u00`, "", true}, {`e9`, "\u00e9", false}},
		{{`x\ud83d`, "x", false}, {`\ude`, "x", true}, {`00`, "x\U0001F600", false}},
		{{"\xe2\x9c", "", false}, {"\x93", "\u2713", false}},
		{{"a\xff", "a\ufffd", false}},
	}
	for _, steps := range tests {
		var d escape.Decoder
		for i, s := range steps {
			if st := feed(&d, s.input); st != escape.More {
				t.Fatalf("Step %d %#q: got status %v, want More", i+1, s.input, st)
			}
			if got := d.Prefix(); got != s.prefix {
				t.Errorf("Step %d %#q: got prefix %#q, want %#q", i+1, s.input, got, s.prefix)
			}
			if got := d.InEscape(); got != s.inEscape {
				t.Errorf("Step %d %#q: got InEscape %v, want %v", i+1, s.input, got, s.inEscape)
			}
		}
	}
}

func TestDecoderReset(t *testing.T) {
	var d escape.Decoder
	feed(&d, `abc\ud83d\u12`)
	d.Reset()
	if st := feed(&d, `xyz"`); st != escape.Done {
		t.Fatalf("Feed after reset: got %v, want %v", st, escape.Done)
	}
	if got := d.Text(); got != "xyz" {
		t.Errorf("Text after reset: got %#q, want %#q", got, "xyz")
	}
}

func TestAppendQuote(t *testing.T) {
	for _, s := range []string{"", "plain", "tab\there", "quote\" and \\", "\x00\x1f", "\u2028", "\U0001F600"} {
		enc := escape.AppendQuote([]byte("prefix:"), mem.S(s))
		if len(enc) < 7 || string(enc[:7]) != "prefix:" {
			t.Fatalf("AppendQuote %#q: lost prefix: %#q", s, enc)
		}
		dec, err := escape.Unquote(mem.B(enc[8 : len(enc)-1]))
		if err != nil {
			t.Fatalf("Unquote %#q: %v", enc, err)
		}
		if diff := cmp.Diff(s, string(dec)); diff != "" {
			t.Errorf("Round trip %#q: (-want, +got)\n%s", s, diff)
		}
	}
}

func TestIsIdent(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"a", true},
		{"_", true},
		{"abc_123", true},
		{"Name", true},
		{"1a", false},
		{"a b", false},
		{"a-b", false},
		{"\u00e9", false},
	}
	for _, test := range tests {
		if got := escape.IsIdent(mem.S(test.input)); got != test.want {
			t.Errorf("IsIdent(%q): got %v, want %v", test.input, got, test.want)
		}
	}
}
