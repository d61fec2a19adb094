// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Status reports the outcome of feeding one byte to a Decoder.
type Status byte

// Constants defining the valid Status values.
const (
	More      Status = iota // the byte was consumed and the string continues
	Done                    // the byte was the closing quotation mark
	BadEscape               // the byte is not a valid escape letter
	BadHex                  // the byte is not a hex digit inside \uXXXX
	Control                 // the byte is an unescaped control character
)

type stage byte

const (
	plain   stage = iota // ordinary string content
	escaped              // after a backslash
	unicode              // inside a \uXXXX escape
)

// A Decoder decodes the body of a JSON string one byte at a time, beginning
// after the opening quotation mark. Because it holds an incomplete escape
// sequence or an unpaired high surrogate between calls to Feed, the input may
// be divided at any byte boundary.
//
// Decoding matches encoding/json: surrogate pairs are combined, unpaired
// surrogates and invalid UTF-8 bytes become the Unicode replacement rune.
type Decoder struct {
	buf   []byte
	stage stage
	nhex  int  // hex digits read in the current \u escape
	unit  rune // value of the current \u escape
	high  rune // pending high surrogate, or 0
}

// Reset discards all decoder state.
func (d *Decoder) Reset() {
	d.buf = d.buf[:0]
	d.stage = plain
	d.nhex, d.unit, d.high = 0, 0, 0
}

// Feed consumes the next byte of the string. After Feed returns a status
// other than More, the decoder must be reset before further use.
func (d *Decoder) Feed(c byte) Status {
	switch d.stage {
	case escaped:
		if c == 'u' {
			d.stage = unicode
			d.nhex, d.unit = 0, 0
			return More
		}
		b, ok := simpleEscape(c)
		if !ok {
			return BadEscape
		}
		d.flushHigh()
		d.buf = append(d.buf, b)
		d.stage = plain
		return More

	case unicode:
		v, ok := hexValue(c)
		if !ok {
			return BadHex
		}
		d.unit = d.unit<<4 | v
		if d.nhex++; d.nhex < 4 {
			return More
		}
		d.stage = plain
		d.putUnit(d.unit)
		return More
	}

	switch {
	case c == '"':
		d.flushHigh()
		return Done
	case c == '\\':
		d.stage = escaped
		return More
	case c < ' ':
		return Control
	}
	d.flushHigh()
	d.buf = append(d.buf, c)
	return More
}

// InEscape reports whether d is in the middle of an escape sequence.
func (d *Decoder) InEscape() bool { return d.stage != plain }

// Text returns the decoded contents of a complete string.
func (d *Decoder) Text() string { return validString(d.buf) }

// Prefix returns the decoded contents of the input consumed so far, omitting
// an incomplete escape sequence, a pending high surrogate, and a trailing
// incomplete UTF-8 sequence. These may still be completed by later input.
func (d *Decoder) Prefix() string {
	buf := d.buf
	if n := len(buf); n > 0 {
		// Look back at most utf8.UTFMax-1 bytes for the start of a rune that
		// has not been completely received.
		for i := n - 1; i >= 0 && i >= n-utf8.UTFMax+1; i-- {
			if utf8.RuneStart(buf[i]) {
				if !utf8.FullRune(buf[i:]) {
					buf = buf[:i]
				}
				break
			}
		}
	}
	return validString(buf)
}

func (d *Decoder) putUnit(u rune) {
	switch {
	case !utf16.IsSurrogate(u):
		d.flushHigh()
		d.putRune(u)
	case u < 0xdc00: // high surrogate
		d.flushHigh()
		d.high = u
	case d.high != 0: // low surrogate completing a pair
		d.putRune(utf16.DecodeRune(d.high, u))
		d.high = 0
	default:
		d.putRune(utf8.RuneError)
	}
}

// flushHigh emits a replacement for a pending high surrogate that was not
// followed by its low half.
func (d *Decoder) flushHigh() {
	if d.high != 0 {
		d.putRune(utf8.RuneError)
		d.high = 0
	}
}

func (d *Decoder) putRune(r rune) { d.buf = utf8.AppendRune(d.buf, r) }

// validString converts buf to a string, replacing each byte that is not part
// of a valid UTF-8 encoding with the replacement rune.
func validString(buf []byte) string {
	if utf8.Valid(buf) {
		return string(buf)
	}
	out := make([]byte, 0, len(buf)+8)
	for len(buf) != 0 {
		r, n := utf8.DecodeRune(buf)
		out = utf8.AppendRune(out, r) // RuneError for an invalid byte
		buf = buf[n:]
	}
	return string(out)
}

func simpleEscape(c byte) (byte, bool) {
	switch c {
	case '"', '\\', '/':
		return c, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

func hexValue(c byte) (rune, bool) {
	switch {
	case '0' <= c && c <= '9':
		return rune(c - '0'), true
	case 'a' <= c && c <= 'f':
		return rune(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return rune(c - 'A' + 10), true
	}
	return 0, false
}
