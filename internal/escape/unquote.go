// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents, and UTF-16
// surrogate pairs written as two \u escapes are combined. Unquote reports an
// error for an invalid or incomplete escape sequence, an unescaped quotation
// mark, or an unescaped control character.
func Unquote(src mem.RO) ([]byte, error) {
	if mem.IndexByte(src, '\\') < 0 && mem.IndexByte(src, '"') < 0 && !hasControl(src) {
		if mem.ValidUTF8(src) {
			return mem.Append(make([]byte, 0, src.Len()), src), nil
		}
	}

	var d Decoder
	for i := 0; i < src.Len(); i++ {
		switch c := src.At(i); d.Feed(c) {
		case More:
			continue
		case Done:
			return nil, fmt.Errorf("unescaped quotation mark at offset %d", i)
		case BadEscape:
			return nil, fmt.Errorf("invalid escape %q at offset %d", c, i)
		case BadHex:
			return nil, fmt.Errorf("invalid Unicode escape: not a hex digit: %q", c)
		case Control:
			return nil, fmt.Errorf("unescaped control %q at offset %d", c, i)
		}
	}
	if d.InEscape() {
		return nil, errors.New("incomplete escape sequence")
	}
	d.flushHigh()
	return []byte(d.Text()), nil
}

func hasControl(src mem.RO) bool {
	for i := 0; i < src.Len(); i++ {
		if src.At(i) < ' ' {
			return true
		}
	}
	return false
}

// IsIdent reports whether s is a non-empty run of ASCII letters, digits and
// underscores not beginning with a digit.
func IsIdent(s mem.RO) bool {
	if s.Len() == 0 {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		c := s.At(i)
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
