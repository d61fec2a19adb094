// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpartial

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jpartial/internal/escape"

	"go4.org/mem"
)

// A Path locates a position within a JSON value. Each element is either a
// string (an object key) or an int (an array index), outermost first.
type Path []any

// String renders p in the form user.items[2].name. Keys that are not
// simple identifiers are rendered as quoted strings in brackets, for example
// ["first name"]. The empty path renders as "".
func (p Path) String() string {
	var buf []byte
	for _, elt := range p {
		switch v := elt.(type) {
		case int:
			buf = append(buf, '[')
			buf = strconv.AppendInt(buf, int64(v), 10)
			buf = append(buf, ']')
		case string:
			if escape.IsIdent(mem.S(v)) {
				if len(buf) != 0 {
					buf = append(buf, '.')
				}
				buf = append(buf, v...)
			} else {
				buf = append(buf, '[')
				buf = escape.AppendQuote(buf, mem.S(v))
				buf = append(buf, ']')
			}
		default:
			buf = fmt.Appendf(buf, "[%v]", v)
		}
	}
	return string(buf)
}

// Lookup returns the value at path p within v, as decoded by a Parser or by
// encoding/json. It reports false if p does not exist in v.
func (p Path) Lookup(v any) (any, bool) {
	for _, elt := range p {
		switch key := elt.(type) {
		case string:
			m, ok := v.(map[string]any)
			if !ok {
				return nil, false
			}
			if v, ok = m[key]; !ok {
				return nil, false
			}
		case int:
			a, ok := v.([]any)
			if !ok || key < 0 || key >= len(a) {
				return nil, false
			}
			v = a[key]
		default:
			return nil, false
		}
	}
	return v, true
}
