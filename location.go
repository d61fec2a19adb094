// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpartial

import (
	"bytes"
	"fmt"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int `json:"line"`   // line number, 1-based
	Column int `json:"column"` // byte offset of column in line, 1-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// lineColAt reports the location of the byte at offset off of text. An
// offset equal to len(text) denotes the position just past the end.
func lineColAt(text []byte, off int) LineCol {
	off = min(max(off, 0), len(text))
	head := text[:off]
	line := bytes.Count(head, []byte{'\n'}) + 1
	return LineCol{Line: line, Column: off - (bytes.LastIndexByte(head, '\n') + 1) + 1}
}
