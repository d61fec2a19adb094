// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpartial

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/creachadair/jpartial/internal/escape"
	"go4.org/mem"
)

// numState is the state of the number recognizer.
type numState byte

const (
	numNone      numState = iota // no number, or the byte cannot extend it
	numMinus                     // leading sign "-"
	numZero                      // integer part "0"
	numInt                       // integer part [1-9][0-9]*
	numDot                       // decimal point, no fraction digits yet
	numFrac                      // fraction digits
	numExp                       // exponent marker "e" or "E"
	numExpSign                   // exponent sign, no digits yet
	numExpDigits                 // exponent digits
)

// startNum returns the recognizer state after the first byte of a number,
// which must satisfy isNumStart.
func startNum(c byte) numState {
	switch c {
	case '-':
		return numMinus
	case '0':
		return numZero
	}
	return numInt
}

// next returns the state after s consumes c, or numNone if c cannot extend a
// number in state s.
func (s numState) next(c byte) numState {
	switch s {
	case numMinus:
		if c == '0' {
			return numZero
		} else if isDigit(c) {
			return numInt
		}
	case numInt:
		if isDigit(c) {
			return numInt
		}
		fallthrough
	case numZero:
		if c == '.' {
			return numDot
		} else if c == 'e' || c == 'E' {
			return numExp
		}
	case numDot, numFrac:
		if isDigit(c) {
			return numFrac
		} else if s == numFrac && (c == 'e' || c == 'E') {
			return numExp
		}
	case numExp:
		if c == '+' || c == '-' {
			return numExpSign
		}
		fallthrough
	case numExpSign, numExpDigits:
		if isDigit(c) {
			return numExpDigits
		}
	}
	return numNone
}

// accepting reports whether the bytes consumed so far form a complete number.
func (s numState) accepting() bool {
	return s == numZero || s == numInt || s == numFrac || s == numExpDigits
}

// A lexer holds the state of the token in progress between calls. The bytes
// of the token itself stay in the parser buffer from start onward.
type lexer struct {
	tok   Token // token in progress, or Invalid if none
	start int   // offset of the first byte of tok

	str escape.Decoder // String
	num numState       // Integer, Number
	lit string         // True, False, Null: the literal being matched
	n   int            // bytes of lit matched so far
}

func (x *lexer) reset() {
	x.tok, x.start = Invalid, 0
	x.str.Reset()
	x.num = numNone
	x.lit, x.n = "", 0
}

// begin starts the token whose first byte is at the current offset. The byte
// is known not to be whitespace.
func (p *Parser) begin() {
	off := p.pos
	c := p.buf[off]
	if p.done {
		p.fail(TrailingContent, off, "", "unexpected trailing content %q after document", p.runeAt(off))
	}
	if tok, ok := selfDelim(c); ok {
		p.pos++
		p.punct(tok, off)
		return
	}

	var tok Token
	switch {
	case c == '"':
		tok = String
	case isNumStart(c):
		tok = Integer
	case c == 't':
		tok = True
	case c == 'f':
		tok = False
	case c == 'n':
		tok = Null
	default:
		p.fail(UnexpectedCharacter, off, p.expected(), "unexpected character %q", p.runeAt(off))
	}
	p.checkValue(tok, off)

	p.lex.tok, p.lex.start = tok, off
	p.pos++
	switch tok {
	case String:
		p.lex.str.Reset()
	case Integer:
		p.lex.num = startNum(c)
	default:
		p.lex.lit, p.lex.n = tok.String(), 1
	}
}

// scan continues the token in progress. It returns when the token is
// complete or the buffer is exhausted.
func (p *Parser) scan() {
	switch p.lex.tok {
	case String:
		p.scanString()
	case Integer, Number:
		p.scanNumber()
	default:
		p.scanLiteral()
	}
}

func (p *Parser) scanString() {
	for p.pos < len(p.buf) {
		off := p.pos
		c := p.buf[off]
		p.pos++

		switch p.lex.str.Feed(c) {
		case escape.More:
			continue
		case escape.Done:
			s := p.lex.str.Text()
			p.lex.reset()
			p.putString(s)
			return
		case escape.BadEscape:
			p.fail(InvalidEscape, off, "", "invalid escape %q in string", p.runeAt(off))
		case escape.BadHex:
			p.fail(InvalidEscape, off, "", `invalid hex digit %q in \u escape`, p.runeAt(off))
		case escape.Control:
			p.fail(UnexpectedCharacter, off, "", "invalid control character %q in string", rune(c))
		}
	}
}

func (p *Parser) scanNumber() {
	for p.pos < len(p.buf) {
		c := p.buf[p.pos]
		if next := p.lex.num.next(c); next != numNone {
			if next == numDot || next == numExp {
				p.lex.tok = Number
			}
			p.lex.num = next
			p.pos++
			continue
		}

		// The number ends here, but only a delimiter may follow it.
		if !p.lex.num.accepting() || !(isSpace(c) || isDelim(c)) {
			p.fail(InvalidNumber, p.pos, "", "invalid number: unexpected %q after %q",
				p.runeAt(p.pos), p.buf[p.lex.start:p.pos])
		}
		p.endNumber()
		return
	}
}

// endNumber completes the number token ending at the current offset.
func (p *Parser) endNumber() {
	text := p.buf[p.lex.start:p.pos]
	var v any
	if p.opts.useNumber {
		v = json.Number(text)
	} else {
		f, err := mem.ParseFloat(mem.B(text), 64)
		if err != nil {
			p.fail(InvalidNumber, p.lex.start, "", "invalid number: %q is out of range", text)
		}
		v = f
	}
	p.lex.reset()
	p.putValue(v)
}

func (p *Parser) scanLiteral() {
	for p.pos < len(p.buf) {
		if p.buf[p.pos] != p.lex.lit[p.lex.n] {
			p.fail(UnexpectedCharacter, p.pos, "", "unexpected character %q in literal %s",
				p.runeAt(p.pos), p.lex.lit)
		}
		p.pos++
		if p.lex.n++; p.lex.n == len(p.lex.lit) {
			v := literalValue(p.lex.tok)
			p.lex.reset()
			p.putValue(v)
			return
		}
	}
}

func literalValue(tok Token) any {
	switch tok {
	case True:
		return true
	case False:
		return false
	}
	return nil
}

// runeAt returns the rune whose encoding begins at offset off of the buffer.
// An invalid or incomplete encoding yields utf8.RuneError.
func (p *Parser) runeAt(off int) rune {
	r, _ := utf8.DecodeRune(p.buf[off:])
	return r
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\r' || c == '\n' || c == '\t'
}

func isNumStart(c byte) bool { return c == '-' || isDigit(c) }
func isDigit(c byte) bool    { return '0' <= c && c <= '9' }

func isDelim(c byte) bool {
	_, ok := selfDelim(c)
	return ok
}
