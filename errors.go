// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpartial

import "fmt"

// ErrorKind classifies a syntax error. The set of kinds is stable, so callers
// may branch on the kind rather than on the text of a message.
//
// An ErrorKind is itself an error, so that a *SyntaxError can be matched with
// errors.Is:
//
//	if errors.Is(res.Err, jpartial.DepthExceeded) { ... }
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	UnexpectedCharacter  ErrorKind = iota + 1 // a byte that cannot begin or continue a token
	UnexpectedToken                           // a valid token where a different class was expected
	ExpectedColon                             // an object key not followed by ":"
	ExpectedCommaOrClose                      // a value not followed by "," or the closer
	UnterminatedString                        // end of input inside a string
	InvalidEscape                             // a malformed escape sequence in a string
	InvalidNumber                             // a malformed numeric literal
	DepthExceeded                             // nesting deeper than MaxDepth
	TrailingContent                           // input after a complete document
	UnexpectedEOF                             // end of input before the document was complete
)

var kindStr = [...]string{
	0:                    "unknown error",
	UnexpectedCharacter:  "unexpected character",
	UnexpectedToken:      "unexpected token",
	ExpectedColon:        "expected colon",
	ExpectedCommaOrClose: "expected comma or close",
	UnterminatedString:   "unterminated string",
	InvalidEscape:        "invalid escape",
	InvalidNumber:        "invalid number",
	DepthExceeded:        "depth exceeded",
	TrailingContent:      "unexpected trailing content",
	UnexpectedEOF:        "unexpected end of input",
}

func (k ErrorKind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[0]
	}
	return kindStr[k]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Kind     ErrorKind `json:"kind"`
	Location LineCol   `json:"location"` // where the error was detected
	Offset   int       `json:"offset"`   // byte offset of Location, 0-based
	Message  string    `json:"message"`

	// Expected names the class of token the parser was prepared to accept at
	// the point of the error, for example `value` or `"," or "]"`.
	// It is empty if the error does not concern a misplaced token.
	Expected string `json:"expected,omitempty"`
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping. It reports the kind of s.
func (s *SyntaxError) Unwrap() error { return s.Kind }

// fail reports a syntax error of the given kind at offset off of the buffer.
// The error is delivered by panicking, and recovered at the boundary of the
// exported methods of the Parser (see run).
func (p *Parser) fail(kind ErrorKind, off int, expected, msg string, args ...any) {
	panic(&SyntaxError{
		Kind:     kind,
		Location: lineColAt(p.buf, off),
		Offset:   off,
		Message:  fmt.Sprintf(msg, args...),
		Expected: expected,
	})
}

// unexpected reports a syntax error for a token tok at offset off that does
// not fit the current grammar state.
func (p *Parser) unexpected(tok Token, off int) {
	want := p.expected()
	f := p.top()
	switch {
	case f == nil:
		p.fail(UnexpectedToken, off, want, "unexpected %v, expected %s", tok, want)
	case f.state == AwaitingColon:
		p.fail(ExpectedColon, off, want, "expected %s after object key, got %v", want, tok)
	case f.state == AwaitingCommaOrClose:
		p.fail(ExpectedCommaOrClose, off, want, "expected %s, got %v", want, tok)
	default:
		p.fail(UnexpectedToken, off, want, "unexpected %v, expected %s", tok, want)
	}
}

// expected returns a label for the class of tokens the grammar will accept in
// its current state.
func (p *Parser) expected() string {
	f := p.top()
	if f == nil {
		return "value"
	}
	switch f.state {
	case AwaitingValue:
		if f.count == 0 {
			return `value or "]"`
		}
	case AwaitingKey:
		if f.count == 0 {
			return `string key or "}"`
		}
		return "string key"
	case AwaitingColon:
		return `":"`
	case AwaitingCommaOrClose:
		return fmt.Sprintf(`"," or %v`, f.kind.closer())
	}
	return "value"
}
