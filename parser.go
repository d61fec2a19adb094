// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpartial

// Result is the outcome of delivering input to a Parser.
type Result struct {
	// Partial is true if the input received so far is not a complete
	// document. It is also true when Err != nil.
	Partial bool

	// Value is the best-effort value reconstructed from the complete tokens
	// received so far, using the same types as encoding/json uses to decode
	// into an empty interface. Every object or array that has been opened is
	// present, even if it is not yet closed.
	//
	// The objects and arrays of a partial value are shared with the parser,
	// and may change when more input arrives. The caller must not modify them.
	Value any

	// HasValue reports whether Value is present. It is false if no value has
	// been started yet, for example when the input so far is a partial number.
	HasValue bool

	// Err is non-nil if the input contains a syntax error.
	Err *SyntaxError

	// PendingPath locates the innermost open position of a partial document.
	// It is nil if the document is complete, if Err != nil, or if the open
	// position is the root.
	PendingPath Path
}

// Complete reports whether r is a complete document without errors.
func (r Result) Complete() bool { return !r.Partial && r.Err == nil }

// State describes the progress of a Parser.
type State struct {
	Stack  []Frame `json:"stack"`  // open containers, outermost first
	Buffer string  `json:"buffer"` // all input since the last reset
}

// A Parser is a resumable parser for a single JSON document whose text is
// delivered in fragments. Each call to Resume appends a fragment to the
// buffered input and advances the parse as far as the input permits; no byte
// is examined more than once.
//
// The zero value is ready for use with default options. A Parser is not safe
// for concurrent use by multiple goroutines.
type Parser struct {
	buf []byte   // all input since the last reset
	pos int      // offset of the first unconsumed byte of buf
	stk []*frame // open containers, outermost first
	lex lexer    // the token in progress

	root    any  // the document value
	hasRoot bool // root has been assigned
	done    bool // the root value is complete
	err     *SyntaxError

	opts options
}

// New constructs a new Parser with the given options.
func New(opts ...Option) *Parser {
	p := new(Parser)
	for _, o := range opts {
		o.apply(&p.opts)
	}
	return p
}

// Parse parses a document in a new Parser with the given options. It is
// shorthand for New(opts...).Parse(text).
func Parse(text string, opts ...Option) Result { return New(opts...).Parse(text) }

// Parse begins a new document with text as its first fragment. It is
// equivalent to calling Reset followed by Resume.
func (p *Parser) Parse(text string) Result {
	p.Reset()
	return p.Resume(text)
}

// Resume appends fragment to the input and continues parsing.
//
// Once a syntax error has been reported, it is reported again by every
// subsequent call until the parser is reset.
func (p *Parser) Resume(fragment string) Result {
	p.buf = append(p.buf, fragment...)
	return p.run(p.advance)
}

// Write implements io.Writer by delivering b to Resume. It reports len(b) and
// a *SyntaxError if the input contains a syntax error.
func (p *Parser) Write(b []byte) (int, error) {
	p.buf = append(p.buf, b...)
	if res := p.run(p.advance); res.Err != nil {
		return len(b), res.Err
	}
	return len(b), nil
}

// End reports that no further input will be delivered. A number at the end of
// the input is complete. If the document is not complete, End reports an
// error of kind UnterminatedString or UnexpectedEOF.
func (p *Parser) End() Result { return p.run(p.end) }

// Reset discards all input and parser state. Options are retained.
func (p *Parser) Reset() {
	p.buf = p.buf[:0]
	p.pos = 0
	clear(p.stk)
	p.stk = p.stk[:0]
	p.lex.reset()
	p.root, p.hasRoot, p.done, p.err = nil, false, false, nil
	p.opts.debugf("parser reset")
}

// Depth reports the number of open containers.
func (p *Parser) Depth() int { return len(p.stk) }

// State reports the current state of the parser. The Value of each frame
// shares storage with the parser, and must not be modified by the caller.
func (p *Parser) State() State {
	st := State{Buffer: string(p.buf)}
	for _, f := range p.stk {
		st.Stack = append(st.Stack, f.export())
	}
	return st
}

// Restore resets p and rebuilds its state from st by parsing st.Buffer. If
// the resulting stack does not agree with st.Stack, Restore reports an error
// of kind UnexpectedToken.
func (p *Parser) Restore(st State) Result {
	res := p.Parse(st.Buffer)
	if res.Err != nil {
		return res
	}
	return p.run(func() {
		off := len(p.buf)
		if len(p.stk) != len(st.Stack) {
			p.fail(UnexpectedToken, off, "", "restored depth %d does not match saved depth %d",
				len(p.stk), len(st.Stack))
		}
		for i, f := range p.stk {
			got, want := f.export(), st.Stack[i]
			if got.Kind != want.Kind || got.State != want.State || got.Key != want.Key ||
				got.Index != want.Index || got.Count != want.Count {
				p.fail(UnexpectedToken, off, "", "restored frame %d (%v, %v) does not match saved frame (%v, %v)",
					i, got.Kind, got.State, want.Kind, want.State)
			}
		}
	})
}

// run calls f and reports the resulting state of the parse. A syntax error
// reported by f is recorded in p.err and is not propagated further.
func (p *Parser) run(f func()) Result {
	if p.err == nil {
		p.catch(f)
	}
	return p.result()
}

func (p *Parser) catch(f func()) {
	defer func() {
		if x := recover(); x != nil {
			serr, ok := x.(*SyntaxError)
			if !ok {
				panic(x)
			}
			p.err = serr
			p.opts.debugf("syntax error: %v", serr)
		}
	}()
	f()
}

func (p *Parser) result() Result {
	if p.err != nil {
		return Result{Partial: true, Value: p.root, HasValue: p.hasRoot, Err: p.err}
	}
	if p.opts.partialStrings && p.lex.tok == String && !p.inKey() {
		p.store(p.lex.str.Prefix())
	}
	res := Result{Partial: !p.done, Value: p.root, HasValue: p.hasRoot}
	if res.Partial {
		res.PendingPath = p.pendingPath()
	}
	return res
}

// advance consumes the unconsumed input.
func (p *Parser) advance() {
	for p.pos < len(p.buf) {
		if p.lex.tok != Invalid {
			p.scan()
		} else if isSpace(p.buf[p.pos]) {
			p.pos++
		} else {
			p.begin()
		}
	}
}

func (p *Parser) end() {
	switch p.lex.tok {
	case Invalid:
	case String:
		p.fail(UnterminatedString, p.lex.start, "", "unterminated string")
	case Integer, Number:
		if !p.lex.num.accepting() {
			p.fail(InvalidNumber, len(p.buf), "", "invalid number: unexpected end of input after %q",
				p.buf[p.lex.start:])
		}
		p.endNumber()
	default:
		p.fail(UnexpectedEOF, len(p.buf), p.lex.lit, "unexpected end of input in literal %s", p.lex.lit)
	}
	if !p.done {
		want := p.expected()
		p.fail(UnexpectedEOF, len(p.buf), want, "unexpected end of input, expected %s", want)
	}
}

// top returns the innermost open frame, or nil if the stack is empty.
func (p *Parser) top() *frame {
	if len(p.stk) == 0 {
		return nil
	}
	return p.stk[len(p.stk)-1]
}

// inKey reports whether the string in progress is an object key.
func (p *Parser) inKey() bool {
	f := p.top()
	return f != nil && f.state == AwaitingKey
}

// checkValue reports an error unless the grammar admits a token tok, which
// begins a value or a key, at offset off.
func (p *Parser) checkValue(tok Token, off int) {
	f := p.top()
	switch {
	case f == nil:
		if !p.hasRoot {
			return
		}
	case f.state == AwaitingValue, f.state == AwaitingObjectValue:
		return
	case f.state == AwaitingKey && tok == String:
		return
	}
	p.unexpected(tok, off)
}

// punct handles a punctuation token at offset off.
func (p *Parser) punct(tok Token, off int) {
	switch tok {
	case LBrace, LSquare:
		p.open(tok, off)
	case RBrace, RSquare:
		p.close(tok, off)
	case Comma:
		f := p.top()
		if f == nil || f.state != AwaitingCommaOrClose {
			p.unexpected(tok, off)
		}
		if f.kind == Object {
			f.state, f.key = AwaitingKey, ""
		} else {
			f.state = AwaitingValue
		}
	case Colon:
		f := p.top()
		if f == nil || f.state != AwaitingColon {
			p.unexpected(tok, off)
		}
		f.state = AwaitingObjectValue
	}
}

// open pushes a new frame for the container whose opener is at offset off.
// The empty container is attached to the document at once.
func (p *Parser) open(tok Token, off int) {
	p.checkValue(tok, off)
	if len(p.stk) >= MaxDepth {
		p.fail(DepthExceeded, off, "", "nesting depth exceeds maximum of %d", MaxDepth)
	}
	kind := Array
	if tok == LBrace {
		kind = Object
	}
	f := newFrame(kind)
	p.store(f.value())
	p.stk = append(p.stk, f)
}

// close pops the innermost frame for the closer at offset off.
func (p *Parser) close(tok Token, off int) {
	f := p.top()
	if f == nil {
		p.unexpected(tok, off)
	}
	switch f.state {
	case AwaitingCommaOrClose:
		// OK
	case AwaitingKey, AwaitingValue:
		if f.count != 0 {
			p.unexpected(tok, off) // trailing comma
		}
	default:
		p.unexpected(tok, off)
	}
	if tok != f.kind.closer() {
		p.unexpected(tok, off)
	}

	n := len(p.stk) - 1
	p.stk[n] = nil
	p.stk = p.stk[:n]
	p.complete()
}

// putString delivers a complete string token, which is either the key of an
// object member or a value.
func (p *Parser) putString(s string) {
	if f := p.top(); f != nil && f.state == AwaitingKey {
		f.key, f.state = s, AwaitingColon
		return
	}
	p.putValue(s)
}

// putValue delivers a complete scalar value.
func (p *Parser) putValue(v any) {
	p.store(v)
	p.complete()
}

// complete records that the value in the current slot is finished.
func (p *Parser) complete() {
	f := p.top()
	if f == nil {
		p.done = true
		p.opts.debugf("document complete at offset %d", p.pos)
		return
	}
	f.count++
	f.state = AwaitingCommaOrClose
}

// store assigns v to the current slot: the pending member of the innermost
// object, the current element of the innermost array, or the root.
func (p *Parser) store(v any) {
	n := len(p.stk)
	if n == 0 {
		p.root, p.hasRoot = v, true
		return
	}
	f := p.stk[n-1]
	if f.kind == Object {
		f.obj[f.key] = v
	} else if len(f.arr) > f.count {
		f.arr[f.count] = v
	} else {
		f.arr = append(f.arr, v)
		p.reattach(n - 1)
	}
}

// reattach updates the slot holding the array of frame i after its slice
// header has changed.
func (p *Parser) reattach(i int) {
	arr := p.stk[i].arr
	if i == 0 {
		p.root = arr
		return
	}
	up := p.stk[i-1]
	if up.kind == Object {
		up.obj[up.key] = arr
	} else {
		up.arr[up.count] = arr
	}
}

func (p *Parser) pendingPath() Path {
	var path Path
	for _, f := range p.stk {
		if f.kind == Array {
			path = append(path, f.index())
		} else if f.hasKey() {
			path = append(path, f.key)
		}
	}
	return path
}
