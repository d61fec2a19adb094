// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpartial

// MaxDepth is the maximum number of containers that may be open at once.
const MaxDepth = 100

// Kind is the kind of container represented by a stack frame.
type Kind byte

// Constants defining the valid Kind values.
const (
	Object Kind = iota + 1 // an object, {...}
	Array                  // an array, [...]
)

func (k Kind) String() string {
	switch k {
	case Object:
		return "object"
	case Array:
		return "array"
	}
	return "invalid kind"
}

func (k Kind) closer() Token {
	if k == Object {
		return RBrace
	}
	return RSquare
}

// FrameState is the grammar state of an open container.
type FrameState byte

// Constants defining the valid FrameState values.
const (
	AwaitingValue        FrameState = iota + 1 // array just opened, or after a comma
	AwaitingKey                                // object just opened, or after a comma
	AwaitingColon                              // object key just read
	AwaitingObjectValue                        // colon consumed
	AwaitingCommaOrClose                       // a value in this container just completed
)

var stateStr = [...]string{
	0:                    "invalid state",
	AwaitingValue:        "awaiting-value",
	AwaitingKey:          "awaiting-key",
	AwaitingColon:        "awaiting-colon",
	AwaitingObjectValue:  "awaiting-object-value",
	AwaitingCommaOrClose: "awaiting-comma-or-close",
}

func (s FrameState) String() string {
	if int(s) >= len(stateStr) {
		return stateStr[0]
	}
	return stateStr[s]
}

// A Frame describes one open container on the parser stack.
type Frame struct {
	Kind  Kind       `json:"kind"`
	State FrameState `json:"state"`

	// Key is the current member key of an object. It is empty while the
	// object is awaiting a key.
	Key string `json:"key,omitempty"`

	// Index is the index of the current element of an array: the element
	// being parsed, or the last element completed if the state is
	// AwaitingCommaOrClose.
	Index int `json:"index"`

	// Count is the number of members or elements completed so far.
	Count int `json:"count"`

	// Value is the partial container, a map[string]any or a []any. It shares
	// storage with the parser and must not be modified.
	Value any `json:"-"`
}

// A frame is the parser's record of an open container. Each frame owns the
// partial container being assembled at its level.
type frame struct {
	kind  Kind
	state FrameState
	key   string // current member key (objects)
	count int    // members or elements completed
	obj   map[string]any
	arr   []any
}

func newFrame(kind Kind) *frame {
	if kind == Object {
		return &frame{kind: kind, state: AwaitingKey, obj: make(map[string]any)}
	}
	return &frame{kind: kind, state: AwaitingValue, arr: make([]any, 0, 4)}
}

// index reports the array index of the current element of f.
func (f *frame) index() int {
	if f.state == AwaitingCommaOrClose {
		return f.count - 1
	}
	return f.count
}

// hasKey reports whether f is an object whose current key has been read.
func (f *frame) hasKey() bool {
	return f.kind == Object && f.state != AwaitingKey
}

func (f *frame) value() any {
	if f.kind == Object {
		return f.obj
	}
	return f.arr
}

func (f *frame) export() Frame {
	out := Frame{Kind: f.kind, State: f.state, Count: f.count, Value: f.value()}
	if f.kind == Array {
		out.Index = f.index()
	} else if f.hasKey() {
		out.Key = f.key
	}
	return out
}
