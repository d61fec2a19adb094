// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jpartial implements a resumable parser for JSON documents that
// arrive in fragments, such as text streamed from a language model.
//
// # Parsing
//
// Construct a Parser with New and deliver the text of a document in pieces of
// any size. After each piece, the parser reports a Result describing what it
// has seen so far:
//
//	p := jpartial.New()
//	for chunk := range chunks {
//	   res := p.Resume(chunk)
//	   if res.Err != nil {
//	      log.Fatalf("Parse failed: %v", res.Err)
//	   }
//	   log.Printf("At %v: %v", res.PendingPath, res.Value)
//	}
//
// While the document is incomplete, Result.Partial is true and Result.Value
// holds the best-effort value reconstructed from the tokens that are already
// complete. Objects and arrays appear in the value as soon as they are
// opened; strings, numbers and literals appear only once they are complete,
// so a value reported in one result is never retracted by a later one.
// Result.PendingPath locates the innermost open position.
//
// A number at the end of the input is not complete until a delimiter follows
// it, since more digits could arrive. Call End to report the end of the input.
//
// The Parse function is a one-shot convenience:
//
//	res := jpartial.Parse(`{"name": "test"}`)
//	// res.Partial == false, res.Value == map[string]any{"name": "test"}
//
// # Errors
//
// A syntax error is fatal for the current document. The error has concrete
// type *SyntaxError, reports the 1-based line and column where it was
// detected, and has an ErrorKind that callers may check with errors.Is:
//
//	if errors.Is(res.Err, jpartial.DepthExceeded) { ... }
//
// Incomplete input is not an error. Call Reset (or Parse) to begin an
// unrelated document.
//
// # Values
//
// Values use the types produced by encoding/json when decoding into an empty
// interface: map[string]any, []any, float64, string, bool, and nil. With the
// UseNumber option, numbers are reported as json.Number. Once a document is
// complete, its value is identical to the result of encoding/json.Unmarshal.
package jpartial
