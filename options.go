// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpartial

import "github.com/tliron/commonlog"

// An Option configures a Parser. Options are applied by New and persist
// across calls to Reset.
type Option interface {
	apply(*options)
}

type options struct {
	useNumber      bool
	partialStrings bool
	log            commonlog.Logger
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) { f(o) }

// UseNumber configures the parser to report numbers as json.Number values
// (true) or as float64 values (false). The default is false, matching the
// behavior of encoding/json when decoding into an empty interface.
func UseNumber(ok bool) Option {
	return optionFunc(func(o *options) { o.useNumber = ok })
}

// PartialStrings configures the parser to include the decoded prefix of an
// incomplete string value in the partial result (true), or to omit a string
// value until its closing quotation mark arrives (false). The default is false.
//
// Object keys are never reported before they are complete.
func PartialStrings(ok bool) Option {
	return optionFunc(func(o *options) { o.partialStrings = ok })
}

// WithLogger configures the parser to write debug logs to log. By default
// the parser does not log.
func WithLogger(log commonlog.Logger) Option {
	return optionFunc(func(o *options) { o.log = log })
}

func (o *options) debugf(msg string, args ...any) {
	if o.log != nil {
		o.log.Debugf(msg, args...)
	}
}
