// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package source models positions and spans in a single piece of Lua
// source text, and the error-reporting plumbing built on top of them.
package source

import "fmt"

// Pos is a resolved position in a source file.
type Pos struct {
	Offset int // Byte offset, zero-indexed.
	Line   int // Line number, one-indexed.
	Col    int // Column number, one-indexed, in bytes.
}

// Span is a half-open byte range [Start, End) in a named source file.
type Span struct {
	File  string
	Start Pos
	End   Pos
}

// Contains reports whether offset is inclusively contained within this span,
// per the containment rule in spec.md C7 ("inclusive on both ends").
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset <= s.End.Offset
}

// Overlaps reports whether s and other share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Start.Offset < other.End.Offset && other.Start.Offset < s.End.Offset
}

// ErrorWithPos is an error that knows where in the source it occurred.
type ErrorWithPos interface {
	error
	Position() Span
}

// ParseError reports that the input was not valid Lua. The core performs
// no recovery; this is returned to the caller, never swallowed.
type ParseError struct {
	Span Span
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Span.File, e.Span.Start.Line, e.Span.Start.Col, e.Msg)
}

// Position implements [ErrorWithPos].
func (e *ParseError) Position() Span { return e.Span }

// InternalInvariant reports that a node handler's expected child was
// absent, or that a byte range had no corresponding token. This always
// indicates a parser contract violation, never malformed user input; it
// is fatal and aborts the format pass (spec.md §7).
type InternalInvariant struct {
	Span Span
	Msg  string
}

func (e *InternalInvariant) Error() string {
	return fmt.Sprintf("internal invariant violated at %s:%d:%d: %s",
		e.Span.File, e.Span.Start.Line, e.Span.Start.Col, e.Msg)
}

// Position implements [ErrorWithPos].
func (e *InternalInvariant) Position() Span { return e.Span }

// Fatalf panics with an *InternalInvariant. format.Format recovers this
// panic at its single public entry point and returns it as a plain error:
// panics are reserved for "the caller broke a documented contract"
// conditions, recovered at the API boundary.
func Fatalf(span Span, format string, args ...any) {
	panic(&InternalInvariant{Span: span, Msg: fmt.Sprintf(format, args...)})
}

// ErrorReporter receives fatal errors found while processing source.
type ErrorReporter func(ErrorWithPos) error

// WarningReporter receives non-fatal diagnostics.
type WarningReporter func(ErrorWithPos)

// Reporter is a pluggable sink for errors and warnings, decoupling
// callers (the CLI driver, tests) from how diagnostics are surfaced.
type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// NewReporter builds a Reporter from a pair of callbacks. Either may be nil.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

// Handler accumulates the first fatal error seen and every warning.
type Handler struct {
	rep      Reporter
	firstErr error
}

// NewHandler wraps a Reporter in a Handler.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{rep: rep}
}

// HandleErrorf reports a formatted fatal error at the given span.
func (h *Handler) HandleErrorf(span Span, format string, args ...any) error {
	return h.HandleError(&ParseError{Span: span, Msg: fmt.Sprintf(format, args...)})
}

// HandleError reports a fatal error, recording the first one seen.
func (h *Handler) HandleError(err error) error {
	ewp, ok := err.(ErrorWithPos)
	if !ok {
		ewp = &ParseError{Msg: err.Error()}
	}
	reported := h.rep.Error(ewp)
	if h.firstErr == nil {
		if reported != nil {
			h.firstErr = reported
		} else {
			h.firstErr = ewp
		}
	}
	return reported
}

// HandleWarningf reports a formatted non-fatal diagnostic.
func (h *Handler) HandleWarningf(span Span, format string, args ...any) {
	h.rep.Warning(&ParseError{Span: span, Msg: fmt.Sprintf(format, args...)})
}

// Error returns the first fatal error reported, if any.
func (h *Handler) Error() error { return h.firstErr }
