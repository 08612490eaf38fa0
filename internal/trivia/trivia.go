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

// Package trivia implements C1: the model for whitespace and comments
// attached to tokens, and the algebra for rewriting them.
package trivia

// Kind identifies what a piece of trivia is. Whitespace, single-line
// comments, and multi-line (long-bracket) comments are the only kinds
// spec.md §3 names.
type Kind int

const (
	Whitespace Kind = iota
	Newline
	LineComment
	BlockComment
)

// Trivia is a single leading or trailing trivia token: whitespace or a
// comment, attached to a real token but not itself significant to the
// grammar.
type Trivia struct {
	Kind Kind
	Text string
}

// IsComment reports whether this trivia is a line or block comment.
func (t Trivia) IsComment() bool {
	return t.Kind == LineComment || t.Kind == BlockComment
}

// Space is a single space-character whitespace trivia, the most common
// trivia this package constructs.
func Space() Trivia { return Trivia{Kind: Whitespace, Text: " "} }

// NL is a single newline trivia using the given line-ending text ("\n" or
// "\r\n").
func NL(ending string) Trivia { return Trivia{Kind: Newline, Text: ending} }

// Indent builds whitespace trivia of the given depth under the given
// indent policy, used by the formatter's create_indent_trivia helper
// (spec.md C7).
func Indent(depth int, useTabs bool, width int) Trivia {
	if depth <= 0 {
		return Trivia{Kind: Whitespace, Text: ""}
	}
	if useTabs {
		return Trivia{Kind: Whitespace, Text: repeat("\t", depth)}
	}
	return Trivia{Kind: Whitespace, Text: repeat(" ", depth*width)}
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for range n {
		out = append(out, s...)
	}
	return string(out)
}

// Op is one of the three trivia-edit operations spec.md C1 names:
// NoChange, Append, or Replace. This three-valued algebra is what lets
// higher-level formatters compose edits to a token's trivia without ever
// needing to special-case "there was nothing here before".
type Op int

const (
	NoChange Op = iota
	AppendOp
	ReplaceOp
)

// Edit describes a rewrite to be applied to one side (leading or
// trailing) of a token's trivia.
type Edit struct {
	Op   Op
	List []Trivia
}

// Keep is the NoChange edit: leave the existing trivia untouched.
func Keep() Edit { return Edit{Op: NoChange} }

// Append returns an edit that appends list after any existing trivia.
func Append(list ...Trivia) Edit { return Edit{Op: AppendOp, List: list} }

// Replace returns an edit that discards existing trivia and installs list.
func Replace(list ...Trivia) Edit { return Edit{Op: ReplaceOp, List: list} }

// Apply runs this edit against an existing trivia slice, returning the
// new slice. existing is never mutated.
func (e Edit) Apply(existing []Trivia) []Trivia {
	switch e.Op {
	case NoChange:
		return existing
	case AppendOp:
		out := make([]Trivia, 0, len(existing)+len(e.List))
		out = append(out, existing...)
		out = append(out, e.List...)
		return out
	case ReplaceOp:
		out := make([]Trivia, len(e.List))
		copy(out, e.List)
		return out
	default:
		return existing
	}
}

// ContainsComment reports whether any trivia in the slice is a comment.
func ContainsComment(ts []Trivia) bool {
	for _, t := range ts {
		if t.IsComment() {
			return true
		}
	}
	return false
}

// Text concatenates the raw text of a trivia slice, for serialization.
func Text(ts []Trivia) string {
	var n int
	for _, t := range ts {
		n += len(t.Text)
	}
	buf := make([]byte, 0, n)
	for _, t := range ts {
		buf = append(buf, t.Text...)
	}
	return string(buf)
}
