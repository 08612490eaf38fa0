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

// Package ast is the Lua concrete syntax tree (spec.md §3): nodes are a
// product of child tokens and child nodes in a fixed order, and every
// node's source range is the union of its children's ranges.
//
// The dialect extensions (Luau type annotations, Lua 5.2 goto/label) are
// modeled as ordinary node variants gated by [Dialect]; when a dialect
// feature is disabled the parser rejects the construct with a ParseError,
// never the formatter (spec.md §9).
package ast

import (
	"github.com/lunafmt/lunafmt/internal/source"
	"github.com/lunafmt/lunafmt/internal/token"
	"github.com/lunafmt/lunafmt/internal/trivia"
)

// Node is any element of the CST: a statement, an expression, a block, or
// a structural wrapper around one of those.
//
// Node deliberately exposes only read access (Span, Walk); rewriting a
// tree is done by constructing a new node value, per spec.md §9's
// "immutable reconstruction" design note, not by mutating in place.
type Node interface {
	// Span returns the union of the spans of this node's children.
	Span() source.Span
	// Walk calls visit for every token directly or transitively owned by
	// this node, in source order. This is the substrate C1's
	// strip_trivia and contains_inline_comments are built on.
	Walk(visit func(token.Token))
}

// Dialect selects which optional grammar extensions the parser accepts.
type Dialect struct {
	LuauTypes  bool // Roblox-style Luau type annotations.
	GotoLabels bool // Lua 5.2 goto/label statements.
}

// File is a parsed chunk: a single top-level [Block].
type File struct {
	Body *Block
	EOF  token.Token
}

func (f *File) Span() source.Span {
	return spanOf(f.Body, f.EOF.Span)
}

func (f *File) Walk(visit func(token.Token)) {
	f.Body.Walk(visit)
	visit(f.EOF)
}

// StripTrivia returns a synthetic copy of every token's text concatenated
// with no trivia, per C1's strip_trivia: it measures the pure width of a
// construct, independent of how it happens to be currently laid out.
func StripTrivia(n Node) string {
	var b []byte
	n.Walk(func(t token.Token) {
		b = append(b, t.Text...)
	})
	return string(b)
}

// ContainsInlineComments implements C1's contains_inline_comments: true
// iff any token within n carries comment trivia. Comments that the
// formatter would retain on their own line (i.e. comments preceded by a
// newline in the same trivia run) are excluded, since those do not force
// a one-line construct to break — only a comment sharing the construct's
// own line does.
func ContainsInlineComments(n Node) bool {
	found := false
	n.Walk(func(t token.Token) {
		if found {
			return
		}
		if hasInlineComment(t.Leading) || hasInlineComment(t.Trailing) {
			found = true
		}
	})
	return found
}

// hasInlineComment reports whether ts contains a comment that is not
// preceded by a newline trivia within the same run, i.e. a comment
// sharing its token's own source line.
func hasInlineComment(ts []trivia.Trivia) bool {
	sawNewline := false
	for _, t := range ts {
		if t.IsComment() && !sawNewline {
			return true
		}
		if t.Kind == trivia.Newline {
			sawNewline = true
		}
	}
	return false
}

// spanOf joins a node's span with a trailing span (usually a single
// token's span) whose union forms a larger span.
func spanOf(n Node, end source.Span) source.Span {
	start := n.Span()
	if start.File == "" {
		start.File = end.File
	}
	return source.Span{File: start.File, Start: start.Start, End: end.End}
}
