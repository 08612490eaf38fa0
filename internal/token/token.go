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

// Package token implements the lexical atom of the Lua CST (spec.md §3)
// and C2, the token rewriter.
package token

import (
	"strings"

	"github.com/lunafmt/lunafmt/internal/source"
	"github.com/lunafmt/lunafmt/internal/trivia"
)

// Kind is a lexical token kind.
type Kind int

const (
	Unknown Kind = iota
	Ident
	Keyword
	Symbol
	Number
	ShortString
	LongString
	EOF
)

// Token is a lexical atom: a kind, a textual payload, a source span, and
// two ordered trivia sequences (leading and trailing), per spec.md §3.
type Token struct {
	Kind     Kind
	Text     string
	Span     source.Span
	Leading  []trivia.Trivia
	Trailing []trivia.Trivia
}

// Nil is the zero Token, denoting "no token here".
var Nil Token

// IsNil reports whether this is the zero Token.
func (t Token) IsNil() bool { return t.Kind == Unknown && t.Text == "" }

// Is reports whether this is a Symbol or Keyword token with the given text.
func (t Token) Is(text string) bool {
	return (t.Kind == Symbol || t.Kind == Keyword) && t.Text == text
}

// Rewrite implements C2: it returns a new token with the given textual
// payload and the given kind, while preserving the original token's span
// and leading/trailing trivia untouched. The kind is not inferred from
// the new text.
//
// kind is supplied explicitly rather than re-lexed, since callers always
// know statically what kind of token they are producing (a keyword stays
// a keyword, a symbol stays a symbol); re-lexing would be needless work
// and could misclassify ambiguous punctuation.
func Rewrite(t Token, text string, kind Kind) Token {
	t.Text = text
	t.Kind = kind
	return t
}

// WithLeading returns a copy of t with its leading trivia rewritten per edit.
func (t Token) WithLeading(edit trivia.Edit) Token {
	t.Leading = edit.Apply(t.Leading)
	return t
}

// WithTrailing returns a copy of t with its trailing trivia rewritten per edit.
func (t Token) WithTrailing(edit trivia.Edit) Token {
	t.Trailing = edit.Apply(t.Trailing)
	return t
}

// UpdateTrivia implements the remaining half of C1's update_trivia
// operation: applying independent edits to both sides of a token at once.
func (t Token) UpdateTrivia(leading, trailing trivia.Edit) Token {
	return t.WithLeading(leading).WithTrailing(trailing)
}

// StrippedText returns the token's bare text with no leading or trailing
// trivia, used by C1's strip_trivia to measure pure construct width.
func (t Token) StrippedText() string { return t.Text }

// String serializes the token including its trivia, in source order:
// leading trivia, text, trailing trivia.
func (t Token) String() string {
	if t.IsNil() {
		return ""
	}
	var b strings.Builder
	b.WriteString(trivia.Text(t.Leading))
	b.WriteString(t.Text)
	b.WriteString(trivia.Text(t.Trailing))
	return b.String()
}
