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

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lunafmt/lunafmt/internal/trivia"
)

func TestIsNil(t *testing.T) {
	assert.True(t, Nil.IsNil())
	assert.True(t, Token{}.IsNil())
	assert.False(t, Token{Kind: Symbol, Text: "+"}.IsNil())
}

func TestIs(t *testing.T) {
	kw := Token{Kind: Keyword, Text: "local"}
	sym := Token{Kind: Symbol, Text: "+"}
	ident := Token{Kind: Ident, Text: "local"}

	assert.True(t, kw.Is("local"))
	assert.True(t, sym.Is("+"))
	assert.False(t, ident.Is("local"), "an identifier spelled like a keyword is not the keyword")
	assert.False(t, kw.Is("while"))
}

func TestRewrite(t *testing.T) {
	orig := Token{
		Kind:     Symbol,
		Text:     "'",
		Leading:  []trivia.Trivia{trivia.Space()},
		Trailing: []trivia.Trivia{trivia.NL("\n")},
	}
	got := Rewrite(orig, `"hello"`, ShortString)

	assert.Equal(t, `"hello"`, got.Text)
	assert.Equal(t, ShortString, got.Kind)
	assert.Equal(t, orig.Span, got.Span)
	assert.Equal(t, orig.Leading, got.Leading)
	assert.Equal(t, orig.Trailing, got.Trailing)
}

func TestWithLeadingAndTrailing(t *testing.T) {
	tok := Token{Kind: Ident, Text: "x"}

	withLeading := tok.WithLeading(trivia.Append(trivia.Space()))
	assert.Equal(t, []trivia.Trivia{trivia.Space()}, withLeading.Leading)
	assert.Nil(t, tok.Leading, "WithLeading must not mutate the receiver")

	withTrailing := tok.WithTrailing(trivia.Append(trivia.NL("\n")))
	assert.Equal(t, []trivia.Trivia{trivia.NL("\n")}, withTrailing.Trailing)
	assert.Nil(t, tok.Trailing, "WithTrailing must not mutate the receiver")
}

func TestUpdateTrivia(t *testing.T) {
	tok := Token{Kind: Ident, Text: "x"}
	got := tok.UpdateTrivia(trivia.Append(trivia.Space()), trivia.Append(trivia.NL("\n")))

	assert.Equal(t, []trivia.Trivia{trivia.Space()}, got.Leading)
	assert.Equal(t, []trivia.Trivia{trivia.NL("\n")}, got.Trailing)
}

func TestString(t *testing.T) {
	assert.Equal(t, "", Nil.String())

	tok := Token{
		Kind:     Ident,
		Text:     "x",
		Leading:  []trivia.Trivia{trivia.Space()},
		Trailing: []trivia.Trivia{trivia.Space()},
	}
	assert.Equal(t, " x ", tok.String())
}
