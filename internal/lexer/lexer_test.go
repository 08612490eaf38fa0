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

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTokens(src string) []Token {
	l := New(src)
	var out []Token
	for {
		tok := l.Next()
		out = append(out, tok)
		if tok.Kind == EOF {
			return out
		}
	}
}

func TestLexEmptySourceIsJustEOF(t *testing.T) {
	toks := allTokens("")
	require.Len(t, toks, 1)
	assert.Equal(t, EOF, toks[0].Kind)
}

func TestLexWhitespaceAndNewlinesAreSeparateTokens(t *testing.T) {
	toks := allTokens("  \n\t")
	require.Len(t, toks, 4)
	assert.Equal(t, Whitespace, toks[0].Kind)
	assert.Equal(t, "  ", toks[0].Text)
	assert.Equal(t, Newline, toks[1].Kind)
	assert.Equal(t, "\n", toks[1].Text)
	assert.Equal(t, Whitespace, toks[2].Kind)
	assert.Equal(t, "\t", toks[2].Text)
}

func TestLexCRLFIsOneNewlineToken(t *testing.T) {
	toks := allTokens("\r\n")
	require.Len(t, toks, 2)
	assert.Equal(t, Newline, toks[0].Kind)
	assert.Equal(t, "\r\n", toks[0].Text)
}

func TestLexLineCommentStopsBeforeNewline(t *testing.T) {
	toks := allTokens("-- hi\nlocal")
	require.Len(t, toks, 4)
	assert.Equal(t, LineComment, toks[0].Kind)
	assert.Equal(t, "-- hi", toks[0].Text)
	assert.Equal(t, Newline, toks[1].Kind)
	assert.Equal(t, Ident, toks[2].Kind)
	assert.Equal(t, "local", toks[2].Text)
}

func TestLexLongBracketCommentSpansNewlines(t *testing.T) {
	toks := allTokens("--[[ one\ntwo ]]x")
	require.Len(t, toks, 3)
	assert.Equal(t, BlockComment, toks[0].Kind)
	assert.Equal(t, "--[[ one\ntwo ]]", toks[0].Text)
	assert.Equal(t, Ident, toks[1].Kind)
	assert.Equal(t, "x", toks[1].Text)
}

func TestLexLongBracketCommentRespectsEqualsLevel(t *testing.T) {
	toks := allTokens("--[==[ a ]] still inside ]==]rest")
	require.Len(t, toks, 3)
	assert.Equal(t, BlockComment, toks[0].Kind)
	assert.Equal(t, "--[==[ a ]] still inside ]==]", toks[0].Text)
	assert.Equal(t, "rest", toks[1].Text)
}

func TestLexLongStringLiteral(t *testing.T) {
	toks := allTokens(`[[hello world]]`)
	require.Len(t, toks, 2)
	assert.Equal(t, LongString, toks[0].Kind)
	assert.Equal(t, "[[hello world]]", toks[0].Text)
}

func TestLexUnopenedBracketIsASymbol(t *testing.T) {
	toks := allTokens("[1]")
	require.Len(t, toks, 4)
	assert.Equal(t, Symbol, toks[0].Kind)
	assert.Equal(t, "[", toks[0].Text)
}

func TestLexShortStringHandlesEscapes(t *testing.T) {
	toks := allTokens(`"a\"b"`)
	require.Len(t, toks, 2)
	assert.Equal(t, ShortString, toks[0].Kind)
	assert.Equal(t, `"a\"b"`, toks[0].Text)
}

func TestLexShortStringUnterminatedAtNewlineStillReturnsAToken(t *testing.T) {
	toks := allTokens("\"oops\nrest")
	assert.Equal(t, ShortString, toks[0].Kind)
	assert.Equal(t, `"oops`, toks[0].Text)
}

func TestLexNumbers(t *testing.T) {
	tests := []struct{ src, want string }{
		{"123", "123"},
		{"0x1F", "0x1F"},
		{"3.14", "3.14"},
		{".5", ".5"},
		{"1e10", "1e10"},
		{"1e-10", "1e-10"},
		{"0x1p4", "0x1p4"},
		{"100ULL", "100ULL"},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			toks := allTokens(tc.src)
			require.Equal(t, Number, toks[0].Kind)
			assert.Equal(t, tc.want, toks[0].Text)
		})
	}
}

func TestLexIdentifiers(t *testing.T) {
	toks := allTokens("_foo2 local")
	require.Len(t, toks, 4)
	assert.Equal(t, Ident, toks[0].Kind)
	assert.Equal(t, "_foo2", toks[0].Text)
	assert.Equal(t, Ident, toks[2].Kind)
	assert.Equal(t, "local", toks[2].Text, "the raw lexer does not classify keywords; that is package ast's job")
}

func TestLexMultiCharSymbolsPreferLongestMatch(t *testing.T) {
	tests := []struct{ src, want string }{
		{"...", "..."},
		{"..", ".."},
		{"::", "::"},
		{"<=", "<="},
		{">=", ">="},
		{"==", "=="},
		{"~=", "~="},
		{"//", "//"},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			toks := allTokens(tc.src)
			require.Equal(t, Symbol, toks[0].Kind)
			assert.Equal(t, tc.want, toks[0].Text)
		})
	}
}

func TestLexSingleDotIsNotConfusedWithConcat(t *testing.T) {
	toks := allTokens(". ..")
	assert.Equal(t, ".", toks[0].Text)
	assert.Equal(t, "..", toks[2].Text)
}

func TestLexLineAndColumnTracking(t *testing.T) {
	toks := allTokens("ab\ncd")
	require.Len(t, toks, 4)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 1, toks[0].Col)
	third := toks[2]
	assert.Equal(t, 2, third.Line)
	assert.Equal(t, 1, third.Col)
}
