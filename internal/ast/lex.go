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

package ast

import (
	"github.com/lunafmt/lunafmt/internal/lexer"
	"github.com/lunafmt/lunafmt/internal/source"
	"github.com/lunafmt/lunafmt/internal/token"
	"github.com/lunafmt/lunafmt/internal/trivia"
)

var keywords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "if": true,
	"in": true, "local": true, "nil": true, "not": true, "or": true,
	"repeat": true, "return": true, "then": true, "true": true,
	"until": true, "while": true,
}

// tokenize converts raw lexer tokens into the significant-token stream
// the parser consumes, attaching leading and trailing trivia per token.
//
// Rule: a same-line comment (optionally preceded by whitespace)
// immediately following a significant token becomes that token's
// trailing trivia. Everything else — plain inter-token whitespace,
// newlines, and comments that start their own line — becomes the
// following token's leading trivia. A comment can only ever immediately
// follow the single token that ends its source line, since a comment
// consumes the rest of the line it starts on.
func tokenize(src, file string) ([]token.Token, error) {
	lx := lexer.New(src)
	var out []token.Token
	var pending []trivia.Trivia
	sawNewlineSincePending := false

	pos := func(raw lexer.Token) source.Pos {
		return source.Pos{Offset: raw.Offset, Line: raw.Line, Col: raw.Col}
	}
	endPos := func(raw lexer.Token) source.Pos {
		return source.Pos{Offset: raw.Offset + len(raw.Text), Line: raw.Line, Col: raw.Col + len(raw.Text)}
	}

	for {
		raw := lx.Next()
		switch raw.Kind {
		case lexer.EOF:
			tok := token.Token{
				Kind:    token.EOF,
				Span:    source.Span{File: file, Start: pos(raw), End: pos(raw)},
				Leading: pending,
			}
			out = append(out, tok)
			return out, nil

		case lexer.Whitespace:
			pending = append(pending, trivia.Trivia{Kind: trivia.Whitespace, Text: raw.Text})

		case lexer.Newline:
			pending = append(pending, trivia.Trivia{Kind: trivia.Newline, Text: raw.Text})
			sawNewlineSincePending = true

		case lexer.LineComment, lexer.BlockComment:
			kind := trivia.LineComment
			if raw.Kind == lexer.BlockComment {
				kind = trivia.BlockComment
			}
			if len(out) > 0 && !sawNewlineSincePending {
				last := &out[len(out)-1]
				last.Trailing = append(last.Trailing, pending...)
				last.Trailing = append(last.Trailing, trivia.Trivia{Kind: kind, Text: raw.Text})
				pending = nil
			} else {
				pending = append(pending, trivia.Trivia{Kind: kind, Text: raw.Text})
			}

		default:
			kind := classify(raw)
			tok := token.Token{
				Kind:    kind,
				Text:    raw.Text,
				Span:    source.Span{File: file, Start: pos(raw), End: endPos(raw)},
				Leading: pending,
			}
			out = append(out, tok)
			pending = nil
			sawNewlineSincePending = false
		}
	}
}

func classify(raw lexer.Token) token.Kind {
	switch raw.Kind {
	case lexer.Ident:
		if keywords[raw.Text] {
			return token.Keyword
		}
		return token.Ident
	case lexer.Number:
		return token.Number
	case lexer.ShortString:
		return token.ShortString
	case lexer.LongString:
		return token.LongString
	case lexer.Symbol:
		return token.Symbol
	default:
		return token.Unknown
	}
}
