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

// Package format implements the statement, expression, and block
// formatters (spec.md §4.3-§4.7, §4.9) on top of the CST in package ast.
//
// The printer walks the original CST read-only and writes canonical text
// directly to a builder, rather than constructing a second rewritten
// token tree before serializing it. Comment preservation and width
// measurement still go through package trivia/token/dom exactly as
// spec.md's component boundaries describe; only the final assembly step
// is a direct print rather than a second tree pass.
package format

import (
	"strings"

	"github.com/lunafmt/lunafmt/internal/ast"
	"github.com/lunafmt/lunafmt/internal/dom"
	"github.com/lunafmt/lunafmt/internal/luaconfig"
	"github.com/lunafmt/lunafmt/internal/source"
	"github.com/lunafmt/lunafmt/internal/token"
	"github.com/lunafmt/lunafmt/internal/trivia"
)

// ByteRange optionally restricts formatting to a half-open byte range
// (spec.md §6, §4.9). Statements wholly outside it are emitted verbatim.
type ByteRange struct {
	Start, End int
}

func (r *ByteRange) overlaps(span source.Span) bool {
	if r == nil {
		return true
	}
	return span.Start.Offset < r.End && r.Start < span.End.Offset
}

// printer is the stack-local state for a single format pass (spec.md
// §5: "formatter state is created per pass and discarded afterward").
type printer struct {
	cfg luaconfig.Config
	src string
	rng *ByteRange

	buf    strings.Builder
	ranges indentRanges
	col    int // current output column, 0-indexed, reset at each newline

	// ignoreActive is true while between a "stylua: ignore start" and its
	// matching "stylua: ignore end" (spec.md §4.9). Plain sequential
	// state, not a stack: nested ignore regions are not a construct the
	// directive defines.
	ignoreActive bool
}

func newPrinter(cfg luaconfig.Config, src string, rng *ByteRange) *printer {
	return &printer{cfg: cfg, src: src, rng: rng}
}

func (p *printer) write(s string) {
	p.buf.WriteString(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		p.col = dom.StringWidth(s[i+1:], 0, p.cfg.IndentWidth)
	} else {
		p.col = dom.StringWidth(s, p.col, p.cfg.IndentWidth)
	}
}

func (p *printer) newline() {
	p.buf.WriteString(p.cfg.LineEndings.Sequence())
	p.col = 0
}

// writeIndent writes the canonical leading indent for a token that
// starts at depth plus any extra indent registered for its original
// source position (spec.md C7).
func (p *printer) writeIndent(tok token.Token, depth int) {
	extra := p.ranges.extraAt(tok.Span.Start.Offset)
	ind := trivia.Indent(depth+extra, p.cfg.IndentType == luaconfig.Tabs, p.cfg.IndentWidth)
	p.write(ind.Text)
}

func (p *printer) indentText(depth, extra int) string {
	return trivia.Indent(depth+extra, p.cfg.IndentType == luaconfig.Tabs, p.cfg.IndentWidth).Text
}

// writeLeadingComments emits every comment found in a token's original
// leading trivia on its own line at depth, immediately before the token
// itself is written (spec.md invariant 1: no comment is dropped).
func (p *printer) writeLeadingComments(tok token.Token, depth int) {
	for _, t := range tok.Leading {
		if t.IsComment() {
			p.writeIndent(tok, depth)
			p.write(t.Text)
			p.newline()
		}
	}
}

// writeTrailingComment emits a token's same-line trailing comment, if
// any, with one space before it.
func (p *printer) writeTrailingComment(tok token.Token) {
	for _, t := range tok.Trailing {
		if t.IsComment() {
			p.write(" ")
			p.write(t.Text)
			return
		}
	}
}

// lastToken returns the last token visited by n.Walk, which carries
// whatever trailing comment appeared at the end of n's source text.
func lastToken(n ast.Node) token.Token {
	var last token.Token
	n.Walk(func(t token.Token) { last = t })
	return last
}

// writeStmtTrailingComment emits the same-line comment following s's
// final token, if any (spec.md invariant 1: no comment is dropped).
func (p *printer) writeStmtTrailingComment(s ast.Stmt) {
	p.writeTrailingComment(lastToken(s))
}

// writeInlineComments appends every already-collected comment after the
// text just written, space-separated, for hung elements (table fields,
// call arguments, binary-chain operands) whose inline comment is what
// forced the hang in the first place and must not then vanish.
func (p *printer) writeInlineComments(comments []string) {
	for _, c := range comments {
		p.write(" ")
		p.write(c)
	}
}

// hasInlineComment reports whether any token within n carries a same-line
// comment, per spec.md §4.6's tie-break rule ("an inline comment always
// forces multi-line").
func hasInlineComment(n ast.Node) bool {
	return ast.ContainsInlineComments(n)
}

// fits reports whether text, placed starting at the current column,
// stays within column_width (spec.md C6 measurement step).
func (p *printer) fits(text string) bool {
	return dom.StringWidth(text, p.col, p.cfg.IndentWidth) <= p.cfg.ColumnWidth
}
