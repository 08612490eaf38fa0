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

package format

import (
	"strings"

	"github.com/lunafmt/lunafmt/internal/ast"
	"github.com/lunafmt/lunafmt/internal/source"
	"github.com/lunafmt/lunafmt/internal/token"
	"github.com/lunafmt/lunafmt/internal/trivia"
)

// writeStmt formats one statement at the given indent depth (spec.md C4).
// It first consults the format-range controller (C9): a statement with a
// matching ignore directive, or wholly outside an active byte range, is
// reproduced from the original source instead (see writeVerbatim).
func (p *printer) writeStmt(s ast.Stmt, depth int) {
	tok := firstToken(s)
	leading := tok.Leading
	switch directiveIn(leading) {
	case ignoreStart:
		p.ignoreActive = true
	case ignoreEnd:
		p.ignoreActive = false
	}
	if p.ignoreActive || directiveIn(leading) == ignoreOne || !p.rng.overlaps(s.Span()) {
		p.writeVerbatim(s, depth)
		return
	}
	p.writeLeadingComments(tok, depth)
	p.writeStmtFormatted(s, depth)
}

// writeVerbatim reproduces a statement exactly as it appeared in the
// source, preserving its original trivia untouched, but still placing it
// at the correct indent column so it composes with formatted neighbors
// (spec.md §4.9: "emitted verbatim"). Its first token's leading comments
// — including the ignore directive that routed it here — are reproduced
// first, since rawText itself drops that token's leading trivia in favor
// of the caller's own indent.
func (p *printer) writeVerbatim(s ast.Stmt, depth int) {
	p.writeLeadingComments(firstToken(s), depth)
	p.write(p.indentText(depth, 0))
	p.write(rawText(s))
	p.newline()
}

// rawText serializes n exactly as it appeared in the source: every
// token's own leading and trailing trivia, concatenated in order. The
// first token's leading trivia is dropped since the caller supplies its
// own canonical indent instead.
func rawText(n ast.Node) string {
	var b strings.Builder
	first := true
	n.Walk(func(t token.Token) {
		if first {
			b.WriteString(t.Text)
			b.WriteString(trivia.Text(t.Trailing))
			first = false
			return
		}
		b.WriteString(trivia.Text(t.Leading))
		b.WriteString(t.Text)
		b.WriteString(trivia.Text(t.Trailing))
	})
	return b.String()
}

func (p *printer) writeStmtFormatted(s ast.Stmt, depth int) {
	switch n := s.(type) {
	case *ast.Do:
		p.writeDo(n, depth)
	case *ast.While:
		p.writeWhile(n, depth)
	case *ast.Repeat:
		p.writeRepeat(n, depth)
	case *ast.If:
		p.writeIf(n, depth)
	case *ast.NumericFor:
		p.writeNumericFor(n, depth)
	case *ast.GenericFor:
		p.writeGenericFor(n, depth)
	case *ast.LocalAssign:
		p.writeLocalAssign(n, depth)
	case *ast.Assignment:
		p.writeAssignment(n, depth)
	case *ast.CallStmt:
		p.writeIndentLineWithComment(depth, n, func() { p.writeExpr(n.Call, depth) })
	case *ast.FunctionDecl:
		p.writeFunctionDecl(n, depth)
	case *ast.LocalFunction:
		p.writeLocalFunction(n, depth)
	case *ast.Return:
		p.writeReturn(n, depth)
	case *ast.Break:
		p.writeIndentLineWithComment(depth, n, func() { p.write("break") })
	case *ast.Goto:
		p.writeIndentLineWithComment(depth, n, func() { p.write("goto "); p.write(n.Label.Text) })
	case *ast.Label:
		p.writeIndentLineWithComment(depth, n, func() { p.write("::"); p.write(n.Name.Text); p.write("::") })
	default:
		source.Fatalf(s.Span(), "unhandled statement kind %T", s)
	}
}

// writeIndentLine writes the statement's leading indent, invokes body to
// emit the statement's own text, then terminates the line with a newline
// (spec.md C4 step 5: "a single indent-trivia ... trailing trivia ends
// with a newline").
func (p *printer) writeIndentLine(depth int, body func()) {
	p.write(p.indentText(depth, 0))
	body()
	p.newline()
}

// writeIndentLineWithComment is writeIndentLine for a statement's final
// line: it additionally reproduces s's own trailing comment, if any,
// before the newline (spec.md invariant 1).
func (p *printer) writeIndentLineWithComment(depth int, s ast.Stmt, body func()) {
	p.write(p.indentText(depth, 0))
	body()
	p.writeStmtTrailingComment(s)
	p.newline()
}

// writeEndLine writes the "end" line that closes do/while/if/for/
// function bodies, preserving s's trailing comment.
func (p *printer) writeEndLine(depth int, s ast.Stmt) {
	p.writeIndentLineWithComment(depth, s, func() { p.write("end") })
}

func (p *printer) writeDo(n *ast.Do, depth int) {
	p.writeIndentLine(depth, func() { p.write("do") })
	p.writeBlock(n.Body, depth+1)
	p.writeEndLine(depth, n)
}

// conditionFits implements the trial single-line width computation
// shared by while/if/repeat-until (spec.md C4 step 4).
func (p *printer) conditionFits(header string, cond ast.Expr, trailer string, depth int) bool {
	if hasInlineComment(cond) {
		return false
	}
	trial := header + ast.StripTrivia(cond) + trailer
	width := len(trial) + depth*p.cfg.IndentWidth
	return width <= p.cfg.ColumnWidth
}

func (p *printer) writeWhile(n *ast.While, depth int) {
	if p.conditionFits("while ", n.Cond, " do", depth) {
		p.writeIndentLine(depth, func() {
			p.write("while ")
			p.writeExpr(n.Cond, depth)
			p.write(" do")
		})
	} else {
		p.writeIndentLine(depth, func() { p.write("while") })
		p.writeIndentLine(depth+1, func() { p.writeHungCondition(n.Cond, depth+1) })
		p.writeIndentLine(depth, func() { p.write("do") })
	}
	p.writeBlock(n.Body, depth+1)
	p.writeEndLine(depth, n)
}

func (p *printer) writeRepeat(n *ast.Repeat, depth int) {
	p.writeIndentLine(depth, func() { p.write("repeat") })
	p.writeBlock(n.Body, depth+1)
	if p.conditionFits("until ", n.Cond, "", depth) {
		p.writeIndentLineWithComment(depth, n, func() {
			p.write("until ")
			p.writeExpr(n.Cond, depth)
		})
	} else {
		p.writeIndentLine(depth, func() { p.write("until") })
		p.writeIndentLineWithComment(depth+1, n, func() { p.writeHungCondition(n.Cond, depth+1) })
	}
}

func (p *printer) writeIf(n *ast.If, depth int) {
	p.writeCondHeader("if ", n.Cond, " then", depth)
	p.writeBlock(n.Body, depth+1)
	for _, e := range n.ElseIfs {
		p.writeCondHeader("elseif ", e.Cond, " then", depth)
		p.writeBlock(e.Body, depth+1)
	}
	if n.Else != nil {
		p.writeIndentLine(depth, func() { p.write("else") })
		p.writeBlock(n.Else.Body, depth+1)
	}
	p.writeEndLine(depth, n)
}

// writeCondHeader writes "<header><cond><trailer>" either flat or, when
// it overflows or the condition carries an inline comment, across three
// lines with the condition registered for one extra indent level.
func (p *printer) writeCondHeader(header string, cond ast.Expr, trailer string, depth int) {
	if p.conditionFits(header, cond, trailer, depth) {
		p.writeIndentLine(depth, func() {
			p.write(header)
			p.writeExpr(cond, depth)
			p.write(trailer)
		})
		return
	}
	kw := strings.TrimSuffix(header, " ")
	p.writeIndentLine(depth, func() { p.write(kw) })
	p.writeIndentLine(depth+1, func() { p.writeHungCondition(cond, depth+1) })
	p.writeIndentLine(depth, func() { p.write(strings.TrimSpace(trailer)) })
}

// writeHungCondition registers cond's byte range for one extra indent
// level before writing it, implementing the multi-line condition layout
// step of spec.md C4's point 4.
func (p *printer) writeHungCondition(cond ast.Expr, depth int) {
	p.ranges.add(cond.Span())
	p.writeExpr(cond, depth)
}

func (p *printer) writeNumericFor(n *ast.NumericFor, depth int) {
	p.writeIndentLine(depth, func() {
		p.write("for ")
		p.write(n.Name.Text)
		if n.Type != nil {
			p.write(p.typeSpecFlat(n.Type))
		}
		p.write(" = ")
		p.writeExpr(n.Start, depth)
		p.write(", ")
		p.writeExpr(n.Stop, depth)
		if n.Step != nil {
			p.write(", ")
			p.writeExpr(n.Step, depth)
		}
		p.write(" do")
	})
	p.writeBlock(n.Body, depth+1)
	p.writeEndLine(depth, n)
}

// writeGenericFor writes "for names in exprs do". Any comments attached
// to the name or expression lists are hoisted onto the trailing side of
// this header line rather than left stranded mid-header, so the header
// stays on one logical line (spec.md §4.4's generic-for contract).
func (p *printer) writeGenericFor(n *ast.GenericFor, depth int) {
	var hoisted []string
	p.writeIndentLine(depth, func() {
		p.write("for ")
		for i, el := range n.Names.Elems {
			if i > 0 {
				p.write(", ")
			}
			p.write(el.Value.Name.Text)
			if el.Value.Type != nil {
				p.write(p.typeSpecFlat(el.Value.Type))
			}
			hoisted = append(hoisted, commentsOf(el.Value)...)
		}
		p.write(" in ")
		for i, el := range n.Exprs.Elems {
			if i > 0 {
				p.write(", ")
			}
			p.writeExpr(el.Value, depth)
			hoisted = append(hoisted, commentsOf(el.Value)...)
		}
		p.write(" do")
		for _, c := range hoisted {
			p.write(" ")
			p.write(c)
		}
	})
	p.writeBlock(n.Body, depth+1)
	p.writeEndLine(depth, n)
}

func (p *printer) writeLocalAssign(n *ast.LocalAssign, depth int) {
	p.writeIndentLineWithComment(depth, n, func() {
		p.write("local ")
		for i, el := range n.Names.Elems {
			if i > 0 {
				p.write(", ")
			}
			p.write(el.Value.Name.Text)
			if el.Value.Attrib != nil {
				p.write(" <")
				p.write(el.Value.Attrib.Name.Text)
				p.write(">")
			}
			if el.Value.Type != nil {
				p.write(p.typeSpecFlat(el.Value.Type))
			}
		}
		if n.Eq != nil {
			p.write(" = ")
			for i, el := range n.Exprs.Elems {
				if i > 0 {
					p.write(", ")
				}
				p.writeExpr(el.Value, depth)
			}
		}
	})
}

func (p *printer) writeAssignment(n *ast.Assignment, depth int) {
	p.writeIndentLineWithComment(depth, n, func() {
		for i, el := range n.Vars.Elems {
			if i > 0 {
				p.write(", ")
			}
			p.writeExpr(el.Value, depth)
		}
		p.write(" = ")
		for i, el := range n.Exprs.Elems {
			if i > 0 {
				p.write(", ")
			}
			p.writeExpr(el.Value, depth)
		}
	})
}

func (p *printer) writeFunctionDecl(n *ast.FunctionDecl, depth int) {
	p.writeIndentLine(depth, func() {
		p.write("function ")
		p.write(n.Name.Base.Text)
		for _, d := range n.Name.Dots {
			p.write(".")
			p.write(d.Name.Text)
		}
		if n.Name.Method != nil {
			p.write(":")
			p.write(n.Name.Method.Name.Text)
		}
		p.write(p.paramsFlat(n.Params))
		if n.ReturnType != nil {
			p.write(p.typeSpecFlat(n.ReturnType))
		}
	})
	p.writeBlock(n.Body, depth+1)
	p.writeEndLine(depth, n)
}

func (p *printer) writeLocalFunction(n *ast.LocalFunction, depth int) {
	p.writeIndentLine(depth, func() {
		p.write("local function ")
		p.write(n.Name.Text)
		p.write(p.paramsFlat(n.Params))
		if n.ReturnType != nil {
			p.write(p.typeSpecFlat(n.ReturnType))
		}
	})
	p.writeBlock(n.Body, depth+1)
	p.writeEndLine(depth, n)
}

func (p *printer) writeReturn(n *ast.Return, depth int) {
	p.writeIndentLineWithComment(depth, n, func() {
		p.write("return")
		for i, el := range n.Exprs.Elems {
			if i == 0 {
				p.write(" ")
			} else {
				p.write(", ")
			}
			p.writeExpr(el.Value, depth)
		}
	})
}

// walker is satisfied by anything exposing the token-visiting contract
// ast.Node defines, without requiring the Span half of that interface —
// enough for commentsOf to scan either a *ast.Param or an ast.Expr.
type walker interface {
	Walk(func(token.Token))
}

// commentsOf collects every comment attached to v's tokens, in source
// order, for hoisting onto a generic-for loop's "do" token, or onto a
// hung table field / call argument / binary-chain operand that forced
// the hang in the first place.
func commentsOf(v walker) []string {
	var out []string
	v.Walk(func(t token.Token) {
		out = append(out, tokenComments(t)...)
	})
	return out
}

// tokenComments returns the comments attached to a single token's
// leading and trailing trivia, in source order.
func tokenComments(t token.Token) []string {
	var out []string
	for _, tr := range t.Leading {
		if tr.IsComment() {
			out = append(out, tr.Text)
		}
	}
	for _, tr := range t.Trailing {
		if tr.IsComment() {
			out = append(out, tr.Text)
		}
	}
	return out
}

// elemComments collects the comments of a punctuated element's value
// plus, if present, its separator token — a comment written right after
// a comma belongs to the element before it, not the next one.
func elemComments[T walker](el ast.Elem[T]) []string {
	out := commentsOf(el.Value)
	if el.Sep != nil {
		out = append(out, tokenComments(*el.Sep)...)
	}
	return out
}

// paramsFlat renders a parameter list exactly like a call's paren
// argument form (spec.md: "params like calls").
func (p *printer) paramsFlat(params *ast.FuncParams) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, el := range params.Names.Elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(el.Value.Name.Text)
		if el.Value.Type != nil {
			b.WriteString(p.typeSpecFlat(el.Value.Type))
		}
	}
	b.WriteByte(')')
	return b.String()
}
