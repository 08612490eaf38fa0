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
	"github.com/lunafmt/lunafmt/internal/trace"
)

func spanFrom(startOffset, endOffset int, file string) source.Span {
	return source.Span{File: file, Start: source.Pos{Offset: startOffset}, End: source.Pos{Offset: endOffset}}
}

// needsHang decides whether e must be laid out across multiple lines
// (spec.md C6): either its flat candidate overflows column_width starting
// at the printer's current column, or it transitively carries an inline
// comment that would otherwise be silently absorbed into one line.
func (p *printer) needsHang(e ast.Expr, flat string) bool {
	if hasInlineComment(e) {
		trace.Hang("forcing hang: inline comment in %T at col %d", e, p.col)
		return true
	}
	if !p.fits(flat) {
		trace.Hang("forcing hang: width %d exceeds budget at col %d", len(flat), p.col)
		return true
	}
	return false
}

// writeExpr writes e at the printer's current position, choosing between
// the flat candidate and a hung layout per needsHang. depth is the
// enclosing statement's indent depth; a hung expression's continuation
// lines sit at depth+1, and that extra level is registered into the
// printer's indent-range set so anything measured later within the same
// byte range sees it too (spec.md C7).
func (p *printer) writeExpr(e ast.Expr, depth int) {
	if fn, ok := e.(*ast.FunctionExpr); ok {
		p.writeFunctionExpr(fn, depth)
		return
	}
	flat := p.exprFlat(e)
	if !p.needsHang(e, flat) {
		p.write(flat)
		return
	}
	if bin, ok := e.(*ast.BinOp); ok {
		p.writeChainHung(bin, depth)
		return
	}
	if p.writeCallHung(e, depth) {
		return
	}
	if p.writeTableHung(e, depth) {
		return
	}
	// Nothing about this expression shape can be hung further; accept the
	// overflow rather than re-hang sub-expressions (spec.md C6's
	// bounded-work guarantee).
	p.write(flat)
}

// writeChainHung lays out a left-leaning run of binary operators as
// "left" followed by one "op right" pair per line at depth+1 (spec.md
// C6). The left spine is walked down to its base, then replayed in
// source order.
func (p *printer) writeChainHung(root *ast.BinOp, depth int) {
	var rights []ast.Expr
	var nodes []*ast.BinOp
	cur := ast.Expr(root)
	for {
		b, ok := cur.(*ast.BinOp)
		if !ok {
			break
		}
		rights = append(rights, b.Right)
		nodes = append(nodes, b)
		cur = b.Left
	}
	for i, j := 0, len(rights)-1; i < j; i, j = i+1, j-1 {
		rights[i], rights[j] = rights[j], rights[i]
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	base := cur

	p.writeExpr(base, depth)
	p.writeInlineComments(commentsOf(base))
	innerDepth := depth + 1
	for i, bin := range nodes {
		p.newline()
		p.write(p.indentText(innerDepth, 0))
		p.write(bin.Op.Text)
		p.write(" ")
		p.writeExpr(rights[i], depth)
		p.writeInlineComments(commentsOf(rights[i]))
	}
	p.ranges.add(spanFrom(base.Span().End.Offset, root.Span().End.Offset, root.Span().File))
}

// writeFunctionExpr renders a function literal as a header line, its
// body block, and a closing "end" — the same shape a named function
// declaration uses. A function's body is a statement sequence, never a
// flat candidate, so this bypasses needsHang entirely rather than
// measuring a synthetic one-line form of it.
func (p *printer) writeFunctionExpr(n *ast.FunctionExpr, depth int) {
	p.write("function")
	p.write(p.paramsFlat(n.Params))
	if n.ReturnType != nil {
		p.write(p.typeSpecFlat(n.ReturnType))
	}
	if len(n.Body.Stmts) == 0 && n.Body.Last == nil {
		p.write(" end")
		return
	}
	p.newline()
	p.writeBlock(n.Body, depth+1)
	p.write(p.indentText(depth, 0))
	p.write("end")
}

// writeCallHung switches a trailing call's argument list to one-argument-
// per-line form when e is a call whose flat form doesn't fit. Returns
// false if e is not shaped like a hangable call.
func (p *printer) writeCallHung(e ast.Expr, depth int) bool {
	suf, ok := e.(*ast.Suffixed)
	if !ok || len(suf.Suffixes) == 0 {
		return false
	}
	last := suf.Suffixes[len(suf.Suffixes)-1]
	var args ast.CallArgs
	switch s := last.(type) {
	case *ast.Call:
		args = s.Args
	case *ast.MethodCall:
		args = s.Args
	default:
		return false
	}
	paren, ok := args.(*ast.ParenArgs)
	if !ok || paren.Args.Len() == 0 {
		return false
	}

	var head strings.Builder
	p.writeExprFlat(&head, suf.Base)
	for _, s := range suf.Suffixes[:len(suf.Suffixes)-1] {
		p.writeSuffixFlat(&head, s)
	}
	if mc, ok := last.(*ast.MethodCall); ok {
		head.WriteByte(':')
		head.WriteString(mc.Name.Text)
	}
	p.write(head.String())
	p.write("(")
	innerDepth := depth + 1
	for i, el := range paren.Args.Elems {
		p.newline()
		p.write(p.indentText(innerDepth, 0))
		p.writeExpr(el.Value, innerDepth)
		if i < len(paren.Args.Elems)-1 {
			p.write(",")
		}
		p.writeInlineComments(elemComments(el))
	}
	p.newline()
	p.write(p.indentText(depth, 0))
	p.write(")")
	p.ranges.add(spanFrom(paren.LParen.Span.Start.Offset, paren.RParen.Span.End.Offset, paren.RParen.Span.File))
	return true
}

// writeTableHung switches a table constructor to one-field-per-line form
// with a trailing comma after every field (spec.md invariant 3, §4.3).
func (p *printer) writeTableHung(e ast.Expr, depth int) bool {
	t, ok := e.(*ast.TableConstructor)
	if !ok || t.Fields.Len() == 0 {
		return false
	}
	p.write("{")
	innerDepth := depth + 1
	for _, el := range t.Fields.Elems {
		p.newline()
		p.write(p.indentText(innerDepth, 0))
		var b strings.Builder
		p.writeTableFieldFlat(&b, el.Value)
		p.write(b.String())
		p.write(",")
		p.writeInlineComments(elemComments(el))
	}
	p.newline()
	p.write(p.indentText(depth, 0))
	p.write("}")
	p.ranges.add(spanFrom(t.LBrace.Span.Start.Offset, t.RBrace.Span.End.Offset, t.RBrace.Span.File))
	return true
}
