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
	"github.com/lunafmt/lunafmt/internal/luaconfig"
	"github.com/lunafmt/lunafmt/internal/quote"
	"github.com/lunafmt/lunafmt/internal/source"
)

// exprFlat renders e as a single-line canonical string (spec.md C3),
// with no regard for column_width — the width engine (C6, in hang.go)
// decides separately whether this candidate needs to be hung.
func (p *printer) exprFlat(e ast.Expr) string {
	var b strings.Builder
	p.writeExprFlat(&b, e)
	return b.String()
}

func (p *printer) writeExprFlat(b *strings.Builder, e ast.Expr) {
	switch n := e.(type) {
	case *ast.Literal:
		b.WriteString(n.Tok.Text)
	case *ast.Number:
		b.WriteString(n.Tok.Text)
	case *ast.String:
		if n.LongForm {
			b.WriteString(n.Tok.Text)
		} else {
			b.WriteString(quote.Normalize(n.Tok.Text, p.quoteStyle()))
		}
	case *ast.Ident:
		b.WriteString(n.Tok.Text)
	case *ast.Paren:
		b.WriteByte('(')
		p.writeExprFlat(b, n.Inner)
		b.WriteByte(')')
	case *ast.BinOp:
		p.writeExprFlat(b, n.Left)
		b.WriteByte(' ')
		b.WriteString(n.Op.Text)
		b.WriteByte(' ')
		p.writeExprFlat(b, n.Right)
	case *ast.UnOp:
		b.WriteString(n.Op.Text)
		if n.Op.Text == "not" {
			b.WriteByte(' ')
		}
		p.writeExprFlat(b, n.Operand)
	case *ast.TableConstructor:
		b.WriteString(p.tableFlat(n))
	case *ast.FunctionExpr:
		// A function literal's body is a statement sequence and has no
		// real flat form; this candidate exists only so an enclosing
		// expression's width check always overflows and falls through to
		// writeExpr's dedicated *ast.FunctionExpr branch in hang.go,
		// which renders the actual header/body/end layout.
		b.WriteString(p.funcHeaderFlat(n.Params, n.ReturnType))
		b.WriteString(" ... end")
	case *ast.Suffixed:
		p.writeExprFlat(b, n.Base)
		for _, s := range n.Suffixes {
			p.writeSuffixFlat(b, s)
		}
	default:
		source.Fatalf(e.Span(), "unhandled expression kind %T", e)
	}
}

func (p *printer) writeSuffixFlat(b *strings.Builder, s ast.Suffix) {
	switch n := s.(type) {
	case *ast.DotIndex:
		b.WriteByte('.')
		b.WriteString(n.Name.Text)
	case *ast.BracketIndex:
		b.WriteByte('[')
		p.writeExprFlat(b, n.Key)
		b.WriteByte(']')
	case *ast.Call:
		b.WriteString(p.callArgsFlat(n.Args))
	case *ast.MethodCall:
		b.WriteByte(':')
		b.WriteString(n.Name.Text)
		b.WriteString(p.callArgsFlat(n.Args))
	default:
		source.Fatalf(s.Span(), "unhandled suffix kind %T", s)
	}
}

func (p *printer) callArgsFlat(args ast.CallArgs) string {
	switch n := args.(type) {
	case *ast.ParenArgs:
		var b strings.Builder
		b.WriteByte('(')
		for i, el := range n.Args.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			p.writeExprFlat(&b, el.Value)
		}
		b.WriteByte(')')
		return b.String()
	case *ast.StringArgs:
		return " " + p.exprFlat(n.String)
	case *ast.TableArgs:
		return " " + p.tableFlat(n.Table)
	default:
		source.Fatalf(args.Span(), "unhandled call-args kind %T", args)
		return ""
	}
}

// tableFlat renders a table constructor as its single-line candidate
// form: "{}" when empty, "{ a, b }" otherwise (spec.md §4.3).
func (p *printer) tableFlat(t *ast.TableConstructor) string {
	if t.Fields.Len() == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for i, el := range t.Fields.Elems {
		if i > 0 {
			b.WriteString(", ")
		}
		p.writeTableFieldFlat(&b, el.Value)
	}
	b.WriteString(" }")
	return b.String()
}

func (p *printer) writeTableFieldFlat(b *strings.Builder, f *ast.TableField) {
	switch {
	case f.LBracket != nil:
		b.WriteByte('[')
		p.writeExprFlat(b, f.Key)
		b.WriteString("] = ")
		p.writeExprFlat(b, f.Value)
	case f.Name != nil:
		b.WriteString(f.Name.Text)
		b.WriteString(" = ")
		p.writeExprFlat(b, f.Value)
	default:
		p.writeExprFlat(b, f.Value)
	}
}

func (p *printer) funcHeaderFlat(params *ast.FuncParams, ret *ast.TypeSpec) string {
	var b strings.Builder
	b.WriteString("function(")
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
	if ret != nil {
		b.WriteString(p.typeSpecFlat(ret))
	}
	return b.String()
}

func (p *printer) typeSpecFlat(t *ast.TypeSpec) string {
	var b strings.Builder
	b.WriteString(": ")
	for i, tok := range t.Type {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

func (p *printer) quoteStyle() quote.Style {
	switch p.cfg.QuoteStyle {
	case luaconfig.AutoPreferSingle:
		return quote.AutoPreferSingle
	case luaconfig.ForceDouble:
		return quote.ForceDouble
	case luaconfig.ForceSingle:
		return quote.ForceSingle
	default:
		return quote.AutoPreferDouble
	}
}
