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
	"github.com/lunafmt/lunafmt/internal/source"
	"github.com/lunafmt/lunafmt/internal/token"
)

// Expr is any expression node.
type Expr interface {
	Node
	isExpr()
}

// joinSpans merges two token spans, a occurring before b.
func joinSpans(a, b token.Token) source.Span {
	return source.Span{File: a.Span.File, Start: a.Span.Start, End: b.Span.End}
}

// Literal is a keyword literal: nil, true, false, or Luau's "...".
type Literal struct {
	Tok token.Token
}

func (n *Literal) isExpr()                     {}
func (n *Literal) Span() source.Span           { return n.Tok.Span }
func (n *Literal) Walk(v func(token.Token))    { v(n.Tok) }

// Number is a numeric literal. Its text is passed through verbatim
// (spec.md §4.3).
type Number struct {
	Tok token.Token
}

func (n *Number) isExpr()                  {}
func (n *Number) Span() source.Span        { return n.Tok.Span }
func (n *Number) Walk(v func(token.Token)) { v(n.Tok) }

// String is a short-quoted or long-bracket string literal.
type String struct {
	Tok       token.Token
	LongForm  bool // true for [[...]] and its =-padded variants
}

func (n *String) isExpr()                  {}
func (n *String) Span() source.Span        { return n.Tok.Span }
func (n *String) Walk(v func(token.Token)) { v(n.Tok) }

// Ident is an identifier reference.
type Ident struct {
	Tok token.Token
}

func (n *Ident) isExpr()                  {}
func (n *Ident) Span() source.Span        { return n.Tok.Span }
func (n *Ident) Walk(v func(token.Token)) { v(n.Tok) }

// Paren is a parenthesized expression: "(" Inner ")". Parens are always
// preserved; the formatter never reparenthesizes (spec.md §4.3).
type Paren struct {
	LParen token.Token
	Inner  Expr
	RParen token.Token
}

func (n *Paren) isExpr() {}
func (n *Paren) Span() source.Span {
	return source.Span{File: n.LParen.Span.File, Start: n.LParen.Span.Start, End: n.RParen.Span.End}
}
func (n *Paren) Walk(v func(token.Token)) {
	v(n.LParen)
	n.Inner.Walk(v)
	v(n.RParen)
}

// BinOp is a binary operator application. Associativity and precedence
// are inherited from how the parser nested the tree; the formatter never
// reparenthesizes (spec.md §4.3).
type BinOp struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (n *BinOp) isExpr() {}
func (n *BinOp) Span() source.Span {
	return source.Span{File: n.Left.Span().File, Start: n.Left.Span().Start, End: n.Right.Span().End}
}
func (n *BinOp) Walk(v func(token.Token)) {
	n.Left.Walk(v)
	v(n.Op)
	n.Right.Walk(v)
}

// UnOp is a unary operator application ("-", "#", "not", Luau's "~").
type UnOp struct {
	Op      token.Token
	Operand Expr
}

func (n *UnOp) isExpr() {}
func (n *UnOp) Span() source.Span {
	return source.Span{File: n.Op.Span.File, Start: n.Op.Span.Start, End: n.Operand.Span().End}
}
func (n *UnOp) Walk(v func(token.Token)) {
	v(n.Op)
	n.Operand.Walk(v)
}

// TableField is one field of a [TableConstructor]. Exactly one of Key is
// set (for Named and Indexed), or none (for Positional).
type TableField struct {
	// Positional fields have neither Name nor LBracket set.
	Name *token.Token // set for `name = value` fields
	Eq   *token.Token

	LBracket *token.Token // set for `[key] = value` fields
	Key      Expr
	RBracket *token.Token

	Value Expr
}

func (f *TableField) Walk(v func(token.Token)) {
	if f.LBracket != nil {
		v(*f.LBracket)
		f.Key.Walk(v)
		v(*f.RBracket)
	} else if f.Name != nil {
		v(*f.Name)
	}
	if f.Eq != nil {
		v(*f.Eq)
	}
	f.Value.Walk(v)
}

// TableConstructor is a table literal: "{" fields "}" (spec.md §4.3).
type TableConstructor struct {
	LBrace token.Token
	Fields Punctuated[*TableField]
	RBrace token.Token
}

func (n *TableConstructor) isExpr() {}
func (n *TableConstructor) Span() source.Span {
	return joinSpans(n.LBrace, n.RBrace)
}
func (n *TableConstructor) Walk(v func(token.Token)) {
	v(n.LBrace)
	WalkPunctuated(n.Fields, func(f *TableField, visit func(token.Token)) { f.Walk(visit) }, v)
	v(n.RBrace)
}

// CallArgs is the argument surface of a function call: a parenthesized
// list, a single string literal, or a single table constructor
// (spec.md §4.3).
type CallArgs interface {
	Node
	isCallArgs()
}

// ParenArgs is "(" args ")".
type ParenArgs struct {
	LParen token.Token
	Args   Punctuated[Expr]
	RParen token.Token
}

func (n *ParenArgs) isCallArgs() {}
func (n *ParenArgs) Span() source.Span {
	return joinSpans(n.LParen, n.RParen)
}
func (n *ParenArgs) Walk(v func(token.Token)) {
	v(n.LParen)
	WalkPunctuated(n.Args, func(e Expr, visit func(token.Token)) { e.Walk(visit) }, v)
	v(n.RParen)
}

// StringArgs is a single bare string literal argument: f "arg".
type StringArgs struct {
	String *String
}

func (n *StringArgs) isCallArgs()                  {}
func (n *StringArgs) Span() source.Span            { return n.String.Span() }
func (n *StringArgs) Walk(v func(token.Token))     { n.String.Walk(v) }

// TableArgs is a single bare table constructor argument: f { ... }.
type TableArgs struct {
	Table *TableConstructor
}

func (n *TableArgs) isCallArgs()              {}
func (n *TableArgs) Span() source.Span        { return n.Table.Span() }
func (n *TableArgs) Walk(v func(token.Token)) { n.Table.Walk(v) }

// Suffix is one link of a prefixexp chain: ".name", "[expr]", "(args)",
// or ":name(args)".
type Suffix interface {
	Node
	isSuffix()
}

// DotIndex is ".name".
type DotIndex struct {
	Dot  token.Token
	Name token.Token
}

func (n *DotIndex) isSuffix()                 {}
func (n *DotIndex) Span() source.Span         { return joinSpans(n.Dot, n.Name) }
func (n *DotIndex) Walk(v func(token.Token))  { v(n.Dot); v(n.Name) }

// BracketIndex is "[expr]".
type BracketIndex struct {
	LBracket token.Token
	Key      Expr
	RBracket token.Token
}

func (n *BracketIndex) isSuffix() {}
func (n *BracketIndex) Span() source.Span {
	return joinSpans(n.LBracket, n.RBracket)
}
func (n *BracketIndex) Walk(v func(token.Token)) {
	v(n.LBracket)
	n.Key.Walk(v)
	v(n.RBracket)
}

// Call is "(args)" applied directly to the receiver.
type Call struct {
	Args CallArgs
}

func (n *Call) isSuffix()                 {}
func (n *Call) Span() source.Span         { return n.Args.Span() }
func (n *Call) Walk(v func(token.Token))  { n.Args.Walk(v) }

// MethodCall is ":name(args)".
type MethodCall struct {
	Colon token.Token
	Name  token.Token
	Args  CallArgs
}

func (n *MethodCall) isSuffix() {}
func (n *MethodCall) Span() source.Span {
	return source.Span{File: n.Colon.Span.File, Start: n.Colon.Span.Start, End: n.Args.Span().End}
}
func (n *MethodCall) Walk(v func(token.Token)) {
	v(n.Colon)
	v(n.Name)
	n.Args.Walk(v)
}

// Suffixed is a prefixexp chain: a base expression (identifier or
// parenthesized expression) followed by zero or more suffixes.
//
// The parser never produces a Suffixed with zero Suffixes: a prefixexp
// with no suffixes is returned as its bare base expression instead.
type Suffixed struct {
	Base     Expr
	Suffixes []Suffix
}

func (n *Suffixed) isExpr() {}
func (n *Suffixed) Span() source.Span {
	if len(n.Suffixes) == 0 {
		return n.Base.Span()
	}
	last := n.Suffixes[len(n.Suffixes)-1].Span()
	return source.Span{File: n.Base.Span().File, Start: n.Base.Span().Start, End: last.End}
}
func (n *Suffixed) Walk(v func(token.Token)) {
	n.Base.Walk(v)
	for _, s := range n.Suffixes {
		s.Walk(v)
	}
}

// IsCall reports whether this prefixexp chain ends in a call, i.e. it is
// valid as a standalone call statement.
func (n *Suffixed) IsCall() bool {
	if len(n.Suffixes) == 0 {
		return false
	}
	switch n.Suffixes[len(n.Suffixes)-1].(type) {
	case *Call, *MethodCall:
		return true
	default:
		return false
	}
}

// Param is a function parameter or generic-for loop variable: a name,
// optionally with a Luau type annotation.
type Param struct {
	Name token.Token
	Type *TypeSpec // nil unless the Luau dialect is enabled and present
}

func (p *Param) Walk(v func(token.Token)) {
	v(p.Name)
	if p.Type != nil {
		p.Type.Walk(v)
	}
}

// TypeSpec is a Luau type annotation: ": Type". The type grammar itself
// is kept deliberately simple (a sequence of raw tokens reproduced
// verbatim with canonical spacing) since spec.md does not enumerate
// Luau's type-expression grammar; only that it is an optional dialect
// surface the core must round-trip and canonicalize the entry point of.
type TypeSpec struct {
	Colon token.Token
	Type  []token.Token // raw tokens making up the type expression
}

func (t *TypeSpec) Walk(v func(token.Token)) {
	v(t.Colon)
	for _, tok := range t.Type {
		v(tok)
	}
}

func (t *TypeSpec) Span() source.Span {
	if len(t.Type) == 0 {
		return t.Colon.Span
	}
	return joinSpans(t.Colon, t.Type[len(t.Type)-1])
}

// FuncParams is a parameter list: "(" names ")", where the last name may
// be Luau/Lua5.2's "..." vararg marker.
type FuncParams struct {
	LParen token.Token
	Names  Punctuated[*Param]
	RParen token.Token
}

func (n *FuncParams) Span() source.Span { return joinSpans(n.LParen, n.RParen) }
func (n *FuncParams) Walk(v func(token.Token)) {
	v(n.LParen)
	WalkPunctuated(n.Names, func(p *Param, visit func(token.Token)) { p.Walk(visit) }, v)
	v(n.RParen)
}

// FunctionExpr is an anonymous function expression: "function" params
// body "end".
type FunctionExpr struct {
	Function token.Token
	Params   *FuncParams
	ReturnType *TypeSpec // Luau return-type annotation, nil if absent
	Body     *Block
	End      token.Token
}

func (n *FunctionExpr) isExpr() {}
func (n *FunctionExpr) Span() source.Span {
	return joinSpans(n.Function, n.End)
}
func (n *FunctionExpr) Walk(v func(token.Token)) {
	v(n.Function)
	n.Params.Walk(v)
	if n.ReturnType != nil {
		n.ReturnType.Walk(v)
	}
	n.Body.Walk(v)
	v(n.End)
}
