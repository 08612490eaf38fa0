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

// Do is "do" block "end".
type Do struct {
	DoTok token.Token
	Body  *Block
	End   token.Token
}

func (n *Do) isStmt()                      {}
func (n *Do) Span() source.Span            { return joinSpans(n.DoTok, n.End) }
func (n *Do) Walk(v func(token.Token))     { v(n.DoTok); n.Body.Walk(v); v(n.End) }

// While is "while" cond "do" block "end".
type While struct {
	WhileTok token.Token
	Cond     Expr
	DoTok    token.Token
	Body     *Block
	End      token.Token
}

func (n *While) isStmt()           {}
func (n *While) Span() source.Span { return joinSpans(n.WhileTok, n.End) }
func (n *While) Walk(v func(token.Token)) {
	v(n.WhileTok)
	n.Cond.Walk(v)
	v(n.DoTok)
	n.Body.Walk(v)
	v(n.End)
}

// Repeat is "repeat" block "until" cond.
type Repeat struct {
	RepeatTok token.Token
	Body      *Block
	UntilTok  token.Token
	Cond      Expr
}

func (n *Repeat) isStmt() {}
func (n *Repeat) Span() source.Span {
	return source.Span{File: n.RepeatTok.Span.File, Start: n.RepeatTok.Span.Start, End: n.Cond.Span().End}
}
func (n *Repeat) Walk(v func(token.Token)) {
	v(n.RepeatTok)
	n.Body.Walk(v)
	v(n.UntilTok)
	n.Cond.Walk(v)
}

// ElseIf is "elseif" cond "then" block, always nested inside an [If].
type ElseIf struct {
	ElseIfTok token.Token
	Cond      Expr
	ThenTok   token.Token
	Body      *Block
}

func (n *ElseIf) Walk(v func(token.Token)) {
	v(n.ElseIfTok)
	n.Cond.Walk(v)
	v(n.ThenTok)
	n.Body.Walk(v)
}

// ElseClause is "else" block, always nested inside an [If].
type ElseClause struct {
	ElseTok token.Token
	Body    *Block
}

func (n *ElseClause) Walk(v func(token.Token)) {
	v(n.ElseTok)
	n.Body.Walk(v)
}

// If is "if" cond "then" block {elseif}* [else] "end".
type If struct {
	IfTok   token.Token
	Cond    Expr
	ThenTok token.Token
	Body    *Block
	ElseIfs []*ElseIf
	Else    *ElseClause
	End     token.Token
}

func (n *If) isStmt()           {}
func (n *If) Span() source.Span { return joinSpans(n.IfTok, n.End) }
func (n *If) Walk(v func(token.Token)) {
	v(n.IfTok)
	n.Cond.Walk(v)
	v(n.ThenTok)
	n.Body.Walk(v)
	for _, e := range n.ElseIfs {
		e.Walk(v)
	}
	if n.Else != nil {
		n.Else.Walk(v)
	}
	v(n.End)
}

// NumericFor is "for" name "=" start "," stop ["," step] "do" block "end".
type NumericFor struct {
	ForTok token.Token
	Name   token.Token
	Type   *TypeSpec // Luau annotation on the loop variable, if present
	Eq     token.Token
	Start  Expr
	Comma1 token.Token
	Stop   Expr
	Comma2 *token.Token
	Step   Expr // nil if Comma2 is nil
	DoTok  token.Token
	Body   *Block
	End    token.Token
}

func (n *NumericFor) isStmt()           {}
func (n *NumericFor) Span() source.Span { return joinSpans(n.ForTok, n.End) }
func (n *NumericFor) Walk(v func(token.Token)) {
	v(n.ForTok)
	v(n.Name)
	if n.Type != nil {
		n.Type.Walk(v)
	}
	v(n.Eq)
	n.Start.Walk(v)
	v(n.Comma1)
	n.Stop.Walk(v)
	if n.Comma2 != nil {
		v(*n.Comma2)
		n.Step.Walk(v)
	}
	v(n.DoTok)
	n.Body.Walk(v)
	v(n.End)
}

// GenericFor is "for" names "in" exprs "do" block "end".
type GenericFor struct {
	ForTok token.Token
	Names  Punctuated[*Param]
	InTok  token.Token
	Exprs  Punctuated[Expr]
	DoTok  token.Token
	Body   *Block
	End    token.Token
}

func (n *GenericFor) isStmt()           {}
func (n *GenericFor) Span() source.Span { return joinSpans(n.ForTok, n.End) }
func (n *GenericFor) Walk(v func(token.Token)) {
	v(n.ForTok)
	WalkPunctuated(n.Names, func(p *Param, visit func(token.Token)) { p.Walk(visit) }, v)
	v(n.InTok)
	WalkPunctuated(n.Exprs, func(e Expr, visit func(token.Token)) { e.Walk(visit) }, v)
	v(n.DoTok)
	n.Body.Walk(v)
	v(n.End)
}

// LocalName is one name bound by a [LocalAssign]: a name, an optional
// Luau type annotation, and an optional Lua 5.4-style <const>/<close>
// attribute (accepted and round-tripped, though spec.md does not call
// out 5.4 attributes explicitly; treated like any other trivia-bearing
// token since the core does not validate dialect-specific semantics).
type LocalName struct {
	Name  token.Token
	Attrib *Attrib
	Type  *TypeSpec
}

// Attrib is Lua 5.4's "<const>" / "<close>" local attribute.
type Attrib struct {
	LAngle token.Token
	Name   token.Token
	RAngle token.Token
}

func (a *Attrib) Walk(v func(token.Token)) { v(a.LAngle); v(a.Name); v(a.RAngle) }

func (p *LocalName) Walk(v func(token.Token)) {
	v(p.Name)
	if p.Attrib != nil {
		p.Attrib.Walk(v)
	}
	if p.Type != nil {
		p.Type.Walk(v)
	}
}

// LocalAssign is "local" names ["=" exprs].
type LocalAssign struct {
	LocalTok token.Token
	Names    Punctuated[*LocalName]
	Eq       *token.Token
	Exprs    Punctuated[Expr]
}

func (n *LocalAssign) isStmt() {}
func (n *LocalAssign) Span() source.Span {
	end := n.Names.Elems[len(n.Names.Elems)-1].Value.Name.Span
	if n.Exprs.Len() > 0 {
		end = n.Exprs.Elems[len(n.Exprs.Elems)-1].Value.Span()
	}
	return source.Span{File: n.LocalTok.Span.File, Start: n.LocalTok.Span.Start, End: end.End}
}
func (n *LocalAssign) Walk(v func(token.Token)) {
	v(n.LocalTok)
	WalkPunctuated(n.Names, func(p *LocalName, visit func(token.Token)) { p.Walk(visit) }, v)
	if n.Eq != nil {
		v(*n.Eq)
		WalkPunctuated(n.Exprs, func(e Expr, visit func(token.Token)) { e.Walk(visit) }, v)
	}
}

// Assignment is vars "=" exprs, where each var is a [Suffixed] lvalue.
type Assignment struct {
	Vars  Punctuated[Expr]
	Eq    token.Token
	Exprs Punctuated[Expr]
}

func (n *Assignment) isStmt() {}
func (n *Assignment) Span() source.Span {
	first := n.Vars.Elems[0].Value.Span()
	last := n.Exprs.Elems[len(n.Exprs.Elems)-1].Value.Span()
	return source.Span{File: first.File, Start: first.Start, End: last.End}
}
func (n *Assignment) Walk(v func(token.Token)) {
	WalkPunctuated(n.Vars, func(e Expr, visit func(token.Token)) { e.Walk(visit) }, v)
	v(n.Eq)
	WalkPunctuated(n.Exprs, func(e Expr, visit func(token.Token)) { e.Walk(visit) }, v)
}

// CallStmt is a function or method call used as a statement.
type CallStmt struct {
	Call *Suffixed
}

func (n *CallStmt) isStmt()                  {}
func (n *CallStmt) Span() source.Span        { return n.Call.Span() }
func (n *CallStmt) Walk(v func(token.Token)) { n.Call.Walk(v) }

// FuncNamePart is one ".name" link in a [FunctionDecl]'s dotted name.
type FuncNamePart struct {
	Dot  token.Token
	Name token.Token
}

// FuncName is the (possibly dotted, possibly method) name of a
// function declaration: base {"." name}* [":" name].
type FuncName struct {
	Base   token.Token
	Dots   []FuncNamePart
	Method *FuncNamePart // Colon field reused as the ':' token
}

func (fn *FuncName) Walk(v func(token.Token)) {
	v(fn.Base)
	for _, d := range fn.Dots {
		v(d.Dot)
		v(d.Name)
	}
	if fn.Method != nil {
		v(fn.Method.Dot)
		v(fn.Method.Name)
	}
}

// FunctionDecl is "function" name params body "end".
type FunctionDecl struct {
	Function token.Token
	Name     *FuncName
	Params   *FuncParams
	ReturnType *TypeSpec
	Body     *Block
	End      token.Token
}

func (n *FunctionDecl) isStmt()           {}
func (n *FunctionDecl) Span() source.Span { return joinSpans(n.Function, n.End) }
func (n *FunctionDecl) Walk(v func(token.Token)) {
	v(n.Function)
	n.Name.Walk(v)
	n.Params.Walk(v)
	if n.ReturnType != nil {
		n.ReturnType.Walk(v)
	}
	n.Body.Walk(v)
	v(n.End)
}

// LocalFunction is "local" "function" name params body "end".
type LocalFunction struct {
	LocalTok   token.Token
	Function   token.Token
	Name       token.Token
	Params     *FuncParams
	ReturnType *TypeSpec
	Body       *Block
	End        token.Token
}

func (n *LocalFunction) isStmt()           {}
func (n *LocalFunction) Span() source.Span { return joinSpans(n.LocalTok, n.End) }
func (n *LocalFunction) Walk(v func(token.Token)) {
	v(n.LocalTok)
	v(n.Function)
	v(n.Name)
	n.Params.Walk(v)
	if n.ReturnType != nil {
		n.ReturnType.Walk(v)
	}
	n.Body.Walk(v)
	v(n.End)
}

// Return is "return" [exprs] [";"], always the last statement of its block.
type Return struct {
	ReturnTok token.Token
	Exprs     Punctuated[Expr]
	Semi      *token.Token
}

func (n *Return) isStmt() {}
func (n *Return) Span() source.Span {
	end := n.ReturnTok.Span
	if n.Semi != nil {
		end = n.Semi.Span
	} else if n.Exprs.Len() > 0 {
		end = n.Exprs.Elems[len(n.Exprs.Elems)-1].Value.Span()
	}
	return source.Span{File: n.ReturnTok.Span.File, Start: n.ReturnTok.Span.Start, End: end.End}
}
func (n *Return) Walk(v func(token.Token)) {
	v(n.ReturnTok)
	WalkPunctuated(n.Exprs, func(e Expr, visit func(token.Token)) { e.Walk(visit) }, v)
	if n.Semi != nil {
		v(*n.Semi)
	}
}

// Break is "break", always the last statement of its block.
type Break struct {
	BreakTok token.Token
}

func (n *Break) isStmt()                  {}
func (n *Break) Span() source.Span        { return n.BreakTok.Span }
func (n *Break) Walk(v func(token.Token)) { v(n.BreakTok) }

// Goto is Lua 5.2's "goto" name.
type Goto struct {
	GotoTok token.Token
	Label   token.Token
}

func (n *Goto) isStmt()                  {}
func (n *Goto) Span() source.Span        { return joinSpans(n.GotoTok, n.Label) }
func (n *Goto) Walk(v func(token.Token)) { v(n.GotoTok); v(n.Label) }

// Label is Lua 5.2's "::" name "::".
type Label struct {
	Open  token.Token
	Name  token.Token
	Close token.Token
}

func (n *Label) isStmt()                  {}
func (n *Label) Span() source.Span        { return joinSpans(n.Open, n.Close) }
func (n *Label) Walk(v func(token.Token)) { v(n.Open); v(n.Name); v(n.Close) }
