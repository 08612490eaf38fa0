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
	"fmt"

	"github.com/lunafmt/lunafmt/internal/source"
	"github.com/lunafmt/lunafmt/internal/token"
	"github.com/lunafmt/lunafmt/internal/trivia"
)

// Parse builds a [File] CST from Lua source text. file names the input
// for diagnostics; dialect selects which optional grammar extensions are
// accepted. A construct from a disabled dialect is rejected here, at the
// parser stage, never by the formatter (spec.md §9).
func Parse(src, file string, dialect Dialect) (*File, error) {
	toks, err := tokenize(src, file)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, file: file, dialect: dialect}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if !p.at(token.EOF) {
		return nil, p.errorf("unexpected token %q", p.cur().Text)
	}
	return &File{Body: body, EOF: p.advance()}, nil
}

type parser struct {
	toks    []token.Token
	pos     int
	file    string
	dialect Dialect
}

func (p *parser) cur() token.Token { return p.toks[p.pos] }

func (p *parser) at(k token.Kind) bool { return p.cur().Kind == k }

func (p *parser) atKeyword(kw string) bool { return p.cur().Kind == token.Keyword && p.cur().Text == kw }

func (p *parser) atSymbol(sym string) bool { return p.cur().Kind == token.Symbol && p.cur().Text == sym }

func (p *parser) atString() bool { return p.at(token.ShortString) || p.at(token.LongString) }

func (p *parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errorf(format string, args ...any) error {
	return &source.ParseError{Span: p.cur().Span, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expectKeyword(kw string) (token.Token, error) {
	if !p.atKeyword(kw) {
		return token.Token{}, p.errorf("expected %q, found %q", kw, p.cur().Text)
	}
	return p.advance(), nil
}

func (p *parser) expectSymbol(sym string) (token.Token, error) {
	if !p.atSymbol(sym) {
		return token.Token{}, p.errorf("expected %q, found %q", sym, p.cur().Text)
	}
	return p.advance(), nil
}

func (p *parser) expectIdent() (token.Token, error) {
	if !p.at(token.Ident) {
		return token.Token{}, p.errorf("expected identifier, found %q", p.cur().Text)
	}
	return p.advance(), nil
}

// skipSemicolons consumes zero or more ';' statement separators. Lua
// treats these as no-op statements; rather than inventing an EmptyStmt
// node for them, any trivia the semicolon itself carried is folded into
// the leading trivia of whatever comes next, so no comment attached to a
// stray ';' is ever lost (spec.md invariant 1).
func (p *parser) skipSemicolons() {
	for p.atSymbol(";") {
		semi := p.advance()
		merged := make([]trivia.Trivia, 0, len(semi.Leading)+len(semi.Trailing)+len(p.toks[p.pos].Leading))
		merged = append(merged, semi.Leading...)
		merged = append(merged, semi.Trailing...)
		merged = append(merged, p.toks[p.pos].Leading...)
		p.toks[p.pos].Leading = merged
	}
}

func (p *parser) blockEnd() bool {
	if p.at(token.EOF) {
		return true
	}
	if p.cur().Kind == token.Keyword {
		switch p.cur().Text {
		case "end", "else", "elseif", "until":
			return true
		}
	}
	return false
}

func (p *parser) parseBlock() (*Block, error) {
	block := &Block{}
	p.skipSemicolons()
	for !p.blockEnd() {
		if p.atKeyword("return") {
			ret, err := p.parseReturn()
			if err != nil {
				return nil, err
			}
			block.Last = ret
			p.skipSemicolons()
			break
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		if brk, ok := stmt.(*Break); ok {
			block.Last = brk
			p.skipSemicolons()
			break
		}
		block.Stmts = append(block.Stmts, stmt)
		p.skipSemicolons()
	}
	return block, nil
}

func (p *parser) parseReturn() (*Return, error) {
	retTok, err := p.expectKeyword("return")
	if err != nil {
		return nil, err
	}
	ret := &Return{ReturnTok: retTok}
	if !p.blockEnd() && !p.atSymbol(";") {
		exprs, err := p.parsePunctuatedExpr(func() bool { return false })
		if err != nil {
			return nil, err
		}
		ret.Exprs = exprs
	}
	if p.atSymbol(";") {
		semi := p.advance()
		ret.Semi = &semi
	}
	return ret, nil
}

func (p *parser) parseStmt() (Stmt, error) {
	switch {
	case p.atKeyword("if"):
		return p.parseIf()
	case p.atKeyword("while"):
		return p.parseWhile()
	case p.atKeyword("do"):
		return p.parseDo()
	case p.atKeyword("for"):
		return p.parseFor()
	case p.atKeyword("repeat"):
		return p.parseRepeat()
	case p.atKeyword("function"):
		return p.parseFunctionDecl()
	case p.atKeyword("local"):
		return p.parseLocal()
	case p.atKeyword("break"):
		return &Break{BreakTok: p.advance()}, nil
	case p.dialect.GotoLabels && p.atSymbol("::"):
		return p.parseLabel()
	case p.dialect.GotoLabels && p.at(token.Ident) && p.cur().Text == "goto":
		return p.parseGoto()
	default:
		return p.parseExprStmt()
	}
}

func (p *parser) parseDo() (*Do, error) {
	doTok, err := p.expectKeyword("do")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	end, err := p.expectKeyword("end")
	if err != nil {
		return nil, err
	}
	return &Do{DoTok: doTok, Body: body, End: end}, nil
}

func (p *parser) parseWhile() (*While, error) {
	whileTok, err := p.expectKeyword("while")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	doTok, err := p.expectKeyword("do")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	end, err := p.expectKeyword("end")
	if err != nil {
		return nil, err
	}
	return &While{WhileTok: whileTok, Cond: cond, DoTok: doTok, Body: body, End: end}, nil
}

func (p *parser) parseRepeat() (*Repeat, error) {
	repeatTok, err := p.expectKeyword("repeat")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	untilTok, err := p.expectKeyword("until")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	return &Repeat{RepeatTok: repeatTok, Body: body, UntilTok: untilTok, Cond: cond}, nil
}

func (p *parser) parseIf() (*If, error) {
	ifTok, err := p.expectKeyword("if")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	thenTok, err := p.expectKeyword("then")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node := &If{IfTok: ifTok, Cond: cond, ThenTok: thenTok, Body: body}

	for p.atKeyword("elseif") {
		eiTok := p.advance()
		eiCond, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		eiThen, err := p.expectKeyword("then")
		if err != nil {
			return nil, err
		}
		eiBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.ElseIfs = append(node.ElseIfs, &ElseIf{ElseIfTok: eiTok, Cond: eiCond, ThenTok: eiThen, Body: eiBody})
	}

	if p.atKeyword("else") {
		elseTok := p.advance()
		elseBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Else = &ElseClause{ElseTok: elseTok, Body: elseBody}
	}

	end, err := p.expectKeyword("end")
	if err != nil {
		return nil, err
	}
	node.End = end
	return node, nil
}

func (p *parser) parseFor() (Stmt, error) {
	forTok, err := p.expectKeyword("for")
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	var typeSpec *TypeSpec
	if p.dialect.LuauTypes && p.atSymbol(":") {
		typeSpec, err = p.parseTypeSpec(isForTypeStop)
		if err != nil {
			return nil, err
		}
	}

	if p.atSymbol("=") {
		return p.finishNumericFor(forTok, name, typeSpec)
	}
	return p.finishGenericFor(forTok, name, typeSpec)
}

func (p *parser) finishNumericFor(forTok, name token.Token, typeSpec *TypeSpec) (*NumericFor, error) {
	eq, err := p.expectSymbol("=")
	if err != nil {
		return nil, err
	}
	start, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	comma1, err := p.expectSymbol(",")
	if err != nil {
		return nil, err
	}
	stop, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	node := &NumericFor{ForTok: forTok, Name: name, Type: typeSpec, Eq: eq, Start: start, Comma1: comma1, Stop: stop}
	if p.atSymbol(",") {
		c2 := p.advance()
		node.Comma2 = &c2
		step, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		node.Step = step
	}
	doTok, err := p.expectKeyword("do")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	end, err := p.expectKeyword("end")
	if err != nil {
		return nil, err
	}
	node.DoTok, node.Body, node.End = doTok, body, end
	return node, nil
}

func (p *parser) finishGenericFor(forTok, firstName token.Token, firstType *TypeSpec) (*GenericFor, error) {
	names := Punctuated[*Param]{Elems: []Elem[*Param]{{Value: &Param{Name: firstName, Type: firstType}}}}
	for p.atSymbol(",") {
		sep := p.advance()
		names.Elems[len(names.Elems)-1].Sep = &sep
		n, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		var ts *TypeSpec
		if p.dialect.LuauTypes && p.atSymbol(":") {
			ts, err = p.parseTypeSpec(isForTypeStop)
			if err != nil {
				return nil, err
			}
		}
		names.Elems = append(names.Elems, Elem[*Param]{Value: &Param{Name: n, Type: ts}})
	}
	inTok, err := p.expectKeyword("in")
	if err != nil {
		return nil, err
	}
	exprs, err := p.parsePunctuatedExpr(func() bool { return false })
	if err != nil {
		return nil, err
	}
	doTok, err := p.expectKeyword("do")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	end, err := p.expectKeyword("end")
	if err != nil {
		return nil, err
	}
	return &GenericFor{ForTok: forTok, Names: names, InTok: inTok, Exprs: exprs, DoTok: doTok, Body: body, End: end}, nil
}

func (p *parser) parseFunctionDecl() (*FunctionDecl, error) {
	fnTok, err := p.expectKeyword("function")
	if err != nil {
		return nil, err
	}
	base, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	name := &FuncName{Base: base}
	for p.atSymbol(".") {
		dot := p.advance()
		part, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		name.Dots = append(name.Dots, FuncNamePart{Dot: dot, Name: part})
	}
	if p.atSymbol(":") {
		colon := p.advance()
		part, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		name.Method = &FuncNamePart{Dot: colon, Name: part}
	}
	params, retType, body, end, err := p.parseFuncTail()
	if err != nil {
		return nil, err
	}
	return &FunctionDecl{Function: fnTok, Name: name, Params: params, ReturnType: retType, Body: body, End: end}, nil
}

func (p *parser) parseLocal() (Stmt, error) {
	localTok, err := p.expectKeyword("local")
	if err != nil {
		return nil, err
	}
	if p.atKeyword("function") {
		fnTok := p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		params, retType, body, end, err := p.parseFuncTail()
		if err != nil {
			return nil, err
		}
		return &LocalFunction{LocalTok: localTok, Function: fnTok, Name: name, Params: params, ReturnType: retType, Body: body, End: end}, nil
	}

	first, err := p.parseLocalName()
	if err != nil {
		return nil, err
	}
	names := Punctuated[*LocalName]{Elems: []Elem[*LocalName]{{Value: first}}}
	for p.atSymbol(",") {
		sep := p.advance()
		names.Elems[len(names.Elems)-1].Sep = &sep
		n, err := p.parseLocalName()
		if err != nil {
			return nil, err
		}
		names.Elems = append(names.Elems, Elem[*LocalName]{Value: n})
	}

	node := &LocalAssign{LocalTok: localTok, Names: names}
	if p.atSymbol("=") {
		eq := p.advance()
		node.Eq = &eq
		exprs, err := p.parsePunctuatedExpr(func() bool { return false })
		if err != nil {
			return nil, err
		}
		node.Exprs = exprs
	}
	return node, nil
}

func (p *parser) parseLocalName() (*LocalName, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	ln := &LocalName{Name: name}
	if p.atSymbol("<") {
		lAngle := p.advance()
		attrName, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		rAngle, err := p.expectSymbol(">")
		if err != nil {
			return nil, err
		}
		ln.Attrib = &Attrib{LAngle: lAngle, Name: attrName, RAngle: rAngle}
	}
	if p.dialect.LuauTypes && p.atSymbol(":") {
		ts, err := p.parseTypeSpec(isLocalTypeStop)
		if err != nil {
			return nil, err
		}
		ln.Type = ts
	}
	return ln, nil
}

func (p *parser) parseGoto() (*Goto, error) {
	gotoTok := p.advance()
	label, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	return &Goto{GotoTok: gotoTok, Label: label}, nil
}

func (p *parser) parseLabel() (*Label, error) {
	open, err := p.expectSymbol("::")
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	close_, err := p.expectSymbol("::")
	if err != nil {
		return nil, err
	}
	return &Label{Open: open, Name: name, Close: close_}, nil
}

// parseExprStmt parses either an assignment or a bare call statement,
// both of which begin with a prefixexp.
func (p *parser) parseExprStmt() (Stmt, error) {
	first, err := p.parseSuffixedExpr()
	if err != nil {
		return nil, err
	}
	if p.atSymbol("=") || p.atSymbol(",") {
		vars := Punctuated[Expr]{Elems: []Elem[Expr]{{Value: first}}}
		for p.atSymbol(",") {
			sep := p.advance()
			vars.Elems[len(vars.Elems)-1].Sep = &sep
			v, err := p.parseSuffixedExpr()
			if err != nil {
				return nil, err
			}
			vars.Elems = append(vars.Elems, Elem[Expr]{Value: v})
		}
		eq, err := p.expectSymbol("=")
		if err != nil {
			return nil, err
		}
		exprs, err := p.parsePunctuatedExpr(func() bool { return false })
		if err != nil {
			return nil, err
		}
		return &Assignment{Vars: vars, Eq: eq, Exprs: exprs}, nil
	}

	suffixed, ok := first.(*Suffixed)
	if !ok || !suffixed.IsCall() {
		return nil, p.errorf("syntax error: expected statement")
	}
	return &CallStmt{Call: suffixed}, nil
}

func (p *parser) parseFuncTail() (*FuncParams, *TypeSpec, *Block, token.Token, error) {
	params, err := p.parseFuncParams()
	if err != nil {
		return nil, nil, nil, token.Token{}, err
	}
	var retType *TypeSpec
	if p.dialect.LuauTypes && p.atSymbol(":") {
		retType, err = p.parseTypeSpec(isFuncBodyStop)
		if err != nil {
			return nil, nil, nil, token.Token{}, err
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, nil, nil, token.Token{}, err
	}
	end, err := p.expectKeyword("end")
	if err != nil {
		return nil, nil, nil, token.Token{}, err
	}
	return params, retType, body, end, nil
}

func (p *parser) parseFuncParams() (*FuncParams, error) {
	lparen, err := p.expectSymbol("(")
	if err != nil {
		return nil, err
	}
	params := &FuncParams{LParen: lparen}
	for !p.atSymbol(")") {
		var name token.Token
		if p.atSymbol("...") {
			name = p.advance()
		} else {
			name, err = p.expectIdent()
			if err != nil {
				return nil, err
			}
		}
		param := &Param{Name: name}
		if p.dialect.LuauTypes && p.atSymbol(":") {
			ts, err := p.parseTypeSpec(isParamTypeStop)
			if err != nil {
				return nil, err
			}
			param.Type = ts
		}
		el := Elem[*Param]{Value: param}
		if p.atSymbol(",") {
			sep := p.advance()
			el.Sep = &sep
		}
		params.Names.Elems = append(params.Names.Elems, el)
		if el.Sep == nil {
			break
		}
	}
	rparen, err := p.expectSymbol(")")
	if err != nil {
		return nil, err
	}
	params.RParen = rparen
	return params, nil
}

// --- expressions ---

var binPrec = map[string][2]int{
	"or": {1, 1}, "and": {2, 2},
	"<": {3, 3}, ">": {3, 3}, "<=": {3, 3}, ">=": {3, 3}, "~=": {3, 3}, "==": {3, 3},
	"|": {4, 4}, "~": {5, 5}, "&": {6, 6},
	"<<": {7, 7}, ">>": {7, 7},
	"..": {9, 8},
	"+":  {10, 10}, "-": {10, 10},
	"*": {11, 11}, "/": {11, 11}, "//": {11, 11}, "%": {11, 11},
	"^": {14, 13},
}

const unaryPrec = 12

func (p *parser) isUnaryOp() bool {
	t := p.cur()
	if t.Kind == token.Keyword && t.Text == "not" {
		return true
	}
	return t.Kind == token.Symbol && (t.Text == "-" || t.Text == "#" || t.Text == "~")
}

func (p *parser) binOpText() (string, bool) {
	t := p.cur()
	if t.Kind == token.Keyword && (t.Text == "and" || t.Text == "or") {
		return t.Text, true
	}
	if t.Kind == token.Symbol {
		if _, ok := binPrec[t.Text]; ok {
			return t.Text, true
		}
	}
	return "", false
}

func (p *parser) parseExpr(limit int) (Expr, error) {
	var left Expr
	var err error
	if p.isUnaryOp() {
		opTok := p.advance()
		operand, err := p.parseExpr(unaryPrec)
		if err != nil {
			return nil, err
		}
		left = &UnOp{Op: opTok, Operand: operand}
	} else {
		left, err = p.parseSimpleExpr()
		if err != nil {
			return nil, err
		}
	}

	for {
		opText, ok := p.binOpText()
		if !ok {
			break
		}
		prec := binPrec[opText]
		if prec[0] <= limit {
			break
		}
		opTok := p.advance()
		right, err := p.parseExpr(prec[1])
		if err != nil {
			return nil, err
		}
		left = &BinOp{Left: left, Op: opTok, Right: right}
	}
	return left, nil
}

func (p *parser) parseSimpleExpr() (Expr, error) {
	switch {
	case p.atKeyword("nil"), p.atKeyword("true"), p.atKeyword("false"):
		return &Literal{Tok: p.advance()}, nil
	case p.atSymbol("..."):
		return &Literal{Tok: p.advance()}, nil
	case p.at(token.Number):
		return &Number{Tok: p.advance()}, nil
	case p.at(token.ShortString):
		return &String{Tok: p.advance()}, nil
	case p.at(token.LongString):
		return &String{Tok: p.advance(), LongForm: true}, nil
	case p.atSymbol("{"):
		return p.parseTableConstructor()
	case p.atKeyword("function"):
		return p.parseFunctionExpr()
	default:
		return p.parseSuffixedExpr()
	}
}

func (p *parser) parseFunctionExpr() (*FunctionExpr, error) {
	fnTok, err := p.expectKeyword("function")
	if err != nil {
		return nil, err
	}
	params, retType, body, end, err := p.parseFuncTail()
	if err != nil {
		return nil, err
	}
	return &FunctionExpr{Function: fnTok, Params: params, ReturnType: retType, Body: body, End: end}, nil
}

func (p *parser) parsePrimaryExpr() (Expr, error) {
	if p.atSymbol("(") {
		lparen := p.advance()
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		rparen, err := p.expectSymbol(")")
		if err != nil {
			return nil, err
		}
		return &Paren{LParen: lparen, Inner: inner, RParen: rparen}, nil
	}
	if p.at(token.Ident) {
		return &Ident{Tok: p.advance()}, nil
	}
	return nil, p.errorf("unexpected symbol near %q", p.cur().Text)
}

func (p *parser) parseSuffixedExpr() (Expr, error) {
	base, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}
	node := &Suffixed{Base: base}
	for {
		switch {
		case p.atSymbol("."):
			dot := p.advance()
			name, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			node.Suffixes = append(node.Suffixes, &DotIndex{Dot: dot, Name: name})
		case p.atSymbol("["):
			lb := p.advance()
			key, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			rb, err := p.expectSymbol("]")
			if err != nil {
				return nil, err
			}
			node.Suffixes = append(node.Suffixes, &BracketIndex{LBracket: lb, Key: key, RBracket: rb})
		case p.atSymbol(":"):
			colon := p.advance()
			name, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			node.Suffixes = append(node.Suffixes, &MethodCall{Colon: colon, Name: name, Args: args})
		case p.atSymbol("(") || p.atString() || p.atSymbol("{"):
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			node.Suffixes = append(node.Suffixes, &Call{Args: args})
		default:
			if len(node.Suffixes) == 0 {
				return node.Base, nil
			}
			return node, nil
		}
	}
}

func (p *parser) parseCallArgs() (CallArgs, error) {
	switch {
	case p.atSymbol("("):
		lparen := p.advance()
		var args Punctuated[Expr]
		if !p.atSymbol(")") {
			var err error
			args, err = p.parsePunctuatedExpr(func() bool { return false })
			if err != nil {
				return nil, err
			}
		}
		rparen, err := p.expectSymbol(")")
		if err != nil {
			return nil, err
		}
		return &ParenArgs{LParen: lparen, Args: args, RParen: rparen}, nil
	case p.at(token.ShortString):
		return &StringArgs{String: &String{Tok: p.advance()}}, nil
	case p.at(token.LongString):
		return &StringArgs{String: &String{Tok: p.advance(), LongForm: true}}, nil
	case p.atSymbol("{"):
		table, err := p.parseTableConstructor()
		if err != nil {
			return nil, err
		}
		return &TableArgs{Table: table}, nil
	default:
		return nil, p.errorf("function arguments expected near %q", p.cur().Text)
	}
}

func (p *parser) parseTableConstructor() (*TableConstructor, error) {
	lbrace, err := p.expectSymbol("{")
	if err != nil {
		return nil, err
	}
	tc := &TableConstructor{LBrace: lbrace}
	for !p.atSymbol("}") {
		field, err := p.parseTableField()
		if err != nil {
			return nil, err
		}
		el := Elem[*TableField]{Value: field}
		if p.atSymbol(",") || p.atSymbol(";") {
			sep := p.advance()
			el.Sep = &sep
		}
		tc.Fields.Elems = append(tc.Fields.Elems, el)
		if el.Sep == nil {
			break
		}
	}
	rbrace, err := p.expectSymbol("}")
	if err != nil {
		return nil, err
	}
	tc.RBrace = rbrace
	return tc, nil
}

func (p *parser) parseTableField() (*TableField, error) {
	if p.atSymbol("[") {
		lb := p.advance()
		key, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		rb, err := p.expectSymbol("]")
		if err != nil {
			return nil, err
		}
		eq, err := p.expectSymbol("=")
		if err != nil {
			return nil, err
		}
		value, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		return &TableField{LBracket: &lb, Key: key, RBracket: &rb, Eq: &eq, Value: value}, nil
	}
	if p.at(token.Ident) && p.peekIsAssignSymbol() {
		name := p.advance()
		eq := p.advance()
		value, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		return &TableField{Name: &name, Eq: &eq, Value: value}, nil
	}
	value, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	return &TableField{Value: value}, nil
}

// peekIsAssignSymbol reports whether the token after the current one is
// a bare "=" (as opposed to "==" which lexes as its own symbol, so no
// ambiguity actually arises, but this keeps the intent explicit at the
// call site).
func (p *parser) peekIsAssignSymbol() bool {
	if p.pos+1 >= len(p.toks) {
		return false
	}
	next := p.toks[p.pos+1]
	return next.Kind == token.Symbol && next.Text == "="
}

func (p *parser) parsePunctuatedExpr(stop func() bool) (Punctuated[Expr], error) {
	var list Punctuated[Expr]
	for {
		e, err := p.parseExpr(0)
		if err != nil {
			return list, err
		}
		el := Elem[Expr]{Value: e}
		if p.atSymbol(",") {
			sep := p.advance()
			el.Sep = &sep
		}
		list.Elems = append(list.Elems, el)
		if el.Sep == nil || stop() {
			break
		}
	}
	return list, nil
}

// --- Luau type annotations (simplified grammar; see DESIGN.md) ---

func (p *parser) parseTypeSpec(stop func(token.Token, int) bool) (*TypeSpec, error) {
	colon, err := p.expectSymbol(":")
	if err != nil {
		return nil, err
	}
	ts := &TypeSpec{Colon: colon}
	depth := 0
	for {
		t := p.cur()
		if t.Kind == token.EOF || stop(t, depth) {
			break
		}
		if t.Kind == token.Symbol && (t.Text == "(" || t.Text == "{") {
			depth++
		} else if t.Kind == token.Symbol && (t.Text == ")" || t.Text == "}") {
			if depth == 0 {
				break
			}
			depth--
		}
		ts.Type = append(ts.Type, p.advance())
	}
	return ts, nil
}

func isParamTypeStop(t token.Token, depth int) bool {
	return depth == 0 && t.Kind == token.Symbol && (t.Text == "," || t.Text == ")")
}

func isLocalTypeStop(t token.Token, depth int) bool {
	return depth == 0 && t.Kind == token.Symbol && (t.Text == "," || t.Text == "=")
}

func isForTypeStop(t token.Token, depth int) bool {
	if depth != 0 {
		return false
	}
	if t.Kind == token.Symbol && (t.Text == "," || t.Text == "=") {
		return true
	}
	return t.Kind == token.Keyword && (t.Text == "in" || t.Text == "do")
}

// isFuncBodyStop stops a return-type annotation at the first token that
// starts a new line. A function's return type has no terminating symbol
// of its own (the body just starts), unlike a parameter or local
// annotation which is always followed by "," or "=": the simplified
// grammar assumes the annotation stays on the signature's line.
func isFuncBodyStop(t token.Token, depth int) bool {
	if depth != 0 {
		return false
	}
	for _, tr := range t.Leading {
		if tr.Kind == trivia.Newline {
			return true
		}
	}
	return false
}
