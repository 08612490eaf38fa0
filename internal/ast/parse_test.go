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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string, dialect Dialect) *File {
	t.Helper()
	f, err := Parse(src, "test.lua", dialect)
	require.NoError(t, err)
	return f
}

func TestParseEmptyChunk(t *testing.T) {
	f := parseOK(t, "", Dialect{})
	assert.Empty(t, f.Body.Stmts)
	assert.Nil(t, f.Body.Last)
}

func TestParseStraySemicolonsFoldIntoNextLeadingTrivia(t *testing.T) {
	// The comment after the stray ";;" must survive attached to the
	// following statement rather than being dropped (spec.md invariant 1).
	f := parseOK(t, "local x = 1;; -- trailing note\nlocal y = 2\n", Dialect{})
	require.Len(t, f.Body.Stmts, 2)
	second, ok := f.Body.Stmts[1].(*LocalAssign)
	require.True(t, ok)
	assert.True(t, ContainsInlineComments(second), "the hoisted comment must still be attached somewhere in the tree")
}

func TestParseTrailingSemicolonAtEndOfBlock(t *testing.T) {
	f := parseOK(t, "local x = 1;\n", Dialect{})
	require.Len(t, f.Body.Stmts, 1)
}

func TestParseReturnAndBreakTerminateBlock(t *testing.T) {
	f := parseOK(t, "do return 1, 2 end\n", Dialect{})
	require.Len(t, f.Body.Stmts, 1)
	doStmt := f.Body.Stmts[0].(*Do)
	ret, ok := doStmt.Body.Last.(*Return)
	require.True(t, ok)
	assert.Len(t, ret.Exprs.Elems, 2)

	f = parseOK(t, "while true do break end\n", Dialect{})
	w := f.Body.Stmts[0].(*While)
	_, ok = w.Body.Last.(*Break)
	assert.True(t, ok)
}

func TestParseLuauTypesRoundTripThroughStripTrivia(t *testing.T) {
	dialect := Dialect{LuauTypes: true}
	f := parseOK(t, "local x: number = 1\n", dialect)
	local := f.Body.Stmts[0].(*LocalAssign)
	require.NotNil(t, local.Names.Elems[0].Value.Type)
	assert.Equal(t, "localx:number=1", StripTrivia(f.Body.Stmts[0]), "StripTrivia concatenates bare token text with no inserted spacing")
}

func TestParseLuauTypesRejectedWithoutDialect(t *testing.T) {
	_, err := Parse("local x: number = 1\n", "test.lua", Dialect{})
	assert.Error(t, err, "a type annotation must be rejected by the parser when the dialect is off")
}

func TestParseFunctionParamType(t *testing.T) {
	dialect := Dialect{LuauTypes: true}
	f := parseOK(t, "local function f(a: number, b: string): boolean\nend\n", dialect)
	fn := f.Body.Stmts[0].(*LocalFunction)
	require.Len(t, fn.Params.Names.Elems, 2)
	assert.NotNil(t, fn.Params.Names.Elems[0].Value.Type)
	assert.NotNil(t, fn.Params.Names.Elems[1].Value.Type)
	require.NotNil(t, fn.ReturnType)
	require.Len(t, fn.ReturnType.Type, 1, "the return-type annotation must capture its token, not stop immediately at the colon")
	assert.Equal(t, "boolean", fn.ReturnType.Type[0].Text)
}

func TestParseGotoLabelRequiresDialect(t *testing.T) {
	src := "::top::\ngoto top\n"
	_, err := Parse(src, "test.lua", Dialect{GotoLabels: false})
	assert.Error(t, err, "goto and ::label:: must both be rejected when GotoLabels is off")

	f := parseOK(t, src, Dialect{GotoLabels: true})
	require.Len(t, f.Body.Stmts, 2)
	_, isLabel := f.Body.Stmts[0].(*Label)
	assert.True(t, isLabel)
	_, isGoto := f.Body.Stmts[1].(*Goto)
	assert.True(t, isGoto)
}

func TestParseBinaryOperatorPrecedence(t *testing.T) {
	f := parseOK(t, "local x = 1 + 2 * 3\n", Dialect{})
	local := f.Body.Stmts[0].(*LocalAssign)
	top := local.Exprs.Elems[0].Value.(*BinOp)
	assert.Equal(t, "+", top.Op.Text)
	right, ok := top.Right.(*BinOp)
	require.True(t, ok, "* must bind tighter than + and nest on the right")
	assert.Equal(t, "*", right.Op.Text)
}

func TestParseConcatRightAssociative(t *testing.T) {
	f := parseOK(t, "local x = a .. b .. c\n", Dialect{})
	local := f.Body.Stmts[0].(*LocalAssign)
	top := local.Exprs.Elems[0].Value.(*BinOp)
	_, leftIsIdent := top.Left.(*Ident)
	assert.True(t, leftIsIdent, "'..' is right-associative: the left child is the leaf, not a nested BinOp")
	_, rightIsBinOp := top.Right.(*BinOp)
	assert.True(t, rightIsBinOp)
}

func TestParseCallStatementVsAssignment(t *testing.T) {
	f := parseOK(t, "foo()\n", Dialect{})
	_, ok := f.Body.Stmts[0].(*CallStmt)
	assert.True(t, ok)

	f = parseOK(t, "foo, bar = 1, 2\n", Dialect{})
	_, ok = f.Body.Stmts[0].(*Assignment)
	assert.True(t, ok)
}

func TestParseSyntaxErrorHasPosition(t *testing.T) {
	_, err := Parse("local x = \n", "bad.lua", Dialect{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.lua")
}
