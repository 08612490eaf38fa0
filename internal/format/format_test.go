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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunafmt/lunafmt/internal/luaconfig"
	"github.com/lunafmt/lunafmt/internal/source"
)

func TestFormatNormalizesQuotesToDouble(t *testing.T) {
	out, err := Format("local x = 'hello'\n", "t.lua", luaconfig.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, "local x = \"hello\"\n", out)
}

func TestFormatHangsConditionUnderNarrowColumnWidth(t *testing.T) {
	cfg := luaconfig.Default()
	cfg.IndentType = luaconfig.Spaces
	cfg.IndentWidth = 2
	cfg.ColumnWidth = 10

	out, err := Format("if a and b then\nlocal x = 1\nend\n", "t.lua", cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "if\n  a and b\nthen\n  local x = 1\nend\n", out)
}

func TestFormatPreservesLeadingCommentBeforeStatement(t *testing.T) {
	out, err := Format("-- keep me\nlocal x = 1\n", "t.lua", luaconfig.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, "-- keep me\nlocal x = 1\n", out)
}

func TestFormatPreservesTrailingCommentAfterStatement(t *testing.T) {
	out, err := Format("local x = 1 -- note\n", "t.lua", luaconfig.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, "local x = 1 -- note\n", out)
}

func TestFormatPreservesTrailingCommentOnEndLine(t *testing.T) {
	out, err := Format("do\nlocal x = 1\nend -- done\n", "t.lua", luaconfig.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, "do\n\tlocal x = 1\nend -- done\n", out)
}

// A comment attached to a table field is what forces the hung layout in
// the first place; it must survive onto the hung field's own line rather
// than vanish once the flat candidate is abandoned.
func TestFormatPreservesCommentInsideHungTable(t *testing.T) {
	out, err := Format("local t = {\n\ta -- note\n}\n", "t.lua", luaconfig.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, "local t = {\n\ta, -- note\n}\n", out)
}

func TestFormatByteRangeLeavesStatementsOutsideItVerbatim(t *testing.T) {
	src := "local a='1'\nlocal b = 'two'\n"
	rng := &ByteRange{Start: len("local a='1'\n"), End: len(src)}
	out, err := Format(src, "t.lua", luaconfig.Default(), rng)
	require.NoError(t, err)
	assert.Equal(t, "local a='1'\nlocal b = \"two\"\n", out)
}

func TestFormatIgnoreDirectiveKeepsOneStatementVerbatim(t *testing.T) {
	src := "-- stylua: ignore\nlocal x=1\nlocal y = 2\n"
	out, err := Format(src, "t.lua", luaconfig.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, "-- stylua: ignore\nlocal x=1\nlocal y = 2\n", out)
}

func TestFormatIgnoreStartEndKeepsRegionVerbatim(t *testing.T) {
	src := "-- stylua: ignore start\n" +
		"local a=1\n" +
		"local b=2\n" +
		"-- stylua: ignore end\n" +
		"local c = 3\n"
	out, err := Format(src, "t.lua", luaconfig.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, "-- stylua: ignore start\n"+
		"local a=1\n"+
		"local b=2\n"+
		"-- stylua: ignore end\n"+
		"local c = 3\n", out)
}

func TestFormatFunctionLiteralRendersAsBlock(t *testing.T) {
	out, err := Format("local f = function(a, b) return a + b end\n", "t.lua", luaconfig.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, "local f = function(a, b)\n\treturn a + b\nend\n", out)
}

func TestFormatCallHangsOneArgumentPerLine(t *testing.T) {
	cfg := luaconfig.Default()
	cfg.ColumnWidth = 10
	out, err := Format("f(alpha, beta)\n", "t.lua", cfg, nil)
	require.NoError(t, err)
	// Lua's explist has no trailing separator, unlike a table constructor's
	// field list: the last hung argument gets no comma.
	assert.Equal(t, "f(\n\talpha,\n\tbeta\n)\n", out)
}

func TestFormatRejectsMalformedSource(t *testing.T) {
	out, err := Format("local 1 = 2\n", "t.lua", luaconfig.Default(), nil)
	require.Error(t, err)
	assert.Empty(t, out)
	var perr *source.ParseError
	require.ErrorAs(t, err, &perr)
}
