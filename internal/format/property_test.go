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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/lunafmt/lunafmt/internal/ast"
	"github.com/lunafmt/lunafmt/internal/luaconfig"
	"github.com/lunafmt/lunafmt/internal/quote"
	"github.com/lunafmt/lunafmt/internal/token"
)

// propertySamples exercises a representative spread of statement and
// expression shapes for the two universal invariants every input must
// satisfy (spec.md §8): semantic equivalence under reparse, and
// idempotence.
var propertySamples = []string{
	"local x = 'hello'\n",
	"local a, b = 1, 2\n",
	"if a and b then\n\tlocal x = 1\nelseif c then\n\treturn\nelse\n\tbreak\nend\n",
	"while a < 10 do\n\ta = a + 1\nend\n",
	"repeat\n\tx = x - 1\nuntil x <= 0\n",
	"for i = 1, 10, 2 do\n\tprint(i)\nend\n",
	"for k, v in pairs(t) do\n\tprint(k, v)\nend\n",
	"function obj.method(self, a, b)\n\treturn a + b\nend\n",
	"local function f(a, b)\n\treturn a * b\nend\n",
	"local t = {\n\ta, -- note\n\tb = 2,\n\t[3] = 'x',\n}\n",
	"foo(alpha, beta, gamma)\n",
	"obj:method(1, 2)\n",
	"::top::\ngoto top\n",
	"local s = 'it\\'s fine'\n",
}

// tokenKey is a structural, trivia-free projection of a token: its kind
// plus its text, with short-string text canonicalized to one quote style
// so a legitimate quote-style rewrite never registers as a semantic
// difference between the two trees being compared.
type tokenKey struct {
	Kind token.Kind
	Text string
}

func tokenKeys(n ast.Node) []tokenKey {
	var out []tokenKey
	n.Walk(func(t token.Token) {
		text := t.Text
		if t.Kind == token.ShortString {
			text = quote.Normalize(text, quote.ForceDouble)
		}
		out = append(out, tokenKey{Kind: t.Kind, Text: text})
	})
	return out
}

// TestFormatIsSemanticallyEquivalentUnderReparse checks spec.md §8's
// first universal invariant: reparsing formatted output must yield the
// same token structure as the original, modulo trivia and quote style.
// go-cmp reports exactly where two token sequences first diverge, which
// a plain reflect.DeepEqual/assert.Equal on the slices would not.
func TestFormatIsSemanticallyEquivalentUnderReparse(t *testing.T) {
	cfg := luaconfig.Default()
	dialect := ast.Dialect{LuauTypes: cfg.LuauTypes, GotoLabels: cfg.GotoLabels}
	for _, src := range propertySamples {
		before, err := ast.Parse(src, "before.lua", dialect)
		require.NoError(t, err, src)

		out, err := Format(src, "t.lua", cfg, nil)
		require.NoError(t, err, src)

		after, err := ast.Parse(out, "after.lua", dialect)
		require.NoError(t, err, "reformatted output did not reparse:\n%s", out)

		if diff := cmp.Diff(tokenKeys(before), tokenKeys(after)); diff != "" {
			t.Errorf("token structure changed across format (-before +after):\n%s", diff)
		}
	}
}

// TestFormatIsIdempotent checks spec.md §8's second universal invariant:
// format(format(x)) == format(x).
func TestFormatIsIdempotent(t *testing.T) {
	cfg := luaconfig.Default()
	for _, src := range propertySamples {
		once, err := Format(src, "t.lua", cfg, nil)
		require.NoError(t, err, src)

		twice, err := Format(once, "t.lua", cfg, nil)
		require.NoError(t, err, once)

		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("format was not idempotent (-once +twice):\n%s", diff)
		}
	}
}
