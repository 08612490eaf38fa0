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

package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		style Style
		want  string
	}{
		{"double stays double", `"hello"`, AutoPreferDouble, `"hello"`},
		{"single becomes double", `'hello'`, AutoPreferDouble, `"hello"`},
		{"double with double content keeps single", `'say "hi"'`, AutoPreferDouble, `'say "hi"'`},
		{"escaped single content flips to double under prefer-single", `'it\'s'`, AutoPreferSingle, `"it's"`},
		{"force double always wins", `'abc'`, ForceDouble, `"abc"`},
		{"force single always wins", `"abc"`, ForceSingle, `'abc'`},
		{"both quotes present prefers double under prefer-double", `'it\'s "ok"'`, AutoPreferDouble, `"it's \"ok\""`},
		{"both quotes present prefers single under prefer-single", `"it's \"ok\""`, AutoPreferSingle, `'it\'s "ok"'`},
		{"escapes unrelated to quotes survive", `"a\nb\tc"`, AutoPreferSingle, `'a\nb\tc'`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.raw, tc.style))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := `'mixed \'quotes\' and "others"'`
	once := Normalize(raw, AutoPreferDouble)
	twice := Normalize(once, AutoPreferDouble)
	assert.Equal(t, once, twice)
}
