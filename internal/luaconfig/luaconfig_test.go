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

package luaconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTOML(t *testing.T) {
	data := []byte(`
# a leading comment
column_width = 100
line_endings = "crlf"
indent_type = "spaces"
indent_width = 2
quote_style = "force_single" # trailing comment
`)
	cfg, err := FromTOML(data)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.ColumnWidth)
	assert.Equal(t, CRLF, cfg.LineEndings)
	assert.Equal(t, Spaces, cfg.IndentType)
	assert.Equal(t, 2, cfg.IndentWidth)
	assert.Equal(t, ForceSingle, cfg.QuoteStyle)
}

func TestFromTOMLDefaults(t *testing.T) {
	cfg, err := FromTOML([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromTOMLUnknownKeysIgnored(t *testing.T) {
	cfg, err := FromTOML([]byte("call_parentheses = \"always\"\ncolumn_width = 80\n"))
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.ColumnWidth)
}

func TestFromTOMLMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing equals", "column_width 80"},
		{"bad integer", "column_width = nope"},
		{"unknown enum value", "quote_style = \"force_loud\""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromTOML([]byte(tc.data))
			require.Error(t, err)
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, "toml", cerr.Source)
		})
	}
}

func TestFromEditorConfig(t *testing.T) {
	data := []byte(`
[*]
end_of_line = lf
indent_style = tab

[*.lua]
indent_style = space
indent_size = 2
`)
	cfg, err := FromEditorConfig(data)
	require.NoError(t, err)
	assert.Equal(t, LF, cfg.LineEndings)
	assert.Equal(t, Spaces, cfg.IndentType, "the [*.lua] section overrides the catch-all [*] section")
	assert.Equal(t, 2, cfg.IndentWidth)
}

func TestFromEditorConfigNoMatchingSection(t *testing.T) {
	cfg, err := FromEditorConfig([]byte("[*.py]\nindent_size = 8\n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromEditorConfigMalformed(t *testing.T) {
	_, err := FromEditorConfig([]byte("[*]\nend_of_line = weird\n"))
	require.Error(t, err)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "editorconfig", cerr.Source)
}
