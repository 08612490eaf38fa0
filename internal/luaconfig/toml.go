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
	"fmt"
	"strconv"
	"strings"
)

// FromTOML decodes the five top-level scalar keys spec.md §6 names
// (column_width, line_endings, indent_type, indent_width, quote_style)
// out of a flat key = value document.
//
// This reads only what a configuration file for this tool ever needs:
// bare top-level scalars, no tables or arrays. A general TOML document
// model is not warranted for five fixed keys, so rather than reach for
// an unrelated library, this applies the same discipline a line-oriented
// TOML scanner would (strip comments and whitespace, split on the first
// unquoted '='), scaled down to this format's actual shape.
func FromTOML(data []byte) (Config, error) {
	cfg := Default()
	lines := strings.Split(string(data), "\n")
	for lineNo, raw := range lines {
		line := stripTOMLComment(raw)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Config{}, &ConfigError{Source: "toml", Msg: fmt.Sprintf("line %d: expected key = value", lineNo+1)}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if err := applyTOMLKey(&cfg, key, value); err != nil {
			return Config{}, &ConfigError{Source: "toml", Msg: fmt.Sprintf("line %d: %s", lineNo+1, err)}
		}
	}
	return cfg, nil
}

func stripTOMLComment(line string) string {
	inString := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inString = !inString
		case '#':
			if !inString {
				return line[:i]
			}
		}
	}
	return line
}

func applyTOMLKey(cfg *Config, key, value string) error {
	unquoted := unquoteTOMLString(value)
	switch key {
	case "column_width":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("column_width: %w", err)
		}
		cfg.ColumnWidth = n
	case "indent_width":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("indent_width: %w", err)
		}
		cfg.IndentWidth = n
	case "line_endings":
		switch unquoted {
		case "lf":
			cfg.LineEndings = LF
		case "crlf":
			cfg.LineEndings = CRLF
		default:
			return fmt.Errorf("line_endings: unknown value %q", unquoted)
		}
	case "indent_type":
		switch unquoted {
		case "tabs":
			cfg.IndentType = Tabs
		case "spaces":
			cfg.IndentType = Spaces
		default:
			return fmt.Errorf("indent_type: unknown value %q", unquoted)
		}
	case "quote_style":
		switch unquoted {
		case "auto_prefer_double":
			cfg.QuoteStyle = AutoPreferDouble
		case "auto_prefer_single":
			cfg.QuoteStyle = AutoPreferSingle
		case "force_double":
			cfg.QuoteStyle = ForceDouble
		case "force_single":
			cfg.QuoteStyle = ForceSingle
		default:
			return fmt.Errorf("quote_style: unknown value %q", unquoted)
		}
	default:
		// Unknown keys are ignored rather than rejected, so a config file
		// carrying extra fields outside this module's scope (e.g.
		// call-parentheses options) still loads cleanly.
	}
	return nil
}

func unquoteTOMLString(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
