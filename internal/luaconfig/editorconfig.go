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

	"gopkg.in/ini.v1"
)

// FromEditorConfig decodes the "[*]" or "[*.lua]" section of an
// .editorconfig file per spec.md §6: end_of_line (lf|crlf), indent_style
// (tab|space), indent_size (integer). Keys absent from the section leave
// the corresponding Default() field untouched.
func FromEditorConfig(data []byte) (Config, error) {
	cfg := Default()

	file, err := ini.LoadSources(ini.LoadOptions{AllowBooleanKeys: true}, data)
	if err != nil {
		return Config{}, &ConfigError{Source: "editorconfig", Msg: err.Error()}
	}

	section := pickLuaSection(file)
	if section == nil {
		return cfg, nil
	}

	if key := section.Key("end_of_line"); key.String() != "" {
		switch key.String() {
		case "lf":
			cfg.LineEndings = LF
		case "crlf":
			cfg.LineEndings = CRLF
		default:
			return Config{}, &ConfigError{Source: "editorconfig", Msg: fmt.Sprintf("end_of_line: unknown value %q", key.String())}
		}
	}
	if key := section.Key("indent_style"); key.String() != "" {
		switch key.String() {
		case "tab":
			cfg.IndentType = Tabs
		case "space":
			cfg.IndentType = Spaces
		default:
			return Config{}, &ConfigError{Source: "editorconfig", Msg: fmt.Sprintf("indent_style: unknown value %q", key.String())}
		}
	}
	if key := section.Key("indent_size"); key.String() != "" {
		n, err := strconv.Atoi(key.String())
		if err != nil {
			return Config{}, &ConfigError{Source: "editorconfig", Msg: fmt.Sprintf("indent_size: %s", err)}
		}
		cfg.IndentWidth = n
	}

	return cfg, nil
}

// pickLuaSection prefers an exact "[*.lua]" section over the catch-all
// "[*]" section, matching the precedence a real editorconfig consumer
// would give the more specific glob.
func pickLuaSection(file *ini.File) *ini.Section {
	if s, err := file.GetSection("*.lua"); err == nil {
		return s
	}
	if s, err := file.GetSection("*"); err == nil {
		return s
	}
	return nil
}
