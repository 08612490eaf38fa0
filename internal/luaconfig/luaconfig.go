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

// Package luaconfig holds the immutable formatting configuration (spec.md
// §3) and its two on-disk loader surfaces (spec.md §6).
package luaconfig

import "fmt"

// LineEndings selects the newline sequence written by the formatter.
type LineEndings int

const (
	LF LineEndings = iota
	CRLF
)

func (e LineEndings) String() string {
	if e == CRLF {
		return "crlf"
	}
	return "lf"
}

// Sequence returns the literal bytes this line ending writes.
func (e LineEndings) Sequence() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

// IndentType selects whether indentation is written as tabs or spaces.
type IndentType int

const (
	Tabs IndentType = iota
	Spaces
)

func (t IndentType) String() string {
	if t == Spaces {
		return "space"
	}
	return "tab"
}

// QuoteStyle selects how string literals are normalized (spec.md §4.8).
type QuoteStyle int

const (
	AutoPreferDouble QuoteStyle = iota
	AutoPreferSingle
	ForceDouble
	ForceSingle
)

// Config is the immutable record of formatting options (spec.md §3).
type Config struct {
	ColumnWidth int
	LineEndings LineEndings
	IndentType  IndentType
	IndentWidth int
	QuoteStyle  QuoteStyle

	// Dialect gates, carried alongside the base record since they are
	// likewise plain configuration rather than parser-discovered state
	// (spec.md §9, SUPPLEMENTED FEATURES).
	LuauTypes  bool
	GotoLabels bool
}

// Default returns the configuration spec.md §3 specifies when nothing
// else is supplied.
func Default() Config {
	return Config{
		ColumnWidth: 120,
		LineEndings: LF,
		IndentType:  Tabs,
		IndentWidth: 4,
		QuoteStyle:  AutoPreferDouble,
		GotoLabels:  true,
	}
}

// ConfigError reports that a configuration source was malformed. It is
// one of the three error kinds spec.md §7 enumerates; the core never
// constructs one — only the loaders in this package do.
type ConfigError struct {
	Source string // "toml" or "editorconfig"
	Msg    string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("error: config file not in correct format (%s): %s", e.Source, e.Msg)
}
