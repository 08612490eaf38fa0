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

// Package quote implements C8, the quote-style normalizer for Lua short
// string literals.
package quote

import "strings"

// Style is the configured quote preference (spec.md §3, Config.quote_style).
type Style int

const (
	AutoPreferDouble Style = iota
	AutoPreferSingle
	ForceDouble
	ForceSingle
)

// Normalize rewrites a short-quoted string literal's text (including its
// surrounding quote characters) to the canonical quote character chosen
// by style. Long-bracket strings (`[[...]]` and its `=`-padded variants)
// must not be passed to this function; it is only defined for
// short-quote syntax.
func Normalize(raw string, style Style) string {
	if len(raw) < 2 {
		return raw
	}
	content := raw[1 : len(raw)-1]
	decoded := unescapeQuotes(content)

	hasSingle := strings.ContainsRune(decoded, '\'')
	hasDouble := strings.ContainsRune(decoded, '"')

	var chosen byte
	switch style {
	case ForceDouble:
		chosen = '"'
	case ForceSingle:
		chosen = '\''
	case AutoPreferSingle:
		if hasSingle && !hasDouble {
			chosen = '"'
		} else {
			chosen = '\''
		}
	case AutoPreferDouble:
		fallthrough
	default:
		if hasDouble && !hasSingle {
			chosen = '\''
		} else {
			chosen = '"'
		}
	}

	return string(chosen) + escapeQuote(decoded, chosen) + string(chosen)
}

// unescapeQuotes un-escapes \' and \" within content, leaving every other
// escape sequence (\n, \t, \\, \xNN, ...) untouched so re-escaping does
// not double-process them.
func unescapeQuotes(content string) string {
	var b strings.Builder
	b.Grow(len(content))
	for i := 0; i < len(content); i++ {
		if content[i] == '\\' && i+1 < len(content) {
			next := content[i+1]
			if next == '\'' || next == '"' {
				b.WriteByte(next)
				i++
				continue
			}
			b.WriteByte(content[i])
			b.WriteByte(next)
			i++
			continue
		}
		b.WriteByte(content[i])
	}
	return b.String()
}

// escapeQuote re-escapes only the chosen quote character within decoded
// content, leaving all other characters (including the non-chosen quote,
// now unescaped per unescapeQuotes) as-is.
func escapeQuote(decoded string, chosen byte) string {
	var b strings.Builder
	b.Grow(len(decoded))
	for i := 0; i < len(decoded); i++ {
		c := decoded[i]
		if c == '\\' && i+1 < len(decoded) {
			b.WriteByte(c)
			b.WriteByte(decoded[i+1])
			i++
			continue
		}
		if c == chosen {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
