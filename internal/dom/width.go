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

// Package dom measures the rendered column width of text, accounting for
// tabstops and multi-byte graphemes. It is a trimmed port of a
// Wadler-style document layout engine's width calculation, reused here
// by C6 (the width & hanging engine) instead of rebuilding a second
// general layout renderer: spec.md's hanging decision only needs the
// width calculation itself, since the formatter rewrites trivia
// directly rather than rendering from a document tree.
package dom

import (
	"strings"

	"github.com/rivo/uniseg"
)

// StringWidth calculates the rendered width of text if placed starting
// at the given column, treating each tab as advancing to the next
// tabstop boundary of tabWidth columns.
//
// If column is negative, tabs are given their maximum width (tabWidth
// columns flat); this is used when the caller does not yet know what
// column rendering will start at and must be conservative.
func StringWidth(text string, column, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	maxWidth := column < 0
	column = max(0, column)

	for i, part := range strings.Split(text, "\t") {
		if i > 0 {
			tab := tabWidth
			if !maxWidth {
				tab -= column % tabWidth
			}
			column += tab
		}
		column += uniseg.StringWidth(part)
	}
	return column
}
