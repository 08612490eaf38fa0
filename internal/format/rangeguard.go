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
	"strings"

	"github.com/lunafmt/lunafmt/internal/ast"
	"github.com/lunafmt/lunafmt/internal/token"
	"github.com/lunafmt/lunafmt/internal/trivia"
)

type ignoreDirective int

const (
	noDirective ignoreDirective = iota
	ignoreOne
	ignoreStart
	ignoreEnd
)

// directiveIn scans a statement's leading trivia for a line comment
// matching one of the three ignore directives (spec.md §4.9).
func directiveIn(leading []trivia.Trivia) ignoreDirective {
	for _, t := range leading {
		if !t.IsComment() {
			continue
		}
		body := strings.TrimSpace(strings.TrimPrefix(t.Text, "--"))
		switch body {
		case "stylua: ignore":
			return ignoreOne
		case "stylua: ignore start":
			return ignoreStart
		case "stylua: ignore end":
			return ignoreEnd
		}
	}
	return noDirective
}

// firstToken returns a statement's first token, which is where any
// ignore directive or plain leading comment for that statement lives.
func firstToken(s ast.Stmt) token.Token {
	var first token.Token
	seen := false
	s.Walk(func(tok token.Token) {
		if !seen {
			first = tok
			seen = true
		}
	})
	return first
}

