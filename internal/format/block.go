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

import "github.com/lunafmt/lunafmt/internal/ast"

// writeBlock formats every statement of b in order at the given indent
// depth (spec.md C5). Each statement is terminated by exactly one
// newline (invariant 4); a trailing return or break, if present, is
// written last.
func (p *printer) writeBlock(b *ast.Block, depth int) {
	for _, s := range b.Stmts {
		p.writeStmt(s, depth)
	}
	if b.Last != nil {
		p.writeStmt(b.Last, depth)
	}
}
