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

package ast

import (
	"github.com/lunafmt/lunafmt/internal/source"
	"github.com/lunafmt/lunafmt/internal/token"
)

// Stmt is any statement node.
type Stmt interface {
	Node
	isStmt()
}

// Block is an ordered sequence of statements, optionally terminated by a
// return or break (spec.md §3). Last is nil for blocks with no final
// control-flow statement.
type Block struct {
	Stmts []Stmt
	Last  Stmt // *Return, *Break, or nil
}

func (b *Block) Span() source.Span {
	var first, last Node
	if len(b.Stmts) > 0 {
		first = b.Stmts[0]
	} else if b.Last != nil {
		first = b.Last
	}
	if b.Last != nil {
		last = b.Last
	} else if len(b.Stmts) > 0 {
		last = b.Stmts[len(b.Stmts)-1]
	}
	if first == nil || last == nil {
		return source.Span{}
	}
	return source.Span{File: first.Span().File, Start: first.Span().Start, End: last.Span().End}
}

func (b *Block) Walk(v func(token.Token)) {
	for _, s := range b.Stmts {
		s.Walk(v)
	}
	if b.Last != nil {
		b.Last.Walk(v)
	}
}
