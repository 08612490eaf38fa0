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

import "github.com/lunafmt/lunafmt/internal/token"

// Elem is one element of a [Punctuated] sequence, paired with the
// separator token that follows it (nil for the last element when the
// sequence has no trailing separator).
type Elem[T any] struct {
	Value T
	Sep   *token.Token
}

// Punctuated is an ordered sequence of elements separated by separator
// tokens (spec.md §3): element count equals separator count, or
// separator count plus one.
type Punctuated[T any] struct {
	Elems []Elem[T]
}

// Len returns the number of elements.
func (p Punctuated[T]) Len() int { return len(p.Elems) }

// HasTrailingSep reports whether the last element carries a separator.
func (p Punctuated[T]) HasTrailingSep() bool {
	if len(p.Elems) == 0 {
		return false
	}
	return p.Elems[len(p.Elems)-1].Sep != nil
}

// Values returns just the element values, discarding separators.
func (p Punctuated[T]) Values() []T {
	out := make([]T, len(p.Elems))
	for i, e := range p.Elems {
		out[i] = e.Value
	}
	return out
}

// WalkPunctuated walks every element and separator of p in source order,
// using walkValue to walk each element's own tokens.
func WalkPunctuated[T any](p Punctuated[T], walkValue func(T, func(token.Token)), visit func(token.Token)) {
	for _, e := range p.Elems {
		walkValue(e.Value, visit)
		if e.Sep != nil {
			visit(*e.Sep)
		}
	}
}
