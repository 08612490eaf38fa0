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

import "github.com/lunafmt/lunafmt/internal/source"

// indentRanges is the set of byte ranges that receive one extra indent
// level, registered by the hanging engine and by the multi-line
// condition layout. Containment is inclusive on both ends. Ranges are not
// kept disjoint: a hung expression written inside another hung construct
// (a chain inside a hung condition, an argument inside a hung call)
// registers a range inside the outer one.
type indentRanges struct {
	ranges []source.Span
}

// add registers a new range. Ranges are not deduplicated or merged since
// the engine that registers them only ever does so once per scope and
// never revisits a scope already hung (the bounded-work guarantee).
func (r *indentRanges) add(span source.Span) {
	r.ranges = append(r.ranges, span)
}

// extraAt returns how many registered ranges contain offset. Where
// ranges nest, an offset inside both counts once for each.
func (r *indentRanges) extraAt(offset int) int {
	n := 0
	for _, s := range r.ranges {
		if s.Contains(offset) {
			n++
		}
	}
	return n
}
