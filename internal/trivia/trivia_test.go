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

package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	tests := []struct {
		name    string
		depth   int
		useTabs bool
		width   int
		want    string
	}{
		{"zero depth is empty", 0, false, 4, ""},
		{"negative depth is empty", -1, false, 4, ""},
		{"spaces scale by width", 2, false, 2, "    "},
		{"tabs ignore width", 3, true, 4, "\t\t\t"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Indent(tc.depth, tc.useTabs, tc.width).Text)
		})
	}
}

func TestEditApply(t *testing.T) {
	existing := []Trivia{Space()}

	t.Run("keep leaves existing untouched", func(t *testing.T) {
		assert.Equal(t, existing, Keep().Apply(existing))
	})

	t.Run("append adds after existing", func(t *testing.T) {
		got := Append(NL("\n")).Apply(existing)
		assert.Equal(t, []Trivia{Space(), NL("\n")}, got)
	})

	t.Run("replace discards existing", func(t *testing.T) {
		got := Replace(NL("\n")).Apply(existing)
		assert.Equal(t, []Trivia{NL("\n")}, got)
	})

	t.Run("apply never mutates the input slice", func(t *testing.T) {
		before := append([]Trivia(nil), existing...)
		Append(NL("\n")).Apply(existing)
		assert.Equal(t, before, existing)
	})
}

func TestContainsComment(t *testing.T) {
	assert.False(t, ContainsComment([]Trivia{Space(), NL("\n")}))
	assert.True(t, ContainsComment([]Trivia{Space(), {Kind: LineComment, Text: "-- hi"}}))
}

func TestText(t *testing.T) {
	ts := []Trivia{Space(), {Kind: LineComment, Text: "-- hi"}, NL("\n")}
	assert.Equal(t, " -- hi\n", Text(ts))
}
