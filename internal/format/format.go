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
	"github.com/lunafmt/lunafmt/internal/ast"
	"github.com/lunafmt/lunafmt/internal/luaconfig"
	"github.com/lunafmt/lunafmt/internal/source"
)

// Format is the programmatic entry point (spec.md §6): it parses src,
// rewrites it to canonical form under cfg, and returns the result. rng,
// if non-nil, restricts rewriting to statements overlapping that byte
// range; statements wholly outside it are reproduced from their original
// source text, except that their first line gets the canonical indent and
// blank lines before them are not kept.
//
// A malformed input surfaces as a *source.ParseError. A violated parser
// contract surfaces as a *source.InternalInvariant, recovered here at
// the single point the core ever panics (spec.md §7).
func Format(src, file string, cfg luaconfig.Config, rng *ByteRange) (out string, err error) {
	dialect := ast.Dialect{LuauTypes: cfg.LuauTypes, GotoLabels: cfg.GotoLabels}
	f, perr := ast.Parse(src, file, dialect)
	if perr != nil {
		return "", perr
	}

	defer func() {
		if r := recover(); r != nil {
			if inv, ok := r.(*source.InternalInvariant); ok {
				err = inv
				return
			}
			panic(r)
		}
	}()

	p := newPrinter(cfg, src, rng)
	p.writeBlock(f.Body, 0)
	return p.buf.String(), nil
}
