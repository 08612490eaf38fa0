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

// Package trace is the formatter's only "logging": a single env-gated
// switch the hanging engine uses to explain why it chose to hang (or not
// hang) a construct. The core is otherwise silent (spec.md §5).
package trace

import (
	"fmt"
	"os"
	"strings"
)

const (
	off int = iota
	minimal
	full
)

// mode is fixed at process startup from LUAFMT_DEBUG.
var mode = func() int {
	switch strings.ToLower(os.Getenv("LUAFMT_DEBUG")) {
	case "", "0", "off", "false":
		return off
	case "full":
		return full
	default:
		return minimal
	}
}()

// Enabled reports whether any tracing output should be produced.
func Enabled() bool { return mode != off }

// Full reports whether verbose tracing was requested.
func Full() bool { return mode == full }

// Hang prints a one-line explanation of a hanging decision to stderr
// when tracing is enabled. Calls are expected to be cheap to skip, so
// callers should guard expensive formatting with Enabled() rather than
// relying on this no-op-ing internally for anything beyond the print
// itself.
func Hang(format string, args ...any) {
	if mode == off {
		return
	}
	fmt.Fprintf(os.Stderr, "luafmt: hang: "+format+"\n", args...)
}
