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

// Command luafmt formats Lua source files (spec.md §6's CLI surface).
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/pflag"
	"golang.org/x/sync/semaphore"

	"github.com/lunafmt/lunafmt/internal/format"
	"github.com/lunafmt/lunafmt/internal/luaconfig"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

const (
	exitClean = 0
	exitDiff  = 1
	exitError = 2
)

func run(args []string) int {
	fs := pflag.NewFlagSet("luafmt", pflag.ContinueOnError)
	configPath := fs.String("config-path", "", "path to an explicit luafmt.toml")
	check := fs.Bool("check", false, "report formatting differences without writing files")
	rangeStart := fs.Int("range-start", -1, "byte offset where formatting begins (inclusive)")
	rangeEnd := fs.Int("range-end", -1, "byte offset where formatting ends (exclusive)")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}

	files, err := expandGlobs(fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "luafmt: no input files")
		return exitError
	}

	var rng *format.ByteRange
	if *rangeStart >= 0 || *rangeEnd >= 0 {
		rng = &format.ByteRange{Start: *rangeStart, End: *rangeEnd}
		if rng.End < 0 {
			rng.End = math.MaxInt
		}
	}

	par := runtime.GOMAXPROCS(-1)
	if cpus := runtime.NumCPU(); par > cpus {
		par = cpus
	}
	sem := semaphore.NewWeighted(int64(par))
	ctx := context.Background()

	results := make([]fileResult, len(files))
	for i, f := range files {
		i, f := i, f
		if err := sem.Acquire(ctx, 1); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitError
		}
		go func() {
			defer sem.Release(1)
			results[i] = formatOne(f, *configPath, *check, rng)
		}()
	}
	if err := sem.Acquire(ctx, int64(par)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}

	hadDiff := false
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintln(os.Stderr, r.err)
			return exitError
		}
		if r.diff != "" {
			fmt.Print(r.diff)
			hadDiff = true
		}
	}
	if hadDiff {
		return exitDiff
	}
	return exitClean
}

type fileResult struct {
	diff string
	err  error
}

func formatOne(path, configPath string, checkOnly bool, rng *format.ByteRange) fileResult {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileResult{err: err}
	}

	cfg, err := loadConfig(path, configPath)
	if err != nil {
		return fileResult{err: err}
	}

	out, err := format.Format(string(raw), path, cfg, rng)
	if err != nil {
		return fileResult{err: err}
	}

	if checkOnly {
		if out == string(raw) {
			return fileResult{}
		}
		diff, derr := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(raw)),
			B:        difflib.SplitLines(out),
			FromFile: path,
			ToFile:   path + " (formatted)",
			Context:  2,
		})
		if derr != nil {
			return fileResult{err: derr}
		}
		return fileResult{diff: diff}
	}

	if out == string(raw) {
		return fileResult{}
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fileResult{err: err}
	}
	return fileResult{}
}

func loadConfig(file, configPath string) (luaconfig.Config, error) {
	if configPath != "" {
		return luaconfig.LoadFromPath(configPath)
	}
	return luaconfig.Load(filepath.Dir(file))
}

// expandGlobs resolves each argument as a doublestar pattern rooted at
// the current directory, matching the teacher's own use of
// doublestar.Match for recursive file discovery.
func expandGlobs(patterns []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, pat := range patterns {
		if !strings.ContainsAny(pat, "*?[") {
			if !seen[pat] {
				seen[pat] = true
				out = append(out, pat)
			}
			continue
		}
		matches, err := doublestar.FilepathGlob(pat)
		if err != nil {
			return nil, fmt.Errorf("luafmt: bad pattern %q: %w", pat, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}
