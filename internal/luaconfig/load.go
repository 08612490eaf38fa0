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

package luaconfig

import (
	"os"
	"path/filepath"
)

// Load resolves configuration starting from dir: luafmt.toml first, then
// .editorconfig, then Default(). Only dir itself is checked, not its
// ancestors; the CLI calls Load with each input file's own directory.
func Load(dir string) (Config, error) {
	if data, err := os.ReadFile(filepath.Join(dir, "luafmt.toml")); err == nil {
		return FromTOML(data)
	}
	if data, err := os.ReadFile(filepath.Join(dir, ".editorconfig")); err == nil {
		return FromEditorConfig(data)
	}
	return Default(), nil
}

// LoadFromPath reads an explicit config file path. Unlike Load, a read
// failure here is always an error — the caller named this file
// specifically, so silently falling back to defaults would hide a typo.
func LoadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return FromTOML(data)
}
