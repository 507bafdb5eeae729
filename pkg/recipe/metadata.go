// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recipe

import (
	"strconv"
	"strings"
)

// Well-known metadata keys.
const (
	MetadataKeyTitle    = "title"
	MetadataKeySource   = "source"
	MetadataKeyServings = "servings"
	MetadataKeyTags     = "tags"
)

// Metadata holds the ">> key: value" entries of a recipe. Keys are
// free-form; a few well-known ones have typed accessors.
type Metadata map[string]string

// Get returns the raw value for a key.
func (m Metadata) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Title returns the recipe title, empty when not declared.
func (m Metadata) Title() string {
	return m[MetadataKeyTitle]
}

// Tags returns the comma-separated tags entry split and trimmed.
func (m Metadata) Tags() []string {
	raw, ok := m[MetadataKeyTags]
	if !ok {
		return nil
	}
	var out []string
	for _, tag := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(tag); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Servings returns the declared serving tiers, as in "2|4|8". Each
// tier is one position a multi-valued quantity can select. It returns
// nil when the entry is missing or any tier is not a positive integer.
func (m Metadata) Servings() []uint32 {
	raw, ok := m[MetadataKeyServings]
	if !ok {
		return nil
	}
	parts := strings.Split(raw, "|")
	out := make([]uint32, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil || n == 0 {
			return nil
		}
		out = append(out, uint32(n))
	}
	return out
}
