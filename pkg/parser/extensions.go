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

package parser

import (
	"strings"

	"github.com/NVIDIA/cooklang/pkg/errors"
)

// Extensions is a bitset of optional grammar features. A disabled
// extension makes its grammar branch behave as if absent, usually
// falling back to a looser text interpretation.
type Extensions uint32

const (
	// ExtAdvancedUnits accepts "100 ml" inside braces, with the unit
	// recognized after trailing whitespace instead of a '%' separator.
	ExtAdvancedUnits Extensions = 1 << iota
	// ExtRangeValues accepts "100-200" range values.
	ExtRangeValues
	// ExtIntermediatePreparations accepts ingredient references to
	// prior steps and sections, as in "@&(~1)water{}".
	ExtIntermediatePreparations
	// ExtTimerRequiresTime rejects timers without a time quantity.
	ExtTimerRequiresTime
)

// AllExtensions returns the set with every extension enabled.
func AllExtensions() Extensions {
	return ExtAdvancedUnits | ExtRangeValues | ExtIntermediatePreparations | ExtTimerRequiresTime
}

// Has reports whether all the given extension bits are set.
func (e Extensions) Has(flags Extensions) bool {
	return e&flags == flags
}

var extensionNames = map[string]Extensions{
	"advanced-units":            ExtAdvancedUnits,
	"range-values":              ExtRangeValues,
	"intermediate-preparations": ExtIntermediatePreparations,
	"timer-requires-time":       ExtTimerRequiresTime,
}

// ExtensionNames returns the accepted names for ParseExtensions, in no
// particular order, excluding the "all" and "none" aggregates.
func ExtensionNames() []string {
	out := make([]string, 0, len(extensionNames))
	for name := range extensionNames {
		out = append(out, name)
	}
	return out
}

// ParseExtensions resolves a list of extension names into a set. The
// names "all" and "none" select or clear every extension; individual
// names accumulate on top of the last aggregate seen.
func ParseExtensions(names []string) (Extensions, error) {
	var out Extensions
	for _, name := range names {
		switch n := strings.ToLower(strings.TrimSpace(name)); n {
		case "all":
			out = AllExtensions()
		case "none":
			out = 0
		default:
			ext, ok := extensionNames[n]
			if !ok {
				return 0, errors.NewWithContext(errors.ErrCodeInvalidInput,
					"unknown extension", map[string]any{"extension": name})
			}
			out |= ext
		}
	}
	return out, nil
}
