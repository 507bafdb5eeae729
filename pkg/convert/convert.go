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

package convert

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/cooklang/pkg/errors"
)

//go:embed units.yaml
var bundledUnits []byte

// Unit is one entry of the conversion table. The first name is the
// canonical spelling used in converted output, the rest are accepted
// aliases. Ratio expresses the unit in the dimension's base unit.
type Unit struct {
	Names  []string `yaml:"names" json:"names"`
	System string   `yaml:"system,omitempty" json:"system,omitempty"`
	Ratio  float64  `yaml:"ratio" json:"ratio"`
}

// Canonical returns the preferred spelling of the unit.
func (u *Unit) Canonical() string {
	if len(u.Names) == 0 {
		return ""
	}
	return u.Names[0]
}

// Dimension groups the units of one physical quantity.
type Dimension struct {
	Name  string  `yaml:"name" json:"name"`
	Units []*Unit `yaml:"units" json:"units"`
}

// Table is the on-disk shape of a conversion table.
type Table struct {
	Dimensions []*Dimension `yaml:"dimensions" json:"dimensions"`
}

type unitEntry struct {
	dimension *Dimension
	unit      *Unit
}

// Converter resolves unit names and converts amounts between units of
// the same dimension. Lookups ignore case. The converter is immutable
// after construction and safe for concurrent use.
type Converter struct {
	dimensions []*Dimension
	index      map[string]unitEntry
	fold       cases.Caser
}

// Load reads a YAML conversion table. It fails on duplicate unit names
// across the whole table and on non-positive ratios.
func Load(r io.Reader) (*Converter, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, "failed to read units table", err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, "failed to parse units table", err)
	}
	return New(table.Dimensions)
}

// New builds a converter from already decoded dimensions. It fails on
// duplicate unit names across the whole table and on non-positive
// ratios.
func New(dimensions []*Dimension) (*Converter, error) {
	c := &Converter{
		dimensions: dimensions,
		index:      make(map[string]unitEntry),
		fold:       cases.Fold(),
	}
	for _, dim := range dimensions {
		for _, unit := range dim.Units {
			if len(unit.Names) == 0 {
				return nil, errors.NewWithContext(errors.ErrCodeInvalidInput,
					"unit without names", map[string]any{"dimension": dim.Name})
			}
			if unit.Ratio <= 0 {
				return nil, errors.NewWithContext(errors.ErrCodeInvalidInput,
					"unit ratio must be positive",
					map[string]any{"unit": unit.Names[0], "ratio": unit.Ratio})
			}
			for _, name := range unit.Names {
				key := c.fold.String(name)
				if _, dup := c.index[key]; dup {
					return nil, errors.NewWithContext(errors.ErrCodeInvalidInput,
						"duplicate unit name", map[string]any{"unit": name})
				}
				c.index[key] = unitEntry{dimension: dim, unit: unit}
			}
		}
	}
	return c, nil
}

var (
	bundledOnce sync.Once
	bundled     *Converter
)

// Bundled returns the converter built from the embedded units table.
func Bundled() *Converter {
	bundledOnce.Do(func() {
		c, err := Load(bytes.NewReader(bundledUnits))
		if err != nil {
			panic(fmt.Sprintf("embedded units table is invalid: %v", err))
		}
		bundled = c
	})
	return bundled
}

// lookup resolves a unit name, ignoring case.
func (c *Converter) lookup(name string) (unitEntry, bool) {
	e, ok := c.index[c.fold.String(name)]
	return e, ok
}

// Known reports whether the unit name is in the table.
func (c *Converter) Known(name string) bool {
	_, ok := c.lookup(name)
	return ok
}

// Compatible reports whether two units measure the same physical
// dimension. Unknown units are compatible with nothing.
func (c *Converter) Compatible(from, to string) bool {
	f, okF := c.lookup(from)
	t, okT := c.lookup(to)
	return okF && okT && f.dimension == t.dimension
}

// Convert converts an amount between two compatible units.
func (c *Converter) Convert(value float64, from, to string) (float64, error) {
	f, ok := c.lookup(from)
	if !ok {
		return 0, errors.NewWithContext(errors.ErrCodeUnknownUnit,
			"unknown unit", map[string]any{"unit": from})
	}
	t, ok := c.lookup(to)
	if !ok {
		return 0, errors.NewWithContext(errors.ErrCodeUnknownUnit,
			"unknown unit", map[string]any{"unit": to})
	}
	if f.dimension != t.dimension {
		return 0, errors.NewWithContext(errors.ErrCodeIncompatibleUnits,
			"units measure different dimensions",
			map[string]any{"unit": from, "other": to})
	}
	return value * f.unit.Ratio / t.unit.Ratio, nil
}

// BestUnit returns the unit that renders the amount most readably: the
// one producing the smallest converted value of at least one, falling
// back to the largest value below one. Only units of the source's
// measurement system are considered, so metric input never fits to an
// imperial unit. ok is false when the unit is unknown.
func (c *Converter) BestUnit(value float64, unit string) (string, bool) {
	src, ok := c.lookup(unit)
	if !ok {
		return "", false
	}

	base := value * src.unit.Ratio
	best := src.unit
	bestVal := value
	for _, cand := range src.dimension.Units {
		if cand.System != src.unit.System {
			continue
		}
		v := base / cand.Ratio
		if better(v, bestVal) {
			best, bestVal = cand, v
		}
	}
	return best.Canonical(), true
}

// better prefers the smallest value of at least one, then the largest
// value below one.
func better(v, current float64) bool {
	if current >= 1 {
		return v >= 1 && v < current
	}
	return v >= 1 || v > current
}

// IsTimeUnit reports whether the unit belongs to the time dimension.
func (c *Converter) IsTimeUnit(name string) bool {
	e, ok := c.lookup(name)
	return ok && e.dimension.Name == "time"
}

// Dimensions returns the conversion table grouped by dimension, sorted
// by dimension name. The returned slices must not be mutated.
func (c *Converter) Dimensions() []*Dimension {
	out := make([]*Dimension, len(c.dimensions))
	copy(out, c.dimensions)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
