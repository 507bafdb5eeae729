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
	"fmt"

	"github.com/NVIDIA/cooklang/pkg/quantity"
)

// Recipe is a parsed recipe document. Components referenced from step
// items live in flat vectors addressed by index, so the document has no
// nested ownership and no pointer cycles and can be copied or shared
// across goroutines freely.
//
// The value kind V records at the type level whether the recipe has
// been scaled: a ScalableRecipe may still hold multi-valued or
// auto-scaling quantities, a ScaledRecipe holds only concrete values.
type Recipe[V any] struct {
	Metadata         Metadata               `json:"metadata" yaml:"metadata"`
	Sections         []Section              `json:"sections" yaml:"sections"`
	Ingredients      []Ingredient[V]        `json:"ingredients" yaml:"ingredients"`
	Cookware         []Cookware[V]          `json:"cookware" yaml:"cookware"`
	Timers           []Timer[V]             `json:"timers" yaml:"timers"`
	InlineQuantities []quantity.Quantity[V] `json:"inlineQuantities" yaml:"inlineQuantities"`
}

// ScalableRecipe is a parsed recipe whose quantities may still need a
// scale target to resolve to concrete values.
type ScalableRecipe = Recipe[quantity.ScalableValue]

// ScaledRecipe is a recipe whose quantities are all concrete. Only
// scaled recipes can be aggregated or unit-converted.
type ScaledRecipe = Recipe[quantity.Value]

// Section is a named slice of the recipe. Recipes without explicit
// section markers hold a single unnamed section.
type Section struct {
	Name    string    `json:"name,omitempty" yaml:"name,omitempty"`
	Content []Content `json:"content" yaml:"content"`
}

// IsEmpty reports whether the section has neither a name nor content.
func (s *Section) IsEmpty() bool {
	return s.Name == "" && len(s.Content) == 0
}

// Content is a closed union of the block kinds a section can hold:
// Step or Text.
type Content interface {
	isContent()
}

// Step is one instruction line, an ordered list of items. Number is
// 1-based and increases per section counting steps only, so a text
// paragraph between two steps does not consume a number.
type Step struct {
	Items  []Item `json:"items" yaml:"items"`
	Number uint32 `json:"number" yaml:"number"`
}

// Text is a plain paragraph that is not parsed as an instruction.
type Text string

func (Step) isContent() {}
func (Text) isContent() {}

// AsStep returns the step payload when the content is a step.
func AsStep(c Content) (Step, bool) {
	s, ok := c.(Step)
	return s, ok
}

// AsText returns the paragraph text when the content is plain text.
func AsText(c Content) (string, bool) {
	t, ok := c.(Text)
	return string(t), ok
}

// MustStep returns the step payload or panics. Use it only where the
// surrounding logic guarantees the content kind; a panic here is a
// programming defect, not an input error.
func MustStep(c Content) Step {
	s, ok := c.(Step)
	if !ok {
		panic(fmt.Sprintf("content is %T, not a step", c))
	}
	return s
}

// Item is a closed union of the parts a step is made of. Component
// items address the recipe's flat vectors by index; the parser
// guarantees every index is in range for its collection.
type Item interface {
	isItem()
}

// TextItem is literal step text between components.
type TextItem struct {
	Value string `json:"value" yaml:"value"`
}

// IngredientItem references Recipe.Ingredients by index.
type IngredientItem struct {
	Index int `json:"index" yaml:"index"`
}

// CookwareItem references Recipe.Cookware by index.
type CookwareItem struct {
	Index int `json:"index" yaml:"index"`
}

// TimerItem references Recipe.Timers by index.
type TimerItem struct {
	Index int `json:"index" yaml:"index"`
}

// InlineQuantityItem references Recipe.InlineQuantities by index.
type InlineQuantityItem struct {
	Index int `json:"index" yaml:"index"`
}

func (TextItem) isItem()           {}
func (IngredientItem) isItem()     {}
func (CookwareItem) isItem()       {}
func (TimerItem) isItem()          {}
func (InlineQuantityItem) isItem() {}

// Ingredient is one ingredient mention. The first mention of a name is
// its definition, later mentions with a reference modifier point back
// at it through Relation.
type Ingredient[V any] struct {
	Name      string                `json:"name" yaml:"name"`
	Alias     string                `json:"alias,omitempty" yaml:"alias,omitempty"`
	Quantity  *quantity.Quantity[V] `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Note      string                `json:"note,omitempty" yaml:"note,omitempty"`
	Modifiers Modifiers             `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Relation  IngredientRelation    `json:"relation" yaml:"relation"`
}

// DisplayName returns the alias when one was given, the name otherwise.
func (i *Ingredient[V]) DisplayName() string {
	if i.Alias != "" {
		return i.Alias
	}
	return i.Name
}

// Cookware is one cookware mention. Cookware amounts carry no unit.
type Cookware[V any] struct {
	Name      string            `json:"name" yaml:"name"`
	Alias     string            `json:"alias,omitempty" yaml:"alias,omitempty"`
	Quantity  *V                `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Note      string            `json:"note,omitempty" yaml:"note,omitempty"`
	Modifiers Modifiers         `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Relation  ComponentRelation `json:"relation" yaml:"relation"`
}

// DisplayName returns the alias when one was given, the name otherwise.
func (c *Cookware[V]) DisplayName() string {
	if c.Alias != "" {
		return c.Alias
	}
	return c.Name
}

// Timer is a timer mention. A timer has a name, a quantity, or both;
// the parser rejects timers with neither.
type Timer[V any] struct {
	Name     string                `json:"name,omitempty" yaml:"name,omitempty"`
	Quantity *quantity.Quantity[V] `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}
