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
	"fmt"

	"golang.org/x/text/cases"

	"github.com/NVIDIA/cooklang/pkg/convert"
	"github.com/NVIDIA/cooklang/pkg/diag"
	"github.com/NVIDIA/cooklang/pkg/quantity"
	"github.com/NVIDIA/cooklang/pkg/recipe"
	"github.com/NVIDIA/cooklang/pkg/token"
)

// builder accumulates the document while blocks are parsed. Components
// live in flat vectors; relation resolution appends backlinks to prior
// definitions, never touching anything outside the in-progress
// document.
type builder struct {
	metadata    recipe.Metadata
	sections    []recipe.Section
	ingredients []recipe.Ingredient[quantity.ScalableValue]
	cookware    []recipe.Cookware[quantity.ScalableValue]
	timers      []recipe.Timer[quantity.ScalableValue]
	inline      []quantity.Quantity[quantity.ScalableValue]

	current     recipe.Section
	stepCounter uint32

	conv *convert.Converter
	fold cases.Caser
}

func newBuilder(conv *convert.Converter) *builder {
	return &builder{
		metadata: recipe.Metadata{},
		conv:     conv,
		fold:     cases.Fold(),
	}
}

// resolveComponent turns a raw component parse into a step item,
// appending to the matching flat vector and wiring its relation.
func (b *builder) resolveComponent(bp *BlockParser, c component) recipe.Item {
	switch c.marker.Kind {
	case token.At:
		return b.addIngredient(bp, c)
	case token.Hash:
		return b.addCookware(bp, c)
	default:
		return b.addTimer(bp, c)
	}
}

func (b *builder) addIngredient(bp *BlockParser, c component) recipe.Item {
	index := len(b.ingredients)
	ing := recipe.Ingredient[quantity.ScalableValue]{
		Name:      c.name,
		Alias:     c.alias,
		Note:      c.note,
		Modifiers: c.modifiers,
		Relation:  recipe.NewDefinitionRelation(true),
	}
	if c.quantity != nil {
		q := c.quantity.Quantity
		ing.Quantity = &q
	}

	switch {
	case c.intermediate != nil:
		if rel, ok := b.resolveIntermediate(bp, c); ok {
			ing.Relation = rel
		}
	case c.modifiers.Has(recipe.ModifierRef):
		if def, ok := b.findIngredientDefinition(c.name); ok {
			ing.Relation = recipe.NewReferenceRelation(def, recipe.TargetIngredient)
			b.backlinkIngredient(def, index)
		} else {
			bp.Error(diag.Error(fmt.Sprintf("Reference to unknown ingredient %q", c.name)).
				WithLabel(diag.NewLabel(c.nameSpan, "not defined before this")).
				WithHint("A reference must point to an ingredient defined earlier; this one becomes a new definition"))
		}
	}

	b.ingredients = append(b.ingredients, ing)
	return recipe.IngredientItem{Index: index}
}

// resolveIntermediate validates a step or section target. The target
// index is 1-based in the source and must point strictly before the
// current position; a bad target is a recorded error and the item
// degrades to a plain definition, keeping every index valid.
func (b *builder) resolveIntermediate(bp *BlockParser, c component) (recipe.IngredientRelation, bool) {
	ref := c.intermediate
	switch ref.target {
	case recipe.TargetStep:
		if ref.index == 0 || ref.index > b.stepCounter {
			bp.Error(diag.Error("Invalid step reference").
				WithLabel(diag.NewLabel(ref.span, fmt.Sprintf("no step %d before this one", ref.index))))
			return recipe.IngredientRelation{}, false
		}
	case recipe.TargetSection:
		if ref.index == 0 || int(ref.index) > len(b.sections) {
			bp.Error(diag.Error("Invalid section reference").
				WithLabel(diag.NewLabel(ref.span, fmt.Sprintf("no section %d before this one", ref.index))))
			return recipe.IngredientRelation{}, false
		}
	}
	return recipe.NewReferenceRelation(int(ref.index)-1, ref.target), true
}

func (b *builder) addCookware(bp *BlockParser, c component) recipe.Item {
	index := len(b.cookware)
	cw := recipe.Cookware[quantity.ScalableValue]{
		Name:      c.name,
		Alias:     c.alias,
		Note:      c.note,
		Modifiers: c.modifiers,
		Relation:  recipe.NewDefinition(true),
	}
	if c.quantity != nil {
		q := c.quantity.Quantity
		if q.Unit != "" {
			span := c.nameSpan
			if c.quantity.UnitSeparator != nil {
				span = *c.quantity.UnitSeparator
			}
			bp.Error(diag.Error("Cookware amount can not have a unit").
				WithLabel(diag.NewLabel(span, "remove the unit")))
		}
		v := q.Value
		cw.Quantity = &v
	}

	if c.modifiers.Has(recipe.ModifierRef) {
		if def, ok := b.findCookwareDefinition(c.name); ok {
			cw.Relation = recipe.Reference{ReferencesTo: def}
			b.backlinkCookware(def, index)
		} else {
			bp.Error(diag.Error(fmt.Sprintf("Reference to unknown cookware %q", c.name)).
				WithLabel(diag.NewLabel(c.nameSpan, "not defined before this")).
				WithHint("A reference must point to cookware defined earlier; this one becomes a new definition"))
		}
	}

	b.cookware = append(b.cookware, cw)
	return recipe.CookwareItem{Index: index}
}

func (b *builder) addTimer(bp *BlockParser, c component) recipe.Item {
	index := len(b.timers)
	t := recipe.Timer[quantity.ScalableValue]{Name: c.name}
	if c.quantity != nil {
		q := c.quantity.Quantity
		t.Quantity = &q
	}

	if t.Name == "" && t.Quantity == nil {
		bp.Error(diag.Error("Empty timer").
			WithLabel(diag.NewLabel(c.marker.Span, "add a name, a duration, or both")))
	}

	if bp.Extension(ExtTimerRequiresTime) {
		b.checkTimerQuantity(bp, &t, c)
	}

	b.timers = append(b.timers, t)
	return recipe.TimerItem{Index: index}
}

// checkTimerQuantity enforces that a timer carries a concrete time
// quantity. Violations are recorded and the bad quantity is dropped so
// later stages never see a timer counting pans.
func (b *builder) checkTimerQuantity(bp *BlockParser, t *recipe.Timer[quantity.ScalableValue], c component) {
	if t.Quantity == nil {
		if t.Name != "" {
			bp.Error(diag.Error("Timer without time").
				WithLabel(diag.NewLabel(c.nameSpan, "add a duration here")))
		}
		return
	}
	if b.conv == nil {
		return
	}
	if t.Quantity.Unit == "" || !b.conv.IsTimeUnit(t.Quantity.Unit) {
		bp.Error(diag.Error("Timer unit is not a time unit").
			WithLabel(diag.NewLabel(c.nameSpan, fmt.Sprintf("%q is not a unit of time", t.Quantity.Unit))))
		t.Quantity = nil
	}
}

// findIngredientDefinition returns the index of the first definition
// with the given name. Name comparison folds case.
func (b *builder) findIngredientDefinition(name string) (int, bool) {
	key := b.fold.String(name)
	for i := range b.ingredients {
		ing := &b.ingredients[i]
		if _, ok := recipe.AsDefinition(ing.Relation.Relation); !ok {
			continue
		}
		if b.fold.String(ing.Name) == key {
			return i, true
		}
	}
	return 0, false
}

func (b *builder) findCookwareDefinition(name string) (int, bool) {
	key := b.fold.String(name)
	for i := range b.cookware {
		cw := &b.cookware[i]
		if _, ok := recipe.AsDefinition(cw.Relation); !ok {
			continue
		}
		if b.fold.String(cw.Name) == key {
			return i, true
		}
	}
	return 0, false
}

func (b *builder) backlinkIngredient(def, from int) {
	if d, ok := recipe.AsDefinition(b.ingredients[def].Relation.Relation); ok {
		d.AddBacklink(from)
	}
}

func (b *builder) backlinkCookware(def, from int) {
	if d, ok := recipe.AsDefinition(b.cookware[def].Relation); ok {
		d.AddBacklink(from)
	}
}

// finishStep closes the accumulated step, numbering it within the
// current section. Text paragraphs never consume a number.
func (b *builder) finishStep(items []recipe.Item) {
	if stepIsEmpty(items) {
		return
	}
	b.stepCounter++
	b.current.Content = append(b.current.Content, recipe.Step{
		Items:  items,
		Number: b.stepCounter,
	})
}

// finishText appends a plain text paragraph to the current section.
func (b *builder) finishText(text string) {
	if text == "" {
		return
	}
	b.current.Content = append(b.current.Content, recipe.Text(text))
}

// finishSection closes the current section and opens a new one with
// the given name. The implicit leading section is dropped when empty.
func (b *builder) finishSection(name string) {
	if !b.current.IsEmpty() {
		b.sections = append(b.sections, b.current)
	}
	b.current = recipe.Section{Name: name}
	b.stepCounter = 0
}

// finish closes the document and returns the built recipe.
func (b *builder) finish() *recipe.ScalableRecipe {
	if !b.current.IsEmpty() {
		b.sections = append(b.sections, b.current)
	}
	return &recipe.ScalableRecipe{
		Metadata:         b.metadata,
		Sections:         b.sections,
		Ingredients:      b.ingredients,
		Cookware:         b.cookware,
		Timers:           b.timers,
		InlineQuantities: b.inline,
	}
}
