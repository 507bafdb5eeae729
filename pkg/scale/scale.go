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

// Package scale resolves the scalable quantities of a parsed recipe
// into concrete values. Scaling is a one-way transform: it consumes a
// ScalableRecipe and produces a ScaledRecipe, so scaling twice is a
// compile error rather than a runtime check.
package scale

import (
	"fmt"

	"github.com/NVIDIA/cooklang/pkg/diag"
	"github.com/NVIDIA/cooklang/pkg/quantity"
	"github.com/NVIDIA/cooklang/pkg/recipe"
)

// Target selects how quantities resolve. Factor multiplies values that
// carry the auto-scale marker. Tier is the position picked from a
// multi-valued quantity; tiers are ordinal, they are not multipliers.
type Target struct {
	Factor float64
	Tier   int
}

// DefaultTarget leaves every quantity as written.
func DefaultTarget() Target {
	return Target{Factor: 1}
}

// TargetForServings derives a target from the declared serving tiers
// and a requested serving count. The factor is relative to the first
// declared tier. ok is false when the requested count is not a
// declared tier; the factor is still usable for auto-scaling values,
// but multi-valued quantities will select the first tier.
func TargetForServings(declared []uint32, requested uint32) (Target, bool) {
	if len(declared) == 0 || requested == 0 {
		return DefaultTarget(), false
	}
	t := Target{Factor: float64(requested) / float64(declared[0])}
	for i, d := range declared {
		if d == requested {
			t.Tier = i
			return t, true
		}
	}
	return t, false
}

// Scale resolves every quantity of the recipe against the target. It
// never fails: bad combinations are recorded in the returned report
// and degrade to a usable value.
func Scale(r *recipe.ScalableRecipe, target Target) (*recipe.ScaledRecipe, *diag.Report) {
	report := diag.NewReport()

	out := &recipe.ScaledRecipe{
		Metadata: r.Metadata,
		Sections: r.Sections,
	}

	if len(r.Ingredients) > 0 {
		out.Ingredients = make([]recipe.Ingredient[quantity.Value], len(r.Ingredients))
		for i, ing := range r.Ingredients {
			out.Ingredients[i] = recipe.Ingredient[quantity.Value]{
				Name:      ing.Name,
				Alias:     ing.Alias,
				Quantity:  scaleQuantity(ing.Quantity, target, report),
				Note:      ing.Note,
				Modifiers: ing.Modifiers,
				Relation:  ing.Relation,
			}
		}
	}

	if len(r.Cookware) > 0 {
		out.Cookware = make([]recipe.Cookware[quantity.Value], len(r.Cookware))
		for i, cw := range r.Cookware {
			out.Cookware[i] = recipe.Cookware[quantity.Value]{
				Name:      cw.Name,
				Alias:     cw.Alias,
				Quantity:  scaleBareValue(cw.Quantity, target, report),
				Note:      cw.Note,
				Modifiers: cw.Modifiers,
				Relation:  cw.Relation,
			}
		}
	}

	if len(r.Timers) > 0 {
		out.Timers = make([]recipe.Timer[quantity.Value], len(r.Timers))
		for i, tm := range r.Timers {
			out.Timers[i] = recipe.Timer[quantity.Value]{
				Name:     tm.Name,
				Quantity: scaleQuantity(tm.Quantity, target, report),
			}
		}
	}

	if len(r.InlineQuantities) > 0 {
		out.InlineQuantities = make([]quantity.ScaledQuantity, len(r.InlineQuantities))
		for i, q := range r.InlineQuantities {
			out.InlineQuantities[i] = *scaleQuantity(&q, target, report)
		}
	}

	return out, report
}

func scaleQuantity(q *quantity.Quantity[quantity.ScalableValue], target Target, report *diag.Report) *quantity.ScaledQuantity {
	if q == nil {
		return nil
	}
	return quantity.NewScaled(scaleValue(q.Value, target, report), q.Unit)
}

func scaleBareValue(v *quantity.ScalableValue, target Target, report *diag.Report) *quantity.Value {
	if v == nil {
		return nil
	}
	out := scaleValue(*v, target, report)
	return &out
}

// scaleValue collapses one scalable value to a concrete one: a fixed
// single value passes through, an auto-scaling value multiplies by the
// factor, and a multi-value selects the target tier.
func scaleValue(sv quantity.ScalableValue, target Target, report *diag.Report) quantity.Value {
	switch v := sv.(type) {
	case quantity.Single:
		if !v.IsAutoScale() {
			return v.Value
		}
		return multiplyValue(v, target, report)
	case quantity.Many:
		if target.Tier < 0 || target.Tier >= len(v.Values) {
			report.Push(diag.Error(fmt.Sprintf("No value for scale tier %d", target.Tier)).
				WithHint(fmt.Sprintf("The quantity declares %d values; the first one is used instead", len(v.Values))))
			return v.Values[0]
		}
		return v.Values[target.Tier]
	default:
		report.Push(diag.Error("Unknown quantity value kind"))
		return quantity.RecoverValue()
	}
}

func multiplyValue(v quantity.Single, target Target, report *diag.Report) quantity.Value {
	if target.Factor == 1 {
		return v.Value
	}

	switch val := v.Value.(type) {
	case quantity.NumberValue:
		return quantity.NewNumber(val.Number.Float64() * target.Factor)
	case quantity.RangeValue:
		return quantity.RangeValue{
			Start: quantity.Regular(val.Start.Float64() * target.Factor),
			End:   quantity.Regular(val.End.Float64() * target.Factor),
		}
	default:
		d := diag.Error("Text value marked as auto scaling can not be scaled")
		if v.AutoScale != nil {
			d = d.WithLabel(diag.NewLabel(*v.AutoScale, "remove this marker"))
		}
		report.Push(d)
		return v.Value
	}
}
