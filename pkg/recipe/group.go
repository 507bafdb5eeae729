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

import "github.com/NVIDIA/cooklang/pkg/quantity"

// GroupIngredientQuantities aggregates the quantity of the ingredient
// at the given index with the quantities of every item referencing it.
// References are followed one level only, from the definition's
// backlinks; they never chain. The aggregate is fitted to the best
// units the converter offers.
//
// Aggregation only makes sense on a definition; grouping a reference
// yields just its own quantity.
func GroupIngredientQuantities(r *ScaledRecipe, index int, conv quantity.UnitConverter) *quantity.GroupedQuantity {
	ingredientGroupsTotal.Inc()

	g := quantity.NewGroupedQuantity()
	ing := &r.Ingredients[index]
	g.Add(ing.Quantity, conv)

	if def, ok := AsDefinition(ing.Relation.Relation); ok {
		for _, ref := range def.ReferencedFrom {
			g.Add(r.Ingredients[ref].Quantity, conv)
		}
	}
	g.Fit(conv)
	return g
}

// TotalIngredientQuantity returns the single aggregated quantity of an
// ingredient and its references, or nil when the quantities do not
// collapse into one compatible total.
func TotalIngredientQuantity(r *ScaledRecipe, index int, conv quantity.UnitConverter) *quantity.ScaledQuantity {
	return GroupIngredientQuantities(r, index, conv).Total()
}

// GroupCookwareAmounts aggregates the amount of the cookware at the
// given index with the amounts of every item referencing it. Cookware
// amounts carry no unit, so numeric amounts sum into one bucket and
// text amounts are collected separately.
func GroupCookwareAmounts(r *ScaledRecipe, index int, conv quantity.UnitConverter) *quantity.GroupedQuantity {
	cookwareGroupsTotal.Inc()

	g := quantity.NewGroupedQuantity()
	cw := &r.Cookware[index]
	addAmount(g, cw.Quantity, conv)

	if def, ok := AsDefinition(cw.Relation); ok {
		for _, ref := range def.ReferencedFrom {
			addAmount(g, r.Cookware[ref].Quantity, conv)
		}
	}
	return g
}

// addAmount wraps a bare cookware value into a unit-less quantity.
func addAmount(g *quantity.GroupedQuantity, v *quantity.Value, conv quantity.UnitConverter) {
	if v == nil {
		return
	}
	g.Add(quantity.NewScaled(*v, ""), conv)
}
