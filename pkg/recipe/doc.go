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

// Package recipe defines the parsed recipe model.
//
// # Overview
//
// A Recipe is an arena of flat component vectors (ingredients,
// cookware, timers, inline quantities) plus the section and step
// structure that references into them by index. Step items never own
// components; they point at positions in the vectors, so the same
// ingredient can be walked either in document order through the steps
// or directly through the ingredient list.
//
// # Scale State
//
// The value kind parameter V tracks scale state in the type system:
//
//	ScalableRecipe = Recipe[quantity.ScalableValue]  // fresh out of the parser
//	ScaledRecipe   = Recipe[quantity.Value]          // after pkg/scale
//
// Operations that need concrete values (grouping, totals) take a
// ScaledRecipe, so applying them to an unscaled recipe is a compile
// error.
//
// # Definitions and References
//
// Components parsed with the reference modifier do not create new
// entries semantically; their relation points back at the defining
// entry, and the definition keeps backlinks to every reference.
// GroupIngredientQuantities and GroupCookwareAmounts use those
// backlinks to aggregate quantities across a definition and its
// references.
package recipe
