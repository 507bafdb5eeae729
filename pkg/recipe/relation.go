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

// Modifiers is a bitset of the component markers that can follow the
// component symbol, as in "@&flour{}".
type Modifiers uint8

const (
	// ModifierRef marks a reference to a prior definition ('&').
	ModifierRef Modifiers = 1 << iota
	// ModifierHidden hides the component from ingredient lists ('-').
	ModifierHidden
	// ModifierOptional marks the component as optional ('?').
	ModifierOptional
	// ModifierNew forces a new definition even when the name already
	// exists ('+').
	ModifierNew
	// ModifierRecipe marks an ingredient that is itself a recipe ('@').
	ModifierRecipe
)

// Has reports whether all the given modifier bits are set.
func (m Modifiers) Has(flags Modifiers) bool {
	return m&flags == flags
}

// ComponentRelation is a closed union of the two roles a named
// component can hold: the first mention of a name is a *Definition,
// later mentions are References addressing it by index.
//
// Definitions are held by pointer so the resolver can append backlinks
// while building the document; once parsing finishes the relation is
// immutable.
type ComponentRelation interface {
	isRelation()
}

// Definition is the first mention of a component name. ReferencedFrom
// lists, in order, the indices of every later item whose Reference
// points back at this definition.
type Definition struct {
	ReferencedFrom []int `json:"referencedFrom" yaml:"referencedFrom"`
	DefinedInStep  bool  `json:"definedInStep" yaml:"definedInStep"`
}

// Reference is a later mention of an already-defined name. The target
// index always addresses a *Definition in the same collection.
type Reference struct {
	ReferencesTo int `json:"referencesTo" yaml:"referencesTo"`
}

func (*Definition) isRelation() {}
func (Reference) isRelation()   {}

// NewDefinition creates a definition with no references yet.
func NewDefinition(definedInStep bool) *Definition {
	return &Definition{ReferencedFrom: []int{}, DefinedInStep: definedInStep}
}

// AddBacklink records that the item at the given index references this
// definition.
func (d *Definition) AddBacklink(index int) {
	d.ReferencedFrom = append(d.ReferencedFrom, index)
}

// AsDefinition returns the definition payload when the relation is one.
func AsDefinition(r ComponentRelation) (*Definition, bool) {
	d, ok := r.(*Definition)
	return d, ok
}

// AsReference returns the reference payload when the relation is one.
func AsReference(r ComponentRelation) (Reference, bool) {
	ref, ok := r.(Reference)
	return ref, ok
}

// ReferenceTarget discriminates what address space an ingredient
// reference points into.
type ReferenceTarget string

const (
	// TargetIngredient is a normal cross-reference to a prior
	// ingredient definition.
	TargetIngredient ReferenceTarget = "ingredient"
	// TargetStep points at the output of a prior step in the same
	// section (an intermediate preparation).
	TargetStep ReferenceTarget = "step"
	// TargetSection points at the output of a prior section.
	TargetSection ReferenceTarget = "section"
)

// IngredientRelation pairs a component relation with the reference
// target discriminator. Target is set exactly when the relation is a
// Reference; definitions have no target.
type IngredientRelation struct {
	Relation ComponentRelation `json:"relation" yaml:"relation"`
	Target   ReferenceTarget   `json:"target,omitempty" yaml:"target,omitempty"`
}

// NewDefinitionRelation creates the relation for a new ingredient
// definition.
func NewDefinitionRelation(definedInStep bool) IngredientRelation {
	return IngredientRelation{Relation: NewDefinition(definedInStep)}
}

// NewReferenceRelation creates the relation for an ingredient reference.
func NewReferenceRelation(index int, target ReferenceTarget) IngredientRelation {
	return IngredientRelation{Relation: Reference{ReferencesTo: index}, Target: target}
}

// IsReference reports whether the relation is a reference.
func (r *IngredientRelation) IsReference() bool {
	_, ok := r.Relation.(Reference)
	return ok
}
