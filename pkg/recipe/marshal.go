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

import "encoding/json"

// Union variants serialize with an explicit type tag so consumers can
// dispatch without reflection.

// MarshalJSON serializes the step with an explicit type tag.
func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":   "step",
		"items":  s.Items,
		"number": s.Number,
	})
}

// MarshalYAML serializes the step with an explicit type tag.
func (s Step) MarshalYAML() (any, error) {
	return map[string]any{
		"type":   "step",
		"items":  s.Items,
		"number": s.Number,
	}, nil
}

// MarshalJSON serializes the paragraph with an explicit type tag.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":  "text",
		"value": string(t),
	})
}

// MarshalYAML serializes the paragraph with an explicit type tag.
func (t Text) MarshalYAML() (any, error) {
	return map[string]any{"type": "text", "value": string(t)}, nil
}

func (i TextItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "text", "value": i.Value})
}

func (i TextItem) MarshalYAML() (any, error) {
	return map[string]any{"type": "text", "value": i.Value}, nil
}

func (i IngredientItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "ingredient", "index": i.Index})
}

func (i IngredientItem) MarshalYAML() (any, error) {
	return map[string]any{"type": "ingredient", "index": i.Index}, nil
}

func (i CookwareItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "cookware", "index": i.Index})
}

func (i CookwareItem) MarshalYAML() (any, error) {
	return map[string]any{"type": "cookware", "index": i.Index}, nil
}

func (i TimerItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "timer", "index": i.Index})
}

func (i TimerItem) MarshalYAML() (any, error) {
	return map[string]any{"type": "timer", "index": i.Index}, nil
}

func (i InlineQuantityItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "quantity", "index": i.Index})
}

func (i InlineQuantityItem) MarshalYAML() (any, error) {
	return map[string]any{"type": "quantity", "index": i.Index}, nil
}

// MarshalJSON serializes the definition with an explicit type tag.
func (d *Definition) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":           "definition",
		"referencedFrom": d.ReferencedFrom,
		"definedInStep":  d.DefinedInStep,
	})
}

// MarshalYAML serializes the definition with an explicit type tag.
func (d *Definition) MarshalYAML() (any, error) {
	return map[string]any{
		"type":           "definition",
		"referencedFrom": d.ReferencedFrom,
		"definedInStep":  d.DefinedInStep,
	}, nil
}

// MarshalJSON serializes the reference with an explicit type tag.
func (r Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":         "reference",
		"referencesTo": r.ReferencesTo,
	})
}

// MarshalYAML serializes the reference with an explicit type tag.
func (r Reference) MarshalYAML() (any, error) {
	return map[string]any{"type": "reference", "referencesTo": r.ReferencesTo}, nil
}
