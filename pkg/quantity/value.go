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

package quantity

import (
	"encoding/json"
	"fmt"

	"github.com/NVIDIA/cooklang/pkg/errors"
)

// Value is a closed union of the concrete forms a quantity value can
// take after scaling: a number, a numeric range, or free text.
type Value interface {
	isValue()
	// IsText reports whether the value is free text.
	IsText() bool
	String() string
	json.Marshaler
	yamlMarshaler
}

// NumberValue holds a single numeric value.
type NumberValue struct {
	Number Number
}

// RangeValue holds an inclusive numeric range.
type RangeValue struct {
	Start Number
	End   Number
}

// TextValue holds free text that did not parse as a numeric form.
type TextValue string

// NewNumber wraps a float in a regular number value.
func NewNumber(v float64) Value {
	return NumberValue{Number: Regular(v)}
}

// NewRange creates a range value.
func NewRange(start, end Number) Value {
	return RangeValue{Start: start, End: end}
}

// NewText creates a text value.
func NewText(s string) Value {
	return TextValue(s)
}

// RecoverValue is the fallback substituted for a value that failed to
// parse, after the error has been recorded.
func RecoverValue() Value {
	return TextValue("")
}

func (NumberValue) isValue() {}
func (RangeValue) isValue()  {}
func (TextValue) isValue()   {}

// IsText reports whether the value is free text.
func (NumberValue) IsText() bool { return false }

// IsText reports whether the value is free text.
func (RangeValue) IsText() bool { return false }

// IsText reports whether the value is free text.
func (TextValue) IsText() bool { return true }

// String renders the numeric value.
func (v NumberValue) String() string {
	return v.Number.String()
}

// String renders the range in "start-end" form.
func (v RangeValue) String() string {
	return fmt.Sprintf("%s-%s", v.Start, v.End)
}

// String returns the text.
func (v TextValue) String() string {
	return string(v)
}

// MarshalJSON serializes the value with an explicit type tag.
func (v NumberValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":  "number",
		"value": v.Number,
	})
}

// MarshalYAML serializes the value with an explicit type tag.
func (v NumberValue) MarshalYAML() (any, error) {
	n, err := v.Number.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return map[string]any{"type": "number", "value": n}, nil
}

// MarshalJSON serializes the value with an explicit type tag.
func (v RangeValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":  "range",
		"start": v.Start,
		"end":   v.End,
	})
}

// MarshalYAML serializes the value with an explicit type tag.
func (v RangeValue) MarshalYAML() (any, error) {
	start, err := v.Start.MarshalYAML()
	if err != nil {
		return nil, err
	}
	end, err := v.End.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return map[string]any{"type": "range", "start": start, "end": end}, nil
}

// MarshalJSON serializes the value with an explicit type tag.
func (v TextValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":  "text",
		"value": string(v),
	})
}

// MarshalYAML serializes the value with an explicit type tag.
func (v TextValue) MarshalYAML() (any, error) {
	return map[string]any{"type": "text", "value": string(v)}, nil
}

// AddValues returns the sum of two values. Text values cannot be added;
// numbers and ranges add element-wise, a number added to a range shifts
// both ends.
func AddValues(a, b Value) (Value, error) {
	if a.IsText() || b.IsText() {
		return nil, errors.New(errors.ErrCodeTextValue, "cannot add text values")
	}

	switch av := a.(type) {
	case NumberValue:
		switch bv := b.(type) {
		case NumberValue:
			return NumberValue{Number: AddNumbers(av.Number, bv.Number)}, nil
		case RangeValue:
			return RangeValue{
				Start: AddNumbers(av.Number, bv.Start),
				End:   AddNumbers(av.Number, bv.End),
			}, nil
		}
	case RangeValue:
		switch bv := b.(type) {
		case NumberValue:
			return RangeValue{
				Start: AddNumbers(av.Start, bv.Number),
				End:   AddNumbers(av.End, bv.Number),
			}, nil
		case RangeValue:
			return RangeValue{
				Start: AddNumbers(av.Start, bv.Start),
				End:   AddNumbers(av.End, bv.End),
			}, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInternal, "unhandled value combination")
}

// UnmarshalValueJSON decodes a type-tagged value produced by
// Value.MarshalJSON.
func UnmarshalValueJSON(data []byte) (Value, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	switch probe.Type {
	case "number":
		var v struct {
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		n, err := UnmarshalNumberJSON(v.Value)
		if err != nil {
			return nil, err
		}
		return NumberValue{Number: n}, nil
	case "range":
		var v struct {
			Start json.RawMessage `json:"start"`
			End   json.RawMessage `json:"end"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		start, err := UnmarshalNumberJSON(v.Start)
		if err != nil {
			return nil, err
		}
		end, err := UnmarshalNumberJSON(v.End)
		if err != nil {
			return nil, err
		}
		return RangeValue{Start: start, End: end}, nil
	case "text":
		var v struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return TextValue(v.Value), nil
	default:
		return nil, fmt.Errorf("unknown value type %q", probe.Type)
	}
}
