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
	"strings"

	"github.com/NVIDIA/cooklang/pkg/errors"
	"github.com/NVIDIA/cooklang/pkg/token"
)

// Quantity pairs a value with an optional unit. The value kind V is
// ScalableValue in recipes fresh out of the parser and Value once the
// recipe has been scaled.
type Quantity[V any] struct {
	Value V      `json:"value" yaml:"value"`
	Unit  string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// ScaledQuantity is a quantity whose value is concrete.
type ScaledQuantity = Quantity[Value]

// NewScaled creates a concrete quantity.
func NewScaled(value Value, unit string) *ScaledQuantity {
	return &ScaledQuantity{Value: value, Unit: unit}
}

// HasUnit reports whether the quantity carries a unit.
func (q *Quantity[V]) HasUnit() bool {
	return q.Unit != ""
}

// ScalableValue is a closed union of the value forms a quantity can hold
// before scaling: a Single value with an optional auto-scale marker, or
// Many values to be selected by scale tier. Many values never carry an
// auto-scale marker; the parser reports that combination as an error.
type ScalableValue interface {
	isScalableValue()
	json.Marshaler
	yamlMarshaler
}

// Single holds one value. AutoScale, when present, is the source span of
// the '*' marker and means the value scales linearly with the factor.
type Single struct {
	Value     Value
	AutoScale *token.Span
}

// Many holds one value per scale tier, in declaration order.
type Many struct {
	Values []Value
}

func (Single) isScalableValue() {}
func (Many) isScalableValue()   {}

// IsAutoScale reports whether the value carries the auto-scale marker.
func (s Single) IsAutoScale() bool {
	return s.AutoScale != nil
}

// MarshalJSON serializes the value with an explicit type tag.
func (s Single) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"type":  "single",
		"value": s.Value,
	}
	if s.AutoScale != nil {
		out["autoScale"] = *s.AutoScale
	}
	return json.Marshal(out)
}

// MarshalYAML serializes the value with an explicit type tag.
func (s Single) MarshalYAML() (any, error) {
	v, err := s.Value.MarshalYAML()
	if err != nil {
		return nil, err
	}
	out := map[string]any{"type": "single", "value": v}
	if s.AutoScale != nil {
		out["autoScale"] = *s.AutoScale
	}
	return out, nil
}

// MarshalJSON serializes the value with an explicit type tag.
func (m Many) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":   "many",
		"values": m.Values,
	})
}

// MarshalYAML serializes the value with an explicit type tag.
func (m Many) MarshalYAML() (any, error) {
	values := make([]any, len(m.Values))
	for i, v := range m.Values {
		y, err := v.MarshalYAML()
		if err != nil {
			return nil, err
		}
		values[i] = y
	}
	return map[string]any{"type": "many", "values": values}, nil
}

// UnitConverter is the external unit database consumed by quantity
// arithmetic. Implementations must be safe for concurrent reads and
// treated as immutable for the lifetime of an aggregation.
type UnitConverter interface {
	// Compatible reports whether two units measure the same physical
	// dimension.
	Compatible(from, to string) bool
	// Convert converts an amount between two compatible units.
	Convert(value float64, from, to string) (float64, error)
	// BestUnit returns the unit in the same dimension that renders the
	// given amount most readably. ok is false when the unit is unknown
	// to the converter.
	BestUnit(value float64, unit string) (unit2 string, ok bool)
}

// sameUnit compares units ignoring case.
func sameUnit(a, b string) bool {
	return strings.EqualFold(a, b)
}

// AddQuantities returns the unit-aware sum of two concrete quantities.
// Units must match, or be dimensionally compatible through the
// converter, in which case b is converted into a's unit first. Text
// values never add.
func AddQuantities(a, b *ScaledQuantity, conv UnitConverter) (*ScaledQuantity, error) {
	switch {
	case sameUnit(a.Unit, b.Unit):
		sum, err := AddValues(a.Value, b.Value)
		if err != nil {
			return nil, err
		}
		return NewScaled(sum, a.Unit), nil
	case a.Unit == "" || b.Unit == "":
		return nil, errors.NewWithContext(errors.ErrCodeIncompatibleUnits,
			"cannot add a quantity with a unit to one without",
			map[string]any{"unit": a.Unit, "other": b.Unit})
	case conv != nil && conv.Compatible(b.Unit, a.Unit):
		converted, err := convertValue(b.Value, b.Unit, a.Unit, conv)
		if err != nil {
			return nil, err
		}
		sum, err := AddValues(a.Value, converted)
		if err != nil {
			return nil, err
		}
		return NewScaled(sum, a.Unit), nil
	default:
		return nil, errors.NewWithContext(errors.ErrCodeIncompatibleUnits,
			"incompatible units",
			map[string]any{"unit": a.Unit, "other": b.Unit})
	}
}

// convertValue converts a numeric value between compatible units.
// Fractions fold to regular numbers since the converted magnitude has no
// exact fractional form in the target unit.
func convertValue(v Value, from, to string, conv UnitConverter) (Value, error) {
	switch val := v.(type) {
	case NumberValue:
		c, err := conv.Convert(val.Number.Float64(), from, to)
		if err != nil {
			return nil, err
		}
		return NumberValue{Number: Regular(c)}, nil
	case RangeValue:
		start, err := conv.Convert(val.Start.Float64(), from, to)
		if err != nil {
			return nil, err
		}
		end, err := conv.Convert(val.End.Float64(), from, to)
		if err != nil {
			return nil, err
		}
		return RangeValue{Start: Regular(start), End: Regular(end)}, nil
	default:
		return nil, errors.New(errors.ErrCodeTextValue, "cannot convert a text value")
	}
}

// FitQuantity rewrites the quantity in place to the best-scaled unit the
// converter offers for its magnitude (1100 g becomes 1.1 kg). The fit is
// advisory: it reports false and leaves the quantity untouched when the
// value is textual, the quantity has no unit, or the converter has no
// data for it.
func FitQuantity(q *ScaledQuantity, conv UnitConverter) bool {
	if conv == nil || q.Unit == "" || q.Value.IsText() {
		return false
	}

	magnitude := fitMagnitude(q.Value)
	best, ok := conv.BestUnit(magnitude, q.Unit)
	if !ok || sameUnit(best, q.Unit) {
		return false
	}

	converted, err := convertValue(q.Value, q.Unit, best, conv)
	if err != nil {
		return false
	}
	q.Value = converted
	q.Unit = best
	return true
}

// fitMagnitude picks the magnitude used to select the best unit: the
// upper end for ranges, the plain value otherwise.
func fitMagnitude(v Value) float64 {
	switch val := v.(type) {
	case NumberValue:
		return val.Number.Float64()
	case RangeValue:
		return val.End.Float64()
	default:
		return 0
	}
}
