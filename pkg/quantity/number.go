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
	"math"
	"strconv"
)

// Number is a closed union of the numeric representations a quantity
// value can hold: Regular (a plain float) or Fraction.
type Number interface {
	isNumber()
	// Float64 returns the numeric magnitude.
	Float64() float64
	String() string
	json.Marshaler
	yamlMarshaler
}

// yamlMarshaler mirrors yaml.Marshaler without importing the package in
// every file that names the interface.
type yamlMarshaler interface {
	MarshalYAML() (any, error)
}

// Regular is a plain floating point number. Bare integers are parsed as
// regular numbers to allow arbitrarily large magnitudes.
type Regular float64

func (Regular) isNumber() {}

// Float64 returns the numeric magnitude.
func (n Regular) Float64() float64 {
	return float64(n)
}

// String returns the shortest decimal representation.
func (n Regular) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// MarshalJSON serializes the number with an explicit type tag.
func (n Regular) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":  "regular",
		"value": float64(n),
	})
}

// MarshalYAML serializes the number with an explicit type tag.
func (n Regular) MarshalYAML() (any, error) {
	return map[string]any{
		"type":  "regular",
		"value": float64(n),
	}, nil
}

// Fraction is an exact mixed number: Whole + Num/Den. Err tracks the
// accumulated floating point approximation introduced when a fraction
// had to be folded through a float during arithmetic; it is always zero
// right after parsing. A Fraction with Den == 0 is never constructed.
type Fraction struct {
	Whole uint32  `json:"whole" yaml:"whole"`
	Num   uint32  `json:"num" yaml:"num"`
	Den   uint32  `json:"den" yaml:"den"`
	Err   float64 `json:"err" yaml:"err"`
}

// NewFraction creates a fraction with no accumulated error. It returns
// false when den is zero, which is not a representable state.
func NewFraction(whole, num, den uint32) (Fraction, bool) {
	if den == 0 {
		return Fraction{}, false
	}
	return Fraction{Whole: whole, Num: num, Den: den}, true
}

func (Fraction) isNumber() {}

// Float64 returns the numeric magnitude including the accumulated error.
func (f Fraction) Float64() float64 {
	return float64(f.Whole) + float64(f.Num)/float64(f.Den) + f.Err
}

// String renders the fraction in "2 1/2" form.
func (f Fraction) String() string {
	switch {
	case f.Num == 0:
		return strconv.FormatUint(uint64(f.Whole), 10)
	case f.Whole == 0:
		return fmt.Sprintf("%d/%d", f.Num, f.Den)
	default:
		return fmt.Sprintf("%d %d/%d", f.Whole, f.Num, f.Den)
	}
}

// MarshalJSON serializes the fraction with an explicit type tag.
func (f Fraction) MarshalJSON() ([]byte, error) {
	type plain Fraction
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{Type: "fraction", plain: plain(f)})
}

// MarshalYAML serializes the fraction with an explicit type tag.
func (f Fraction) MarshalYAML() (any, error) {
	return map[string]any{
		"type":  "fraction",
		"whole": f.Whole,
		"num":   f.Num,
		"den":   f.Den,
		"err":   f.Err,
	}, nil
}

// AddNumbers returns the sum of two numbers. Two fractions with equal
// denominators add exactly by numerator addition. Any other combination
// involving a fraction folds through floating point and the result's
// Err records the approximation magnitude introduced. Two regular
// numbers add as plain floats.
func AddNumbers(a, b Number) Number {
	fa, aIsFrac := a.(Fraction)
	fb, bIsFrac := b.(Fraction)

	switch {
	case aIsFrac && bIsFrac && fa.Den == fb.Den:
		num := fa.Num + fb.Num
		return Fraction{
			Whole: fa.Whole + fb.Whole + num/fa.Den,
			Num:   num % fa.Den,
			Den:   fa.Den,
			Err:   fa.Err + fb.Err,
		}
	case aIsFrac:
		return approxFraction(a.Float64()+b.Float64(), fa.Den)
	case bIsFrac:
		return approxFraction(a.Float64()+b.Float64(), fb.Den)
	default:
		return Regular(a.Float64() + b.Float64())
	}
}

// approxFraction represents v as a fraction over the given denominator,
// recording the rounding difference in Err so the magnitude is preserved
// exactly by Float64.
func approxFraction(v float64, den uint32) Number {
	if den == 0 || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Regular(v)
	}
	whole := math.Floor(v)
	num := math.Round((v - whole) * float64(den))
	f := Fraction{Whole: uint32(whole), Num: uint32(num), Den: den}
	if f.Num >= f.Den {
		f.Whole += f.Num / f.Den
		f.Num %= f.Den
	}
	f.Err = v - (float64(f.Whole) + float64(f.Num)/float64(f.Den))
	return f
}

// UnmarshalNumberJSON decodes a type-tagged number produced by
// Number.MarshalJSON.
func UnmarshalNumberJSON(data []byte) (Number, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	switch probe.Type {
	case "regular":
		var v struct {
			Value float64 `json:"value"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return Regular(v.Value), nil
	case "fraction":
		var f Fraction
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unknown number type %q", probe.Type)
	}
}
