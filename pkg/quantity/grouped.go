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

// GroupedQuantity aggregates the quantities of a component definition
// and all of its references. Values are folded left to right: numeric
// quantities with compatible units merge into a running total, text
// values and quantities with unrelated units each keep their own bucket.
type GroupedQuantity struct {
	buckets []*ScaledQuantity
}

// NewGroupedQuantity creates an empty group.
func NewGroupedQuantity() *GroupedQuantity {
	return &GroupedQuantity{}
}

// Add folds one quantity into the group. Text values are always
// collected as separate buckets; numeric values are added into the first
// bucket they are unit-compatible with, converting through conv when the
// units differ, and open a new bucket otherwise. Nil quantities are
// ignored.
func (g *GroupedQuantity) Add(q *ScaledQuantity, conv UnitConverter) {
	if q == nil {
		return
	}

	copied := *q
	if q.Value.IsText() {
		g.buckets = append(g.buckets, &copied)
		return
	}

	for i, bucket := range g.buckets {
		if bucket.Value.IsText() {
			continue
		}
		if sum, err := AddQuantities(bucket, &copied, conv); err == nil {
			g.buckets[i] = sum
			return
		}
	}
	g.buckets = append(g.buckets, &copied)
}

// Fit rewrites each numeric bucket to its best-scaled unit. It is a
// no-op for buckets the converter has no data for.
func (g *GroupedQuantity) Fit(conv UnitConverter) {
	for _, bucket := range g.buckets {
		FitQuantity(bucket, conv)
	}
}

// All returns the aggregated buckets in insertion order of their first
// contribution.
func (g *GroupedQuantity) All() []*ScaledQuantity {
	return g.buckets
}

// Total returns the single aggregated quantity when the whole group
// collapsed into one bucket, or nil when the group is empty or holds
// several incompatible buckets.
func (g *GroupedQuantity) Total() *ScaledQuantity {
	if len(g.buckets) == 1 {
		return g.buckets[0]
	}
	return nil
}

// IsEmpty reports whether nothing was aggregated.
func (g *GroupedQuantity) IsEmpty() bool {
	return len(g.buckets) == 0
}
