// Package quantity defines the value model for recipe quantities and
// its arithmetic.
//
// A quantity is a value plus an optional unit. Values form a closed
// union: Number (Regular float or exact Fraction), Range, or Text.
// Before scaling, a quantity holds a ScalableValue (Single with an
// optional auto-scale marker, or Many tiered values); after scaling it
// holds a concrete Value.
//
// Arithmetic preserves exactness where it can: adding two fractions
// with equal denominators is exact, any other mix folds through
// floating point and records the introduced approximation in the
// fraction's Err field.
//
// GroupedQuantity implements reference-group aggregation: folding the
// quantities of a component definition and all of its references into
// unit-compatible buckets, then fitting each bucket to the most
// readable unit the converter offers.
package quantity
