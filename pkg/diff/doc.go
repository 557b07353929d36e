/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package diff computes ordered difference sequences between observed
// data and a normalized requirement tree.
//
// Diff handles scalar, set and sequence comparison; DiffGroups handles
// data partitioned by group key. Both always compute the complete set of
// discrepancies in a single pass, never stopping at the first failure,
// and both are deterministic: identical inputs produce element-for-element
// identical difference sequences.
//
// Structural incompatibility between requirement and data (for example a
// Sequence requirement against a plain scalar) is an ErrShapeMismatch
// error, never a silent coercion.
package diff
