/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package requirement models declarative data requirements as an immutable
// tree of typed variants.
//
// # Overview
//
// A requirement describes what valid data must look like. Raw requirements
// may be written in several shapes: a literal value, a predicate function,
// a compiled regular expression, a type descriptor, a set of members, an
// ordered sequence, a mapping keyed by group, or a numeric value with a
// tolerance annotation. Normalize converts any of these raw shapes into a
// Requirement tree built from six closed variants:
//
//	Equality    - observed element must equal a literal value
//	Predicate   - observed element must satisfy a boolean test
//	Approximate - observed number must lie within a tolerance
//	Set         - unordered membership, each member consumed at most once
//	Sequence    - order-sensitive, position-aligned comparison
//	Mapping     - entries partition the data into groups
//
// # Construction
//
// Basic normalization:
//
//	req, err := requirement.Normalize(map[string]any{
//	    "region": "us-east",
//	    "count":  requirement.Approx{Value: 100, Tolerance: 5},
//	})
//
// Requirements can also be authored as YAML documents with the local tags
// !set, !regex and !approx; see ParseYAML.
//
// # Immutability
//
// A Requirement tree is immutable once normalized. The same tree may be
// shared by any number of concurrent validations.
package requirement
