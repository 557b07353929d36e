/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package requirement

import (
	"fmt"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// YAML local tags extending the plain scalar/sequence/mapping shapes.
const (
	tagSet    = "!set"
	tagRegex  = "!regex"
	tagApprox = "!approx"
)

// ParseYAML builds a Requirement from a YAML requirement document.
//
// Plain YAML shapes map directly: scalars become Equality atoms,
// sequences become Sequences, mappings become Mappings keyed by group.
// Three local tags select the remaining variants:
//
//	ids: !set [1, 2, 3]
//	name: !regex '[a-z]+'
//	total: !approx {value: 100, tolerance: 2.5}
//
// Unlike Go map literals, YAML preserves declared order, so !set members
// keep their authored order.
func ParseYAML(data []byte) (Requirement, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty requirement document", ErrMalformed)
	}
	return fromNode(doc.Content[0])
}

func fromNode(n *yaml.Node) (Requirement, error) {
	if n.Kind == yaml.AliasNode {
		return fromNode(n.Alias)
	}

	switch n.Tag {
	case tagSet:
		return setFromNode(n)
	case tagRegex:
		return regexFromNode(n)
	case tagApprox:
		return approxFromNode(n)
	}

	switch n.Kind {
	case yaml.ScalarNode:
		return scalarFromNode(n)
	case yaml.SequenceNode:
		items := make([]Requirement, len(n.Content))
		for i, c := range n.Content {
			item, err := fromNode(c)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			items[i] = item
		}
		return Sequence{Items: items}, nil
	case yaml.MappingNode:
		return mappingFromNode(n)
	}
	return nil, fmt.Errorf("%w: unsupported node at line %d", ErrMalformed, n.Line)
}

func scalarFromNode(n *yaml.Node) (Requirement, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if v == nil {
		return Equality{Value: Absent}, nil
	}
	return Equality{Value: v}, nil
}

func setFromNode(n *yaml.Node) (Requirement, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: !set expects a sequence at line %d", ErrMalformed, n.Line)
	}
	members := make([]Requirement, len(n.Content))
	for i, c := range n.Content {
		m, err := fromNode(c)
		if err != nil {
			return nil, fmt.Errorf("set member %d: %w", i, err)
		}
		members[i] = m
	}
	return Set{Members: members}, nil
}

func regexFromNode(n *yaml.Node) (Requirement, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("%w: !regex expects a scalar at line %d", ErrMalformed, n.Line)
	}
	re, err := regexp.Compile(n.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: !regex %q: %v", ErrMalformed, n.Value, err)
	}
	return regexMatcher(re), nil
}

func approxFromNode(n *yaml.Node) (Requirement, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: !approx expects a mapping with value and tolerance at line %d", ErrMalformed, n.Line)
	}
	var value, tolerance float64
	haveValue := false
	for i := 0; i+1 < len(n.Content); i += 2 {
		var f float64
		if err := n.Content[i+1].Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: !approx %s: %v", ErrMalformed, n.Content[i].Value, err)
		}
		switch n.Content[i].Value {
		case "value":
			value = f
			haveValue = true
		case "tolerance":
			tolerance = f
		default:
			return nil, fmt.Errorf("%w: !approx has unknown field %q", ErrMalformed, n.Content[i].Value)
		}
	}
	if !haveValue {
		return nil, fmt.Errorf("%w: !approx requires a value", ErrMalformed)
	}
	return normalizeApprox(Approx{Value: value, Tolerance: tolerance})
}

func mappingFromNode(n *yaml.Node) (Requirement, error) {
	entries := make([]Entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		var key any
		if err := n.Content[i].Decode(&key); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		sub, err := fromNode(n.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("entry %v: %w", key, err)
		}
		entries = append(entries, Entry{Key: key, Requirement: sub})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return CompareKeys(entries[i].Key, entries[j].Key) < 0
	})
	return Mapping{Entries: entries}, nil
}
