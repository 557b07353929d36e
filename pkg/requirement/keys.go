/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package requirement

import (
	"fmt"
	"strings"
)

// CompareKeys imposes a total order over group keys of mixed types so
// that grouped comparison is deterministic even when the underlying
// containers are unordered. Keys are ranked by kind (absent, bool,
// number, string, everything else) and compared within a kind; values
// of other kinds compare by their string form.
func CompareKeys(a, b any) int {
	ra, rb := keyRank(a), keyRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch ra {
	case rankAbsent:
		return 0
	case rankBool:
		ab, bb := a.(bool), b.(bool)
		switch {
		case ab == bb:
			return 0
		case !ab:
			return -1
		default:
			return 1
		}
	case rankNumber:
		fa, _ := Number(a)
		fb, _ := Number(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	case rankString:
		return strings.Compare(a.(string), b.(string))
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

const (
	rankAbsent = iota
	rankBool
	rankNumber
	rankString
	rankOther
)

func keyRank(v any) int {
	if IsAbsent(v) {
		return rankAbsent
	}
	if _, ok := v.(bool); ok {
		return rankBool
	}
	if _, ok := Number(v); ok {
		return rankNumber
	}
	if _, ok := v.(string); ok {
		return rankString
	}
	return rankOther
}
