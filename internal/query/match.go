// AngelaMos | 2026
// match.go

package query

import (
	"cmp"
	"slices"
	"strings"
)

// Document is a flat field view of a stored record.
type Document map[string]any

// Match reports whether doc satisfies every condition of the spec, with
// the same semantics the compiled SQL has. It backs in-memory stores.
func (s Spec) Match(doc Document) bool {
	for _, c := range s.Conditions {
		if !matchCondition(c, doc[c.Field]) {
			return false
		}
	}
	return true
}

// Apply filters docs and orders the survivors by the spec's sort, the
// way an in-memory store answers a listing. The input slice is left
// untouched.
func (s Spec) Apply(docs []Document) []Document {
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if s.Match(d) {
			out = append(out, d)
		}
	}

	if s.Sort != nil {
		field, dir := s.Sort.Field, s.Sort.Direction
		slices.SortStableFunc(out, func(a, b Document) int {
			c := compareValues(a[field], b[field])
			if dir == Desc {
				return -c
			}
			return c
		})
	}

	return out
}

func matchCondition(c Condition, v any) bool {
	switch c.Op {
	case OpEq:
		if n, ok := toInt(c.Value); ok {
			m, ok := toInt(v)
			return ok && m == n
		}
		return v == c.Value
	case OpGte:
		return compareValues(v, c.Value) >= 0 && v != nil
	case OpLte:
		return compareValues(v, c.Value) <= 0 && v != nil
	case OpIn:
		values, _ := c.Value.([]string)
		str, ok := v.(string)
		return ok && slices.Contains(values, str)
	case OpContainsFold:
		substr, _ := c.Value.(string)
		str, ok := v.(string)
		return ok && strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	default:
		return false
	}
}

func compareValues(a, b any) int {
	if x, ok := toInt(a); ok {
		if y, ok := toInt(b); ok {
			return cmp.Compare(x, y)
		}
	}
	x, _ := a.(string)
	y, _ := b.(string)
	return cmp.Compare(x, y)
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}
