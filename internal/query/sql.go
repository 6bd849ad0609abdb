// AngelaMos | 2026
// sql.go

package query

import (
	"fmt"
	"strings"
)

// Columns whitelists the fields a repository accepts and maps each to its
// column expression. Field names never reach SQL text unless listed here.
type Columns map[string]string

type Compiled struct {
	Where   string
	OrderBy string
	Args    []any
}

// Clause returns the WHERE and ORDER BY fragments ready to append to a
// SELECT, each prefixed with a space when present.
func (c Compiled) Clause() string {
	var b strings.Builder
	if c.Where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(c.Where)
	}
	if c.OrderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(c.OrderBy)
	}
	return b.String()
}

// SQL compiles the spec using $n placeholders numbered from 1.
func (s Spec) SQL(cols Columns) (Compiled, error) {
	var (
		conds []string
		args  []any
	)

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	for _, c := range s.Conditions {
		col, ok := cols[c.Field]
		if !ok {
			return Compiled{}, fmt.Errorf("compile filter: unknown field %q", c.Field)
		}

		switch c.Op {
		case OpEq:
			conds = append(conds, col+" = "+next(c.Value))
		case OpGte:
			conds = append(conds, col+" >= "+next(c.Value))
		case OpLte:
			conds = append(conds, col+" <= "+next(c.Value))
		case OpIn:
			values, ok := c.Value.([]string)
			if !ok {
				return Compiled{}, fmt.Errorf("compile filter: %s needs []string", c.Field)
			}
			if len(values) == 0 {
				conds = append(conds, "FALSE")
				continue
			}
			placeholders := make([]string, 0, len(values))
			for _, v := range values {
				placeholders = append(placeholders, next(v))
			}
			conds = append(conds, col+" IN ("+strings.Join(placeholders, ", ")+")")
		case OpContainsFold:
			substr, ok := c.Value.(string)
			if !ok {
				return Compiled{}, fmt.Errorf("compile filter: %s needs string", c.Field)
			}
			conds = append(conds, col+" ILIKE "+next("%"+escapeLike(substr)+"%"))
		default:
			return Compiled{}, fmt.Errorf("compile filter: unsupported op %q", c.Op)
		}
	}

	out := Compiled{
		Where: strings.Join(conds, " AND "),
		Args:  args,
	}

	if s.Sort != nil {
		col, ok := cols[s.Sort.Field]
		if !ok {
			return Compiled{}, fmt.Errorf("compile sort: unknown field %q", s.Sort.Field)
		}
		dir := "DESC"
		if s.Sort.Direction == Asc {
			dir = "ASC"
		}
		out.OrderBy = col + " " + dir
	}

	return out, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
