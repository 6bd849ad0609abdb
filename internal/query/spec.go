// AngelaMos | 2026
// spec.go

// Package query turns loosely typed request parameters into store
// filters. Builders are pure: they perform no I/O and every validation
// failure is a single invalid-input error kind carrying a readable detail.
package query

import (
	"fmt"
	"net/http"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
)

type Op string

const (
	OpEq           Op = "eq"
	OpGte          Op = "gte"
	OpLte          Op = "lte"
	OpIn           Op = "in"
	OpContainsFold Op = "icontains"
)

type Direction int

const (
	Asc  Direction = 1
	Desc Direction = -1
)

type Condition struct {
	Field string
	Op    Op
	Value any
}

type Sort struct {
	Field     string
	Direction Direction
}

// Spec is a conjunction of conditions with an optional sort.
type Spec struct {
	Conditions []Condition
	Sort       *Sort
}

func All() Spec {
	return Spec{}
}

func (s Spec) Where(conds ...Condition) Spec {
	out := Spec{
		Conditions: make([]Condition, 0, len(s.Conditions)+len(conds)),
		Sort:       s.Sort,
	}
	out.Conditions = append(out.Conditions, s.Conditions...)
	out.Conditions = append(out.Conditions, conds...)
	return out
}

func (s Spec) OrderBy(field string, dir Direction) Spec {
	out := s.Where()
	out.Sort = &Sort{Field: field, Direction: dir}
	return out
}

func (s Spec) IsEmpty() bool {
	return len(s.Conditions) == 0 && s.Sort == nil
}

func Eq(field string, value any) Condition {
	return Condition{Field: field, Op: OpEq, Value: value}
}

func Gte(field string, value int) Condition {
	return Condition{Field: field, Op: OpGte, Value: value}
}

func Lte(field string, value int) Condition {
	return Condition{Field: field, Op: OpLte, Value: value}
}

func In(field string, values ...string) Condition {
	return Condition{Field: field, Op: OpIn, Value: values}
}

func ContainsFold(field, substr string) Condition {
	return Condition{Field: field, Op: OpContainsFold, Value: substr}
}

// ErrorCode is the machine readable code of every builder failure.
const ErrorCode = "INVALID_QUERY_PARAMETERS"

func invalid(param, detail string) error {
	return core.NewAppError(
		core.ErrInvalidInput,
		fmt.Sprintf("invalid query parameters: %s: %s", param, detail),
		http.StatusBadRequest,
		ErrorCode,
	)
}
