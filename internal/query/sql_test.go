// AngelaMos | 2026
// sql_test.go

package query

import (
	"reflect"
	"testing"
)

var memberColumns = Columns{
	FieldAge:         "age",
	FieldBiodataType: "biodata_type",
	FieldDivision:    "permanent_division_name",
	FieldStatus:      "status",
	FieldBiodataID:   "biodata_id",
}

func TestSQLRange(t *testing.T) {
	spec, err := MemberRange("Male", "Khulna", "25-35")
	if err != nil {
		t.Fatalf("MemberRange() error = %v", err)
	}

	got, err := spec.SQL(memberColumns)
	if err != nil {
		t.Fatalf("SQL() error = %v", err)
	}

	wantWhere := "biodata_type = $1 AND permanent_division_name = $2 AND age >= $3 AND age <= $4"
	if got.Where != wantWhere {
		t.Errorf("Where = %q\nwant   %q", got.Where, wantWhere)
	}

	wantArgs := []any{"Male", "Khulna", 25, 35}
	if !reflect.DeepEqual(got.Args, wantArgs) {
		t.Errorf("Args = %v, want %v", got.Args, wantArgs)
	}
	if got.OrderBy != "" {
		t.Errorf("OrderBy = %q, want empty", got.OrderBy)
	}
}

func TestSQLSortAndEmpty(t *testing.T) {
	got, err := MemberListing("asc").SQL(memberColumns)
	if err != nil {
		t.Fatalf("SQL() error = %v", err)
	}
	if got.Clause() != " ORDER BY age ASC" {
		t.Errorf("Clause() = %q", got.Clause())
	}

	got, err = All().SQL(memberColumns)
	if err != nil {
		t.Fatalf("SQL() error = %v", err)
	}
	if got.Clause() != "" || len(got.Args) != 0 {
		t.Errorf("empty spec compiled to %q %v", got.Clause(), got.Args)
	}
}

func TestSQLIn(t *testing.T) {
	got, err := PremiumQueue().SQL(memberColumns)
	if err != nil {
		t.Fatalf("SQL() error = %v", err)
	}
	if got.Where != "status IN ($1, $2)" {
		t.Errorf("Where = %q", got.Where)
	}
	if !reflect.DeepEqual(got.Args, []any{"pending", "premium"}) {
		t.Errorf("Args = %v", got.Args)
	}
}

func TestSQLContainsFoldEscapes(t *testing.T) {
	cols := Columns{FieldName: "name"}

	got, err := UserSearch(`50%_off\`).SQL(cols)
	if err != nil {
		t.Fatalf("SQL() error = %v", err)
	}
	if got.Where != "name ILIKE $1" {
		t.Errorf("Where = %q", got.Where)
	}
	if got.Args[0] != `%50\%\_off\\%` {
		t.Errorf("pattern = %q", got.Args[0])
	}
}

func TestSQLRejectsUnknownField(t *testing.T) {
	spec := All().Where(Eq("password; DROP TABLE users", "x"))
	if _, err := spec.SQL(memberColumns); err == nil {
		t.Fatal("expected unknown field error")
	}

	sorted := All().OrderBy("name", Asc)
	if _, err := sorted.SQL(memberColumns); err == nil {
		t.Fatal("expected unknown sort field error")
	}
}
