// AngelaMos | 2026
// builders.go

package query

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	FieldAge         = "age"
	FieldBiodataID   = "biodata_id"
	FieldBiodataType = "biodata_type"
	FieldDivision    = "permanent_division_name"
	FieldStatus      = "status"
	FieldName        = "name"
	FieldEmail       = "email"
)

var genders = map[string]string{
	"male":   "Male",
	"female": "Female",
}

// MemberListing sorts every member by age. Only "asc" sorts ascending;
// any other value, including none, sorts descending.
func MemberListing(sortParam string) Spec {
	dir := Desc
	if sortParam == "asc" {
		dir = Asc
	}
	return All().OrderBy(FieldAge, dir)
}

// MemberRange filters by gender, division and an inclusive "<low>-<high>"
// age range. The age range is mandatory; gender and division are
// constraints only when non-empty.
func MemberRange(gender, division, age string) (Spec, error) {
	spec := All()

	if g := strings.TrimSpace(gender); g != "" {
		canonical, ok := genders[strings.ToLower(g)]
		if !ok {
			return Spec{}, invalid("gender", "must be Male or Female")
		}
		spec = spec.Where(Eq(FieldBiodataType, canonical))
	}

	if d := strings.TrimSpace(division); d != "" {
		spec = spec.Where(Eq(FieldDivision, d))
	}

	low, high, err := ParseAgeRange(age)
	if err != nil {
		return Spec{}, err
	}

	return spec.Where(Gte(FieldAge, low), Lte(FieldAge, high)), nil
}

func ParseAgeRange(raw string) (int, int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, 0, invalid("age", "is required")
	}

	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return 0, 0, invalid("age", "must be formatted as <low>-<high>")
	}

	low, err := parseNonNegative(parts[0])
	if err != nil {
		return 0, 0, invalid("age", "lower bound must be a non-negative integer")
	}

	high, err := parseNonNegative(parts[1])
	if err != nil {
		return 0, 0, invalid("age", "upper bound must be a non-negative integer")
	}

	if low > high {
		return 0, 0, invalid("age", "lower bound exceeds upper bound")
	}

	return low, high, nil
}

func BiodataID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, invalid("biodata_id", "must be a positive integer")
	}
	return id, nil
}

func ByBiodataID(raw string) (Spec, error) {
	id, err := BiodataID(raw)
	if err != nil {
		return Spec{}, err
	}
	return All().Where(Eq(FieldBiodataID, id)), nil
}

// RecordID validates a store-assigned record identifier.
func RecordID(param, raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", invalid(param, "must be a valid id")
	}
	return id.String(), nil
}

// PremiumQueue selects members that have either requested or been
// granted premium status.
func PremiumQueue() Spec {
	return All().Where(In(FieldStatus, "pending", "premium"))
}

// UserSearch matches names containing search, ignoring case. An empty
// search matches every record.
func UserSearch(search string) Spec {
	if search == "" {
		return All()
	}
	return All().Where(ContainsFold(FieldName, search))
}

func ByEmail(email string) Spec {
	return All().Where(Eq(FieldEmail, NormalizeEmail(email)))
}

func MembersOfType(biodataType string) Spec {
	return All().Where(Eq(FieldBiodataType, biodataType))
}

func MembersWithStatus(status string) Spec {
	return All().Where(Eq(FieldStatus, status))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func parseNonNegative(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
