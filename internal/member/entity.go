// AngelaMos | 2026
// entity.go

package member

import (
	"time"

	"github.com/carterperez-dev/matrimony-backend/internal/query"
)

// Member is a biodata profile. BiodataID is assigned outside the store
// and is not unique at the table level.
type Member struct {
	ID                    string    `db:"id"                      json:"id"`
	BiodataID             int       `db:"biodata_id"              json:"biodata_id"`
	Email                 string    `db:"email"                   json:"email"`
	Name                  string    `db:"name"                    json:"name"`
	BiodataType           string    `db:"biodata_type"            json:"biodata_type"`
	Age                   int       `db:"age"                     json:"age"`
	PermanentDivisionName string    `db:"permanent_division_name" json:"permanent_division_name"`
	PresentDivisionName   string    `db:"present_division_name"   json:"present_division_name"`
	Occupation            string    `db:"occupation"              json:"occupation"`
	Height                string    `db:"height"                  json:"height"`
	Weight                string    `db:"weight"                  json:"weight"`
	Race                  string    `db:"race"                    json:"race"`
	FatherName            string    `db:"father_name"             json:"father_name"`
	MotherName            string    `db:"mother_name"             json:"mother_name"`
	DateOfBirth           string    `db:"date_of_birth"           json:"date_of_birth"`
	ExpectedPartnerAge    string    `db:"expected_partner_age"    json:"expected_partner_age"`
	ExpectedPartnerHeight string    `db:"expected_partner_height" json:"expected_partner_height"`
	ExpectedPartnerWeight string    `db:"expected_partner_weight" json:"expected_partner_weight"`
	MobileNumber          string    `db:"mobile_number"           json:"mobile_number"`
	ProfileImage          string    `db:"profile_image"           json:"profile_image"`
	Status                string    `db:"status"                  json:"status"`
	CreatedAt             time.Time `db:"created_at"              json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"              json:"updated_at"`
}

// Document exposes the filterable fields so in-memory stores can evaluate
// a query.Spec with Match or Apply.
func (m *Member) Document() query.Document {
	return query.Document{
		query.FieldBiodataID:   m.BiodataID,
		query.FieldEmail:       m.Email,
		query.FieldName:        m.Name,
		query.FieldBiodataType: m.BiodataType,
		query.FieldAge:         m.Age,
		query.FieldDivision:    m.PermanentDivisionName,
		query.FieldStatus:      m.Status,
	}
}

const (
	TypeMale   = "Male"
	TypeFemale = "Female"
)

const (
	StatusPending = "pending"
	StatusPremium = "premium"
)

func ValidStatus(status string) bool {
	return status == StatusPending || status == StatusPremium
}
