// AngelaMos | 2026
// dto.go

package member

type CreateMemberRequest struct {
	BiodataID             int    `json:"biodata_id"              validate:"omitempty,gt=0"`
	Email                 string `json:"email"                   validate:"required,email,max=255"`
	Name                  string `json:"name"                    validate:"required,min=1,max=100"`
	BiodataType           string `json:"biodata_type"            validate:"required,oneof=Male Female"`
	Age                   int    `json:"age"                     validate:"required,gte=18,lte=120"`
	PermanentDivisionName string `json:"permanent_division_name" validate:"required,max=100"`
	PresentDivisionName   string `json:"present_division_name"   validate:"max=100"`
	Occupation            string `json:"occupation"              validate:"max=100"`
	Height                string `json:"height"                  validate:"max=20"`
	Weight                string `json:"weight"                  validate:"max=20"`
	Race                  string `json:"race"                    validate:"max=50"`
	FatherName            string `json:"father_name"             validate:"max=100"`
	MotherName            string `json:"mother_name"             validate:"max=100"`
	DateOfBirth           string `json:"date_of_birth"           validate:"omitempty,datetime=2006-01-02"`
	ExpectedPartnerAge    string `json:"expected_partner_age"    validate:"max=20"`
	ExpectedPartnerHeight string `json:"expected_partner_height" validate:"max=20"`
	ExpectedPartnerWeight string `json:"expected_partner_weight" validate:"max=20"`
	MobileNumber          string `json:"mobile_number"           validate:"max=30"`
	ProfileImage          string `json:"profile_image"           validate:"omitempty,url,max=2048"`
}

// UpdateMemberRequest patches only the fields that are present.
// Email, biodata id and status are not editable here.
type UpdateMemberRequest struct {
	Name                  *string `json:"name,omitempty"                    validate:"omitempty,min=1,max=100"`
	BiodataType           *string `json:"biodata_type,omitempty"            validate:"omitempty,oneof=Male Female"`
	Age                   *int    `json:"age,omitempty"                     validate:"omitempty,gte=18,lte=120"`
	PermanentDivisionName *string `json:"permanent_division_name,omitempty" validate:"omitempty,max=100"`
	PresentDivisionName   *string `json:"present_division_name,omitempty"   validate:"omitempty,max=100"`
	Occupation            *string `json:"occupation,omitempty"              validate:"omitempty,max=100"`
	Height                *string `json:"height,omitempty"                  validate:"omitempty,max=20"`
	Weight                *string `json:"weight,omitempty"                  validate:"omitempty,max=20"`
	Race                  *string `json:"race,omitempty"                    validate:"omitempty,max=50"`
	FatherName            *string `json:"father_name,omitempty"             validate:"omitempty,max=100"`
	MotherName            *string `json:"mother_name,omitempty"             validate:"omitempty,max=100"`
	DateOfBirth           *string `json:"date_of_birth,omitempty"           validate:"omitempty,datetime=2006-01-02"`
	ExpectedPartnerAge    *string `json:"expected_partner_age,omitempty"    validate:"omitempty,max=20"`
	ExpectedPartnerHeight *string `json:"expected_partner_height,omitempty" validate:"omitempty,max=20"`
	ExpectedPartnerWeight *string `json:"expected_partner_weight,omitempty" validate:"omitempty,max=20"`
	MobileNumber          *string `json:"mobile_number,omitempty"           validate:"omitempty,max=30"`
	ProfileImage          *string `json:"profile_image,omitempty"           validate:"omitempty,url,max=2048"`
}

// Changes lists the column assignments the patch carries, in a fixed
// order. Column names come from this list only.
func (u UpdateMemberRequest) Changes() []Change {
	var out []Change
	add := func(column string, v *string) {
		if v != nil {
			out = append(out, Change{Column: column, Value: *v})
		}
	}

	add("name", u.Name)
	add("biodata_type", u.BiodataType)
	if u.Age != nil {
		out = append(out, Change{Column: "age", Value: *u.Age})
	}
	add("permanent_division_name", u.PermanentDivisionName)
	add("present_division_name", u.PresentDivisionName)
	add("occupation", u.Occupation)
	add("height", u.Height)
	add("weight", u.Weight)
	add("race", u.Race)
	add("father_name", u.FatherName)
	add("mother_name", u.MotherName)
	add("date_of_birth", u.DateOfBirth)
	add("expected_partner_age", u.ExpectedPartnerAge)
	add("expected_partner_height", u.ExpectedPartnerHeight)
	add("expected_partner_weight", u.ExpectedPartnerWeight)
	add("mobile_number", u.MobileNumber)
	add("profile_image", u.ProfileImage)

	return out
}

type Change struct {
	Column string
	Value  any
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending premium"`
}

func (r CreateMemberRequest) toMember() *Member {
	return &Member{
		BiodataID:             r.BiodataID,
		Name:                  r.Name,
		BiodataType:           r.BiodataType,
		Age:                   r.Age,
		PermanentDivisionName: r.PermanentDivisionName,
		PresentDivisionName:   r.PresentDivisionName,
		Occupation:            r.Occupation,
		Height:                r.Height,
		Weight:                r.Weight,
		Race:                  r.Race,
		FatherName:            r.FatherName,
		MotherName:            r.MotherName,
		DateOfBirth:           r.DateOfBirth,
		ExpectedPartnerAge:    r.ExpectedPartnerAge,
		ExpectedPartnerHeight: r.ExpectedPartnerHeight,
		ExpectedPartnerWeight: r.ExpectedPartnerWeight,
		MobileNumber:          r.MobileNumber,
		ProfileImage:          r.ProfileImage,
	}
}
