// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/carterperez-dev/matrimony-backend/internal/query"
)

type User struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	PhotoURL  string    `db:"photo_url"`
	Role      string    `db:"role"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Document exposes the filterable fields for in-memory stores.
func (u *User) Document() query.Document {
	return query.Document{
		query.FieldName:   u.Name,
		query.FieldEmail:  u.Email,
		query.FieldStatus: u.Status,
	}
}

// RoleNone is stored as the empty string.
const (
	RoleNone  = ""
	RoleAdmin = "admin"
)

const (
	StatusFree    = "free"
	StatusPremium = "premium"
)
