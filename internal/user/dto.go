// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Name     string `json:"name"     validate:"max=100"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url,max=2048"`
}

// UpdateUserRoleRequest uses "none" on the wire for the absent role.
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin none"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=free premium"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photoURL"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

func ToUserResponse(u *User) UserResponse {
	role := u.Role
	if role == RoleNone {
		role = "none"
	}
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
