// AngelaMos | 2026
// dto.go

package auth

type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}
