package response

import (
	"elearning-storefront/internal/usecase/commands"
	"elearning-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Provider string    `json:"provider,omitempty"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"`
	User      UserResponse `json:"user"`
}

func FromAuthResult(r *commands.AuthResult) AuthResponse {
	return AuthResponse{
		Token:     r.Token,
		ExpiresIn: int64(r.ExpiresIn.Seconds()),
		User: UserResponse{
			ID:    r.Session.UserID,
			Name:  r.Session.Name,
			Email: r.Session.Email,
			Role:  string(r.Session.Role),
		},
	}
}

func FromUserView(v *queries.AuthorizedUserView) UserResponse {
	return UserResponse{
		ID:       v.ID,
		Name:     v.Name,
		Email:    v.Email,
		Role:     v.Role,
		Provider: v.Provider,
	}
}
