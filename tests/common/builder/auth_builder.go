//go:build unit || e2e

package builder

import (
	reqdto "elearning-storefront/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

type RegisterBuilder struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

func NewRegisterBuilder() *RegisterBuilder {
	return &RegisterBuilder{
		Name:            "สมหญิง ใจดี",
		Email:           "somying@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func (r *RegisterBuilder) WithEmail(email string) *RegisterBuilder {
	r.Email = email
	return r
}

func (r *RegisterBuilder) BuildDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:            r.Name,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}
