package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/$GOFILE -package=usecase

import (
	"elearning-storefront/internal/pkg/jwt"
	"elearning-storefront/internal/pkg/session"
)

// TokenValidator turns a session cookie into the request's session.
type TokenValidator interface {
	ValidateToken(tokenString string) (session.Session, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (session.Session, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return session.Session{}, err
	}
	return claims.Session()
}
