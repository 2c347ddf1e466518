package usecase

import (
	"clinic-booking/internal/domain/user"
	"clinic-booking/internal/pkg/jwt"
	"clinic-booking/internal/usecase/shared"
)

// TokenValidator turns a platform identity token into the caller used by
// every command and query.
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return shared.Actor{}, err
	}

	role, err := user.NewRole(claims.AppRole)
	if err != nil {
		return shared.Actor{}, err
	}

	return shared.Actor{UserID: userID, Role: role}, nil
}
