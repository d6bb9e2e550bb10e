package usecase

import (
	"cast-booking/internal/domain/reservation"
	"cast-booking/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (string, reservation.Viewer, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, reservation.Viewer, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	viewer := reservation.Viewer(claims.Role)
	if viewer != reservation.ViewerGuest && viewer != reservation.ViewerCast {
		return "", "", jwt.ErrInvalidToken
	}

	return claims.UserID, viewer, nil
}
