package api

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL bounds every issued admin token to one hour.
const tokenTTL = time.Hour

var errInvalidToken = fmt.Errorf("invalid token")

type adminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (s *Server) issueAdminToken(email string) (string, error) {
	now := time.Now()
	claims := adminClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// parseAdminToken validates an admin bearer token and returns the email it
// was issued for.
func (s *Server) parseAdminToken(tokenString string) (string, error) {
	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errInvalidToken
	}

	return claims.Email, nil
}
