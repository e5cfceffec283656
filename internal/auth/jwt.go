package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// RecruiterClaims are minted by the platform session service when a
// recruiter signs in; this API only verifies them.
type RecruiterClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func ParseToken(secret, tokenStr string) (*RecruiterClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &RecruiterClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*RecruiterClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenUnverifiable
}
