package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/pixeldesignindia/organic-api/apperror"
)

// TokenPair is the access/refresh pair issued on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// IssueTokenPair signs an HS256 access token and a refresh token for the
// given user id.
func IssueTokenPair(userID, secret, refreshSecret string, expiry, refreshExpiry time.Duration) (TokenPair, error) {
	access, err := sign(userID, secret, expiry)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := sign(userID, refreshSecret, refreshExpiry)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func sign(userID, secret string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken parses the token and returns the user id claim.
func VerifyToken(tokenString, secret string) (string, error) {
	claims := &jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", apperror.Unauthorized("Token verification failed, access denied")
	}
	userID, ok := (*claims)["id"].(string)
	if !ok || userID == "" {
		return "", apperror.Unauthorized("User ID not found in token")
	}
	return userID, nil
}
