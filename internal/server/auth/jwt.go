// Package auth issues and verifies the HS256 tokens that carry the caller's
// wallet address across the transport. Authorization policy lives elsewhere.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lasttx/willkeeper/internal/common"
)

// Claims carries the registered claims plus the caller's wallet address.
type Claims struct {
	jwt.RegisteredClaims
	Address string
}

// GenerateToken mints a signed token binding the given wallet address.
func GenerateToken(address string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Address: address,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetAddressFromToken verifies the token signature and returns the embedded
// wallet address.
func GetAddressFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Address, nil
}
