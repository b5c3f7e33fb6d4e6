package helper

import (
	"camp_registration/model"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

func GenerateAccessToken(secret []byte, tokenClaim model.TokenClaim, ttl time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sessionId"] = tokenClaim.SessionId
	claims["username"] = tokenClaim.Username
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(ttl).Unix()

	return token.SignedString(secret)
}

func ParseToken(secret []byte, tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
}

// ClaimFromToken reads the session claim out of a parsed token.
func ClaimFromToken(token *jwt.Token) (model.TokenClaim, error) {
	if token == nil || !token.Valid {
		return model.TokenClaim{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, ErrInvalidToken
	}
	sid, _ := claims["sessionId"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if sid == "" {
		return model.TokenClaim{}, ErrInvalidToken
	}
	return model.TokenClaim{SessionId: sid, Username: username, Role: role}, nil
}
