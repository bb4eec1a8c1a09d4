package utils

import (
	"errors"
	"fmt"

	"newtube-go/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// SessionClaims 外部身份服务签发的会话令牌 Claims
// Subject 为身份服务侧的用户标识（users.external_id）
type SessionClaims struct {
	jwt.RegisteredClaims
}

// ParseSessionToken 解析并校验会话令牌，返回外部用户标识
func ParseSessionToken(tokenString string) (string, error) {
	authCfg := config.GetAuth()

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(authCfg.JWTSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	if authCfg.Issuer != "" && claims.Issuer != authCfg.Issuer {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
