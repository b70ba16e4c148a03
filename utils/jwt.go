package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	jwtKey   []byte
	tokenTTL = 72 * time.Hour
)

// ErrNoSigningKey 未设置签名密钥时签发和校验都拒绝执行
var ErrNoSigningKey = errors.New("JWT 签名密钥未设置")

// Claims 自定义JWT声明，ID 字段即 jti，用于注销
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// InitJWT 设置签名密钥和令牌有效期，启动时调用一次
func InitJWT(secret string, ttl time.Duration) {
	jwtKey = []byte(secret)
	if ttl > 0 {
		tokenTTL = ttl
	}
}

// GenerateToken 生成JWT令牌
func GenerateToken(userID uint) (string, error) {
	if len(jwtKey) == 0 {
		return "", ErrNoSigningKey
	}
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        GenerateID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken 解析JWT令牌，兼容带 "Bearer " 前缀的写法
func ParseToken(tokenString string) (*Claims, error) {
	if len(jwtKey) == 0 {
		return nil, ErrNoSigningKey
	}
	tokenString = strings.TrimSpace(tokenString)
	if len(tokenString) > 7 && strings.EqualFold(tokenString[:7], "bearer ") {
		tokenString = strings.TrimSpace(tokenString[7:])
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.UserID != 0 {
		return claims, nil
	}

	return nil, fmt.Errorf("无效的令牌")
}
