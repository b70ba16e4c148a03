package utils

import "github.com/google/uuid"

// GenerateID 令牌 jti 和请求ID共用
func GenerateID() string {
	return uuid.NewString()
}
