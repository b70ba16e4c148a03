package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

// InitRedis 初始化Redis客户端，未配置 REDIS_HOST 时跳过
func InitRedis(config Config) error {
	if config.RedisHost == "" {
		Logger.Infow("未配置Redis，会话注销功能不启用")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.GetRedisConnString(),
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	// 测试连接
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return fmt.Errorf("Redis连接测试失败: %w", err)
	}

	RedisClient = client
	return nil
}
