package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/viper"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// 数据库配置
	DBDriver      string `mapstructure:"DB_DRIVER"` // sqlite, mysql, postgres
	DBPath        string `mapstructure:"DB_PATH"`
	DBHost        string `mapstructure:"DB_HOST"`
	DBPort        string `mapstructure:"DB_PORT"`
	DBUser        string `mapstructure:"DB_USER"`
	DBPassword    string `mapstructure:"DB_PASSWORD"`
	DBName        string `mapstructure:"DB_NAME"`
	DBAutoMigrate bool   `mapstructure:"DB_AUTO_MIGRATE"`

	// Redis配置，REDIS_HOST 为空时不启用
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// JWT配置
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	JWTExpireHours int    `mapstructure:"JWT_EXPIRE_HOURS"`

	// JWTSecretGenerated 开发环境未配置密钥时为 true，密钥每次启动随机生成
	JWTSecretGenerated bool `mapstructure:"-"`

	// 日志配置
	LogDir string `mapstructure:"LOG_DIR"`

	// 成长分析配置
	AnalysisWindowDays   int    `mapstructure:"ANALYSIS_WINDOW_DAYS"`
	AnalysisKeywordLimit int    `mapstructure:"ANALYSIS_KEYWORD_LIMIT"`
	SearchEngineURL      string `mapstructure:"SEARCH_ENGINE_URL"`
}

var defaults = map[string]interface{}{
	"ENVIRONMENT":            "development",
	"SERVER_PORT":            "3001",
	"DB_DRIVER":              "sqlite",
	"DB_PATH":                "growth.db",
	"DB_HOST":                "localhost",
	"DB_PORT":                "3306",
	"DB_USER":                "root",
	"DB_PASSWORD":            "",
	"DB_NAME":                "growth",
	"DB_AUTO_MIGRATE":        true,
	"REDIS_HOST":             "",
	"REDIS_PORT":             "6379",
	"REDIS_PASSWORD":         "",
	"REDIS_DB":               0,
	"JWT_SECRET":             "",
	"JWT_EXPIRE_HOURS":       72,
	"LOG_DIR":                "logs",
	"ANALYSIS_WINDOW_DAYS":   30,
	"ANALYSIS_KEYWORD_LIMIT": 5,
	"SEARCH_ENGINE_URL":      "https://www.google.com/search?q=",
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// 未注册的键不会被 AutomaticEnv 解析，所以每个键都设置默认值
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	if err = config.Validate(); err != nil {
		return
	}
	if config.JWTSecret == "" {
		if config.JWTSecret, err = randomSecret(); err != nil {
			return
		}
		config.JWTSecretGenerated = true
	}
	return
}

// randomSecret 生成32字节随机密钥，进程重启后之前签发的令牌全部失效
func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("生成JWT密钥失败: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// IsProduction 是否为生产环境
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate 检查启动所需的关键配置
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("不支持的数据库驱动: %q", c.DBDriver)
	}
	if c.JWTSecret == "" && c.Environment != "development" {
		return fmt.Errorf("JWT_SECRET 不能为空")
	}
	if c.JWTExpireHours <= 0 {
		return fmt.Errorf("JWT_EXPIRE_HOURS 必须大于0")
	}
	return nil
}

// GetDBConnString 返回数据库连接字符串
func (c *Config) GetDBConnString() string {
	switch c.DBDriver {
	case "mysql":
		// clientFoundRows 让未改变任何字段的整行更新也计入匹配行数
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
	default:
		return c.DBPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
}

// GetRedisConnString 返回Redis连接字符串
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
