package config

import (
	"GrowthGo/models"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB 初始化全局数据库连接
func InitDB(config Config) error {
	db, err := OpenDB(config)
	if err != nil {
		return err
	}
	DB = db

	if config.DBAutoMigrate {
		if err := MigrateDB(DB); err != nil {
			return err
		}
	}
	return nil
}

// OpenDB 按配置的驱动打开数据库并设置连接池
func OpenDB(config Config) (*gorm.DB, error) {
	dsn := config.GetDBConnString()

	var dialector gorm.Dialector
	switch config.DBDriver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	logLevel := logger.Info
	switch config.Environment {
	case "production":
		logLevel = logger.Warn
	case "test":
		logLevel = logger.Silent
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}

	// 设置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// MigrateDB 进行数据库表结构迁移
func MigrateDB(db *gorm.DB) error {
	// 目标表先于任务表创建，任务表的外键依赖它
	err := db.AutoMigrate(
		&models.User{},
		&models.Inspiration{},
		&models.Knowledge{},
		&models.Category{},
		&models.Goal{},
		&models.Task{},
	)
	if err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}
	return nil
}

// CloseDB 关闭数据库连接
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
