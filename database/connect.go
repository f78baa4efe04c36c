// file: database/connect.go
package database

import (
	"log"
	"time"

	"github.com/hemanthrajvardhan/ctf/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Connect 建立数据库连接并配置连接池，句柄由调用方注入给各组件
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		// 统一将唯一键冲突翻译为 gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// SetMaxIdleConns 用于设置连接池中空闲连接的最大数量。
	sqlDB.SetMaxIdleConns(10)

	// SetMaxOpenConns 设置打开数据库连接的最大数量。
	sqlDB.SetMaxOpenConns(100)

	// SetConnMaxLifetime 设置了连接可复用的最大时间。
	// 这对于解决 MySQL 的 'wait_timeout' 问题至关重要。
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
	return db, nil
}

// Migrate 同步全部表结构
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.Hint{},
		&models.Category{},
		&models.Submission{},
		&models.Solve{},
	)
}
