// file: config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 集中保存服务运行所需的全部配置项
type Config struct {
	Port          string
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration
}

// Load 从 .env / 系统环境变量加载配置
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.DatabaseDSN == "" {
		// 未提供完整 DSN 时按单项参数拼接
		user := getEnvOrDefault("DB_USER", "root")
		password := getEnvOrDefault("DB_PASSWORD", "")
		host := getEnvOrDefault("DB_HOST", "localhost")
		port := getEnvOrDefault("DB_PORT", "3306")
		name := getEnvOrDefault("DB_NAME", "ctfboard")
		cfg.DatabaseDSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, password, host, port, name)
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid REDIS_DB value %q: %v", v, err)
		}
		cfg.RedisDB = n
	}

	ttlHours := 7 * 24
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Fatalf("Invalid SESSION_TTL_HOURS value %q", v)
		}
		ttlHours = n
	}
	cfg.SessionTTL = time.Duration(ttlHours) * time.Hour

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
