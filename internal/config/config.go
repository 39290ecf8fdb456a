package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Env             string
	AppSecret       string
	DatabaseURL     string
	Port            string
	SiteName        string
	SiteUrl         string
	MovieAPIURL     string
	MovieAPITimeout time.Duration
}

// Load 加载配置
func Load() *Config {
	timeoutSec, _ := strconv.Atoi(getEnv("MOVIE_API_TIMEOUT", "10"))

	// DATABASE_URL 为空时不启用搜索日志（历史记录走 Session，无需数据库）
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" && os.Getenv("DB_HOST") != "" {
		dbUser := getEnv("DB_USER", "postgres")
		dbPass := getEnv("DB_PASSWORD", "postgres")
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbName := getEnv("DB_NAME", "screenbox")
		dbSSL := getEnv("DB_SSLMODE", "disable")
		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)
	}

	appSecret := getEnv("APP_SECRET", "your-secret-key-change-in-production")
	if getEnv("APP_ENV", "development") == "production" && appSecret == "your-secret-key-change-in-production" {
		fmt.Println("【严重警告】生产环境正在使用默认密钥！请立即设置 APP_SECRET 环境变量。")
	}

	return &Config{
		Env:             getEnv("APP_ENV", "development"),
		AppSecret:       appSecret,
		DatabaseURL:     dbURL,
		Port:            getEnv("PORT", "5006"),
		SiteName:        getEnv("SITE_NAME", "Screenbox"),
		SiteUrl:         getEnv("SITE_URL", "http://localhost:5006"),
		MovieAPIURL:     getEnv("MOVIE_API_URL", "http://localhost:5000/api"),
		MovieAPITimeout: time.Duration(timeoutSec) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
