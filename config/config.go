package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("BK_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("BK_DEBUG") == "true"
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("BK_PORT"))
	if err != nil || port <= 0 {
		return 3000
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("BK_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/bookkeeper"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetRedisAddr() string {
	addr := os.Getenv("BK_REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}
	return addr
}

func GetRedisPassword() string {
	return os.Getenv("BK_REDIS_PASSWORD")
}

func GetRedisDB() int {
	db, err := strconv.Atoi(os.Getenv("BK_REDIS_DB"))
	if err != nil {
		return 0
	}
	return db
}

func GetTokenSecret() string {
	secret := os.Getenv("BK_JWT_SECRET")
	if secret == "" {
		secret = "bookkeeper"
	}
	return secret
}

// GetTokenExpiry returns the lifetime shared by the signed token and the
// cached session marker.
func GetTokenExpiry() time.Duration {
	expiry, err := time.ParseDuration(os.Getenv("BK_JWT_EXPIRES_IN"))
	if err != nil || expiry <= 0 {
		return 7 * 24 * time.Hour
	}
	return expiry
}

// GetInitPassword is the password assigned to accounts auto-created by the
// WeChat login flow.
func GetInitPassword() string {
	pwd := os.Getenv("BK_USER_INIT_PASSWORD")
	if pwd == "" {
		pwd = "123456"
	}
	return pwd
}

func GetWechatAppID() string {
	return os.Getenv("BK_WECHAT_APPID")
}

func GetWechatSecret() string {
	return os.Getenv("BK_WECHAT_SECRET")
}
