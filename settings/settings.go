package settings

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var lock = &sync.Mutex{}
var singleSettingsInstace *settings

type settings struct {
	JWT_SECRET_KEY      string
	ACCESS_TOKEN_HOURS  int
	REFRESH_TOKEN_DAYS  int
	MONGO_DB            string
	MONGO_ROOT_USERNAME string
	MONGO_ROOT_PASSWORD string
	MONGO_HOST          string
	MONGO_CONNECTION    string
	NATS_HOST           string
	AWS_BUCKET          string
	AWS_REGION          string
	ELS_HOST            string
	ELS_PASSWORD        string
	ELS_PORT            int
	ELS_USERNAME        string
	ORGANIZATION_NAME   string
	ADMIN_EMAIL         string
	ADMIN_PASSWORD      string
	CLIENT_URL          string
	NODE_ENV            string
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func newSettings() *settings {
	return &settings{
		JWT_SECRET_KEY:      os.Getenv("JWT_SECRET_KEY"),
		ACCESS_TOKEN_HOURS:  getEnvInt("ACCESS_TOKEN_HOURS", 24),
		REFRESH_TOKEN_DAYS:  getEnvInt("REFRESH_TOKEN_DAYS", 30),
		MONGO_DB:            os.Getenv("MONGO_DB"),
		MONGO_ROOT_USERNAME: os.Getenv("MONGO_ROOT_USERNAME"),
		MONGO_ROOT_PASSWORD: os.Getenv("MONGO_ROOT_PASSWORD"),
		MONGO_HOST:          os.Getenv("MONGO_HOST"),
		MONGO_CONNECTION:    getEnv("MONGO_CONNECTION", "mongodb"),
		NATS_HOST:           os.Getenv("NATS_HOST"),
		ELS_HOST:            os.Getenv("ELS_HOST"),
		ELS_PORT:            getEnvInt("ELS_PORT", 9200),
		ELS_PASSWORD:        os.Getenv("ELS_PASSWORD"),
		ELS_USERNAME:        os.Getenv("ELS_USERNAME"),
		AWS_BUCKET:          os.Getenv("AWS_BUCKET"),
		AWS_REGION:          os.Getenv("AWS_REGION"),
		ORGANIZATION_NAME:   getEnv("ORGANIZATION_NAME", "ALCALDÍA MUNICIPAL DE QUIBDÓ"),
		ADMIN_EMAIL:         getEnv("ADMIN_EMAIL", "admin@redinclusion.com"),
		ADMIN_PASSWORD:      getEnv("ADMIN_PASSWORD", "RedInclusion2024"),
		CLIENT_URL:          os.Getenv("CLIENT_URL"),
		NODE_ENV:            os.Getenv("NODE_ENV"),
	}
}

func init() {
	if os.Getenv("NODE_ENV") != "prod" {
		// Without .env the process environment is used as is
		godotenv.Load()
	}
}

func GetSettings() *settings {
	lock.Lock()
	defer lock.Unlock()
	if singleSettingsInstace == nil {
		singleSettingsInstace = newSettings()
	}
	return singleSettingsInstace
}
