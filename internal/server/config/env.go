package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by parseEnv.
const EnvPrefix = "ADMINSETTINGS_"

// dotenvLoad is a seam for tests.
var dotenvLoad = godotenv.Load

// parseEnv loads a .env file when present (existing variables win) and
// overlays ADMINSETTINGS_* variables onto config. Malformed numbers or
// durations panic, like the other configuration layers.
func parseEnv(config *Config) {
	_ = dotenvLoad()

	envString(&config.EndpointAddrGRPC, "GRPC_ADDR")
	envString(&config.EndpointAddrHTTP, "HTTP_ADDR")
	envString(&config.DatabaseDSN, "DATABASE_DSN")
	envString(&config.SecretKey, "SECRET_KEY")
	envDuration(&config.AccessTokenValidityDuration, "ACCESS_TOKEN_TTL")
	envDuration(&config.RefreshTokenValidityDuration, "REFRESH_TOKEN_TTL")
	envDuration(&config.RecentLoginWindow, "RECENT_LOGIN_WINDOW")
	envInt(&config.MinPasswordLength, "MIN_PASSWORD_LENGTH")
	envString(&config.ProfileStore, "PROFILE_STORE")
	envString(&config.RedisAddr, "REDIS_ADDR")
	envString(&config.RedisPassword, "REDIS_PASSWORD")
	envInt(&config.RedisDB, "REDIS_DB")
	envString(&config.RedisKeyPrefix, "REDIS_KEY_PREFIX")
	envString(&config.S3RootUser, "S3_ROOT_USER")
	envString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	envString(&config.S3Bucket, "S3_BUCKET")
	envString(&config.S3Region, "S3_REGION")
	envString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	envString(&config.AdminEmail, "ADMIN_EMAIL")
	envString(&config.AdminPassword, "ADMIN_PASSWORD")
	envString(&config.AdminFirstName, "ADMIN_FIRST_NAME")
	envString(&config.AdminLastName, "ADMIN_LAST_NAME")
	envString(&config.LogLevel, "LOG_LEVEL")
}

func envString(dst *string, name string) {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok {
		*dst = v
	}
}

func envInt(dst *int, name string) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}

func envDuration(dst *time.Duration, name string) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
