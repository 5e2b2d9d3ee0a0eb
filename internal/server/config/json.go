package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/adminsettings/internal/flagx"
	"github.com/dmitrijs2005/adminsettings/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "1s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. It is pre-filled from the current Config, so keys
// missing from the file keep their previous values.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	RecentLoginWindow            timex.Duration `json:"recent_login_window"`
	MinPasswordLength            int            `json:"min_password_length"`
	ProfileStore                 string         `json:"profile_store"`
	RedisAddr                    string         `json:"redis_addr"`
	RedisPassword                string         `json:"redis_password"`
	RedisDB                      int            `json:"redis_db"`
	RedisKeyPrefix               string         `json:"redis_key_prefix"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	AdminEmail                   string         `json:"admin_email"`
	AdminPassword                string         `json:"admin_password"`
	AdminFirstName               string         `json:"admin_first_name"`
	AdminLastName                string         `json:"admin_last_name"`
	LogLevel                     string         `json:"log_level"`
}

// parseJson loads configuration values from the JSON file named by the -c
// or -config command-line flags into config. Without either flag nothing
// is loaded. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{
		EndpointAddrGRPC:             config.EndpointAddrGRPC,
		EndpointAddrHTTP:             config.EndpointAddrHTTP,
		DatabaseDSN:                  config.DatabaseDSN,
		SecretKey:                    config.SecretKey,
		AccessTokenValidityDuration:  timex.Duration{Duration: config.AccessTokenValidityDuration},
		RefreshTokenValidityDuration: timex.Duration{Duration: config.RefreshTokenValidityDuration},
		RecentLoginWindow:            timex.Duration{Duration: config.RecentLoginWindow},
		MinPasswordLength:            config.MinPasswordLength,
		ProfileStore:                 config.ProfileStore,
		RedisAddr:                    config.RedisAddr,
		RedisPassword:                config.RedisPassword,
		RedisDB:                      config.RedisDB,
		RedisKeyPrefix:               config.RedisKeyPrefix,
		S3RootUser:                   config.S3RootUser,
		S3RootPassword:               config.S3RootPassword,
		S3Bucket:                     config.S3Bucket,
		S3Region:                     config.S3Region,
		S3BaseEndpoint:               config.S3BaseEndpoint,
		AdminEmail:                   config.AdminEmail,
		AdminPassword:                config.AdminPassword,
		AdminFirstName:               config.AdminFirstName,
		AdminLastName:                config.AdminLastName,
		LogLevel:                     config.LogLevel,
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	config.RecentLoginWindow = c.RecentLoginWindow.Duration
	config.MinPasswordLength = c.MinPasswordLength
	config.ProfileStore = c.ProfileStore
	config.RedisAddr = c.RedisAddr
	config.RedisPassword = c.RedisPassword
	config.RedisDB = c.RedisDB
	config.RedisKeyPrefix = c.RedisKeyPrefix
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.AdminEmail = c.AdminEmail
	config.AdminPassword = c.AdminPassword
	config.AdminFirstName = c.AdminFirstName
	config.AdminLastName = c.AdminLastName
	config.LogLevel = c.LogLevel
}
