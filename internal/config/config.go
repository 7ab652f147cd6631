package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Lottery  LotteryConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
	// AdminPathPrefix is the non-obvious URL prefix the admin API is mounted
	// under. It is routing obfuscation, not a security boundary; the JWT
	// middleware is the actual gate.
	AdminPathPrefix string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// LotteryConfig holds the draw schedule configuration. The slot set has
// changed between deployments, so it is configuration rather than a constant.
type LotteryConfig struct {
	SlotTimes []string
	Timezone  string
}

// Location resolves the configured timezone. All calendar-day arithmetic
// (what counts as "today") happens in this location.
func (l LotteryConfig) Location() (*time.Location, error) {
	return time.LoadLocation(l.Timezone)
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("Server.AdminPathPrefix", "/admin-secret-access-2024")
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "karunya-draw-tracker")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("Lottery.SlotTimes", []string{"10:20", "12:20", "14:20", "16:20", "18:20"})
	viper.SetDefault("Lottery.Timezone", "Asia/Kolkata")
	viper.SetDefault("LogLevel", "info")
}
