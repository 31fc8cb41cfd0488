package config

import (
	"log"

	"github.com/spf13/viper"
)

// Fixed business constants.
const SCHEDULE_SHEET_RANGE = "Schedule!A:D"
const SHEETS_ENDPOINT_BASE_V4 = "https://sheets.googleapis.com/v4"
const ROSTER_REFRESHER_SCHEDULE_MINUTES = 60

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Google Sheets configuration. Spreadsheet ID and API key are only
	// needed when the periodic refresher should run; interactive syncs
	// carry their own credentials per request.
	SheetsEndpointBase string `mapstructure:"SHEETS_ENDPOINT_BASE"`
	SheetsSpreadsheet  string `mapstructure:"SHEETS_SPREADSHEET_ID"`
	SheetsAPIKey       string `mapstructure:"SHEETS_API_KEY"`

	// Optional path to a JSON roster file loaded into the store at
	// startup, before any sync has run.
	RosterSeedPath string `mapstructure:"ROSTER_SEED_PATH"`

	// Storage backend: "memory" (default) or "redis".
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`

	// Redis configuration, used when StorageBackend is "redis".
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	RefreshMinutes int `mapstructure:"REFRESH_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SHEETS_ENDPOINT_BASE", SHEETS_ENDPOINT_BASE_V4)
	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_API_KEY", "")
	viper.SetDefault("ROSTER_SEED_PATH", "")
	viper.SetDefault("STORAGE_BACKEND", "memory")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REFRESH_MINUTES", ROSTER_REFRESHER_SCHEDULE_MINUTES)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "prod" || GetEnv() == "production"
}
