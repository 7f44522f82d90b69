package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration, shared by the CLI client and
// the dev backend.
type Config struct {
	// client settings
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	SessionFile        string `mapstructure:"SESSION_FILE"`

	// devserver settings
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	Port        string `mapstructure:"PORT"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("API_BASE_URL", "http://localhost:3000")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 10)
	viper.SetDefault("SESSION_FILE", ".gameshelf-session.json")
	viper.SetDefault("DATABASE_URL", "gameshelf.db")
	viper.SetDefault("JWT_SECRET", "dev-only-secret")
	viper.SetDefault("PORT", "3000")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
