package configs

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvConfig holds the process level settings that locate the configuration files
type EnvConfig struct {
	ApplicationName string
	PropertiesFile  string
	MessagesFile    string
}

// Load reads an optional .env file into the environment and resolves the process settings
func Load() (*EnvConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	viper.AutomaticEnv()

	return &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weather-api"),
		PropertiesFile:  getStringOrDefault("APPLICATION_PROPERTIES", "configs/application.yml"),
		MessagesFile:    getStringOrDefault("APPLICATION_MESSAGES", "configs/messages.yml"),
	}, nil
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
