package configs

import (
	"go-weather/pkg/log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName   string
	ContextPath       string
	OpenWeatherAPIKey string
}

var Env *EnvConfig

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using system environment")
	}

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName:   getStringOrDefault("APPLICATION_NAME", "go-weather"),
		ContextPath:       getStringOrDefault("CONTEXT_PATH", "/"),
		OpenWeatherAPIKey: viper.GetString("OPENWEATHER_API_KEY"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
