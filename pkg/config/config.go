package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	HTTPPort int `envconfig:"HTTP_PORT" default:"5000"`

	MongoURI     string `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017"`
	MongoDB      string `envconfig:"MONGODB_DATABASE" default:"shopping-list"`
	MongoTimeout int    `envconfig:"MONGODB_TIMEOUT_SECONDS" default:"10"`

	ClientURL string `envconfig:"CLIENT_URL" default:"http://localhost:3000"`
}

// Load reads configuration from the environment, with an optional .env
// file for local development. A missing .env is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Dev() bool {
	return c.AppEnv == "dev"
}
