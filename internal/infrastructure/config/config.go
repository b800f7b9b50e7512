package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	// TokenTTLHours is the lifetime of issued access tokens.
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS, default=24"`
	LogLevel      string `env:"LOG_LEVEL, default=info"`
	// Workers is the size of the background job worker pool.
	Workers int `env:"WORKERS, default=4"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Socrata SocrataConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=housing_units"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SocrataConfig struct {
	BaseURL string `env:"SOCRATA_BASE_URL, default=https://data.cityofnewyork.us"`
	// AppToken raises the API's rate limits; requests work without it.
	AppToken  string `env:"SOCRATA_APP_TOKEN"`
	DatasetID string `env:"SOCRATA_DATASET_ID, default=hg8x-zxpr"`
	PageSize  int    `env:"SOCRATA_PAGE_SIZE, default=10000"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
