package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port        string `mapstructure:"PORT"`
	GinMode     string `mapstructure:"GIN_MODE"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	// Upstream catalog (IGDB through Twitch client credentials)
	IGDBClientID     string        `mapstructure:"IGDB_CLIENT_ID"`
	IGDBClientSecret string        `mapstructure:"IGDB_CLIENT_SECRET"`
	IGDBBaseURL      string        `mapstructure:"IGDB_BASE_URL"`
	IGDBTokenURL     string        `mapstructure:"IGDB_TOKEN_URL"`
	IGDBTimeout      time.Duration `mapstructure:"IGDB_TIMEOUT"`

	CatalogCacheTTL time.Duration `mapstructure:"CATALOG_CACHE_TTL"`
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

var AppConfig *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("IGDB_CLIENT_ID", "")
	v.SetDefault("IGDB_CLIENT_SECRET", "")
	v.SetDefault("IGDB_BASE_URL", "https://api.igdb.com/v4")
	v.SetDefault("IGDB_TOKEN_URL", "https://id.twitch.tv/oauth2/token")
	v.SetDefault("IGDB_TIMEOUT", "15s")
	v.SetDefault("CATALOG_CACHE_TTL", "10m")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// Load reads configuration from the given directory's .env file and from
// environment variables. A missing .env file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	cfg, err := Load(".")
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	AppConfig = cfg
}
