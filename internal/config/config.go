package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Metrics       Metrics       `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Preferences   Preferences   `mapstructure:",squash"`
	SyntheticFeed SyntheticFeed `mapstructure:",squash"`
	Location      Location      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Metrics struct {
	Enabled bool   `mapstructure:"metrics_enabled"`
	Port    string `mapstructure:"metrics_port"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Preferences struct {
	FilePath string `mapstructure:"preferences_file"`
}

type SyntheticFeed struct {
	Interval time.Duration `mapstructure:"synthetic_feed_interval"`
	Enabled  bool          `mapstructure:"synthetic_feed_enabled"`
}

type Location struct {
	Timeout time.Duration `mapstructure:"location_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("METRICS_PORT", 9090)

	viper.SetDefault("AUTH_SECRET", "") // must come from the environment
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("PREFERENCES_FILE", "data/preferences.json")

	viper.SetDefault("SYNTHETIC_FEED_INTERVAL", "30s")
	viper.SetDefault("SYNTHETIC_FEED_ENABLED", true)

	viper.SetDefault("LOCATION_TIMEOUT", "10s")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads .env with godotenv, trying a few likely locations so
// the binary works from the repo root and from cmd/api.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}
}
