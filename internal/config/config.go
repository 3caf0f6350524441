// Package config loads the process configuration from environment variables.
// Every variable is prefixed with "TXWATCH_", e.g. TXWATCH_REDIS_ADDR.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the shared prefix of every environment variable read here.
const envPrefix = "txwatch"

// Log groups the logging settings.
type Log struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Redis groups the connection settings of the storage backend.
type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR" required:"true"`
	Username string `envconfig:"REDIS_USERNAME"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Mempool groups the blockchain data provider settings.
type Mempool struct {
	APIBaseURL        string `envconfig:"MEMPOOL_API_BASE_URL" default:"https://mempool.space/api"`
	WebsocketURL      string `envconfig:"MEMPOOL_WEBSOCKET_URL" default:"wss://mempool.space/api/v1/ws"`
	RequestsPerSecond int    `envconfig:"MEMPOOL_REQUESTS_PER_SECOND" default:"10"`
}

// Telegram groups the notification delivery credentials. Both fields empty
// means notifications are disabled.
type Telegram struct {
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`
	ChatID   string `envconfig:"TELEGRAM_CHAT_ID"`
}

// Telemetry groups the OpenTelemetry exporter settings.
type Telemetry struct {
	Enabled     bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName string `envconfig:"TELEMETRY_SERVICE_NAME" default:"txwatch"`
}

// Config is the full process configuration.
type Config struct {
	Log       Log
	Redis     Redis
	Mempool   Mempool
	Telegram  Telegram
	Telemetry Telemetry
}

// Load reads the configuration from the environment. Missing required
// variables produce an error.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
