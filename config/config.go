package config

import "os"

const (
	ServiceName    = "phone-store"
	ServiceVersion = "1.0.0"
)

type Config struct {
	Port         string
	OtelEnabled  bool
	OtelEndpoint string
}

func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	endpoint := os.Getenv("OTEL_EXPORTER_ENDPOINT")
	if endpoint == "" {
		endpoint = "localhost:4318"
	}

	return &Config{
		Port:         port,
		OtelEnabled:  os.Getenv("OTEL_ENABLED") == "true",
		OtelEndpoint: endpoint,
	}
}
