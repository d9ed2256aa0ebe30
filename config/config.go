package config

import "os"

// DebugMode gates the chatty per-cycle logging. Set in Load so a .env
// file loaded by main is honored.
var DebugMode = false

type Config struct {
	ListenAddr         string
	MetricsAddr        string
	BinanceWsEndpoint  string
	BitstampWsEndpoint string
}

func Load() *Config {
	DebugMode = os.Getenv("DEBUG") == "true"

	return &Config{
		ListenAddr:         envOr("LISTEN_ADDR", "127.0.0.1:8888"),
		MetricsAddr:        envOr("METRICS_ADDR", ":8080"),
		BinanceWsEndpoint:  envOr("BINANCE_WS_ENDPOINT", "wss://stream.binance.com:9443"),
		BitstampWsEndpoint: envOr("BITSTAMP_WS_ENDPOINT", "wss://ws.bitstamp.net"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
