package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-ws-url websocket endpoint URL
//	-api-url HTTP API base URL
//	-d local queue database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-heartbeat-interval heartbeat period (e.g., "30s")
//	-reconnect-interval base reconnect backoff delay (e.g., "1s")
//	-max-reconnect-attempts reconnect attempt cap
//	-queue-size outbound message queue capacity
//	-request-timeout default request/response timeout (e.g., "30s", "1m")
//	-replay-interval offline queue replay period (e.g., "1m")
func ParseFlags() *StructuredConfig {
	var wsURL string
	var apiURL string
	var databaseDSN string
	var jsonConfigPath string
	var heartbeatInterval time.Duration
	var reconnectInterval time.Duration
	var maxReconnectAttempts int
	var queueSize int
	var requestTimeout time.Duration
	var replayInterval time.Duration

	flag.StringVar(&wsURL, "ws-url", "", "WebSocket endpoint URL")
	flag.StringVar(&apiURL, "api-url", "", "HTTP API base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local queue database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&heartbeatInterval, "heartbeat-interval", 0, "Heartbeat period (e.g., 30s)")
	flag.DurationVar(&reconnectInterval, "reconnect-interval", 0, "Base reconnect backoff delay (e.g., 1s)")
	flag.IntVar(&maxReconnectAttempts, "max-reconnect-attempts", 0, "Reconnect attempt cap")
	flag.IntVar(&queueSize, "queue-size", 0, "Outbound message queue capacity")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&replayInterval, "replay-interval", 0, "Offline replay period (e.g., 1m)")

	flag.Parse()

	return &StructuredConfig{
		Connection: Connection{
			URL:                  wsURL,
			HeartbeatInterval:    heartbeatInterval,
			ReconnectInterval:    reconnectInterval,
			MaxReconnectAttempts: maxReconnectAttempts,
			MessageQueueSize:     queueSize,
			RequestTimeout:       requestTimeout,
		},
		API: API{
			BaseURL:        apiURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			ReplayInterval: replayInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
