package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Connection struct {
		URL                  string   `json:"url"`
		HeartbeatInterval    Duration `json:"heartbeat_interval"`
		ReconnectInterval    Duration `json:"reconnect_interval"`
		MaxReconnectAttempts int      `json:"max_reconnect_attempts"`
		MessageQueueSize     int      `json:"message_queue_size"`
		RequestTimeout       Duration `json:"request_timeout"`
	} `json:"connection,omitempty"`

	API struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxRetries     int      `json:"max_retries"`
		RetryBaseDelay Duration `json:"retry_base_delay"`
	} `json:"api,omitempty"`

	Breaker struct {
		FailureThreshold int      `json:"failure_threshold"`
		RecoveryTimeout  Duration `json:"recovery_timeout"`
		HalfOpenRequests int      `json:"half_open_requests"`
	} `json:"breaker,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		ReplayInterval Duration `json:"replay_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Connection: Connection{
			URL:                  jsonCfg.Connection.URL,
			HeartbeatInterval:    time.Duration(jsonCfg.Connection.HeartbeatInterval),
			ReconnectInterval:    time.Duration(jsonCfg.Connection.ReconnectInterval),
			MaxReconnectAttempts: jsonCfg.Connection.MaxReconnectAttempts,
			MessageQueueSize:     jsonCfg.Connection.MessageQueueSize,
			RequestTimeout:       time.Duration(jsonCfg.Connection.RequestTimeout),
		},
		API: API{
			BaseURL:        jsonCfg.API.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
			MaxRetries:     jsonCfg.API.MaxRetries,
			RetryBaseDelay: time.Duration(jsonCfg.API.RetryBaseDelay),
		},
		Breaker: Breaker{
			FailureThreshold: jsonCfg.Breaker.FailureThreshold,
			RecoveryTimeout:  time.Duration(jsonCfg.Breaker.RecoveryTimeout),
			HalfOpenRequests: jsonCfg.Breaker.HalfOpenRequests,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			ReplayInterval: time.Duration(jsonCfg.Workers.ReplayInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
