package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// fileConfig mirrors StructuredConfig in snake_case for the JSON file.
type fileConfig struct {
	App     fileApp     `json:"app"`
	Storage fileStorage `json:"storage"`
	Server  fileServer  `json:"server"`
	Adapter fileAdapter `json:"adapter"`
}

type fileApp struct {
	PasswordHashKey string   `json:"password_hash_key"`
	TokenSignKey    string   `json:"token_sign_key"`
	TokenIssuer     string   `json:"token_issuer"`
	TokenDuration   Duration `json:"token_duration"`
	Argon           Argon    `json:"argon"`
	Version         string   `json:"version"`
	LogLevel        string   `json:"log_level"`
}

type fileStorage struct {
	DB struct {
		DSN string `json:"dsn"`
	} `json:"db"`
}

type fileServer struct {
	HTTPAddress    string   `json:"http_address"`
	GRPCAddress    string   `json:"grpc_address"`
	RequestTimeout Duration `json:"request_timeout"`
}

type fileAdapter struct {
	HTTPAddress    string   `json:"http_address"`
	RequestTimeout Duration `json:"request_timeout"`
}

func (f fileConfig) structured() *StructuredConfig {
	cfg := &StructuredConfig{}

	cfg.App = App{
		PasswordHashKey: f.App.PasswordHashKey,
		TokenSignKey:    f.App.TokenSignKey,
		TokenIssuer:     f.App.TokenIssuer,
		TokenDuration:   time.Duration(f.App.TokenDuration),
		Argon:           f.App.Argon,
		Version:         f.App.Version,
		LogLevel:        f.App.LogLevel,
	}
	cfg.Storage.DB.DSN = f.Storage.DB.DSN
	cfg.Server = Server{
		HTTPAddress:    f.Server.HTTPAddress,
		GRPCAddress:    f.Server.GRPCAddress,
		RequestTimeout: time.Duration(f.Server.RequestTimeout),
	}
	cfg.Adapter = Adapter{
		HTTPAddress:    f.Adapter.HTTPAddress,
		RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
	}
	return cfg
}

// parseJSON loads the config file at path.
func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var f fileConfig
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return f.structured(), nil
}

// Duration accepts either a Go duration string ("90s", "1h30m") or a
// number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return fmt.Errorf("duration must be a string or integer nanoseconds: %w", err)
	}
	*d = Duration(ns)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
