// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"github.com/brewkit/beerxml/pkg/defaults"
)

// Environment variables read by NewConfig.
const (
	EnvPort             = "PORT"
	EnvShutdownTimeout  = "SHUTDOWN_TIMEOUT_SECONDS"
	EnvMaxDocumentBytes = "MAX_DOCUMENT_BYTES"
	EnvRateLimit        = "RATE_LIMIT"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string `validate:"required"`
	Version string `validate:"required"`

	// Additional handlers, keyed by route pattern
	Handlers map[string]http.HandlerFunc

	Address string
	Port    int `validate:"gte=0,lte=65535"`

	// Rate limiting configuration
	RateLimit      rate.Limit `validate:"gt=0"`
	RateLimitBurst int        `validate:"gt=0"`

	// MaxDocumentBytes caps request bodies.
	MaxDocumentBytes int64 `validate:"gt=0"`

	ReadTimeout       time.Duration `validate:"gt=0"`
	ReadHeaderTimeout time.Duration `validate:"gt=0"`
	WriteTimeout      time.Duration `validate:"gt=0"`
	IdleTimeout       time.Duration `validate:"gt=0"`
	ShutdownTimeout   time.Duration `validate:"gt=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewConfig returns defaults overridden by the environment.
func NewConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Port:              defaults.ServerPort,
		RateLimit:         defaults.ServerRateLimit,
		RateLimitBurst:    defaults.ServerRateLimitBurst,
		MaxDocumentBytes:  defaults.MaxDocumentBytes,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if port, ok := envInt(EnvPort); ok {
		cfg.Port = port
	}
	if seconds, ok := envInt(EnvShutdownTimeout); ok && seconds > 0 {
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}
	if n, ok := envInt(EnvMaxDocumentBytes); ok && n > 0 {
		cfg.MaxDocumentBytes = int64(n)
	}
	if n, ok := envInt(EnvRateLimit); ok && n > 0 {
		cfg.RateLimit = rate.Limit(n)
		if cfg.RateLimitBurst < n {
			cfg.RateLimitBurst = n
		}
	}

	return cfg
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}
	return nil
}

func envInt(key string) (int, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		slog.Warn("ignoring invalid environment value", "key", key, "value", s)
		return 0, false
	}
	return n, true
}
