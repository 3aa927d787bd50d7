// SPDX-License-Identifier: MIT

// Package config loads the engine settings of the command-line driver from
// an optional file and UNITMARKET_* environment variables, and translates
// them into the functional options of the pricing packages.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/unitmarket/evp"
	"github.com/katalvlaran/unitmarket/maxweq"
	"github.com/katalvlaran/unitmarket/reserve"
)

// ErrInvalidConfig wraps every validation failure of Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override, e.g. UNITMARKET_ENGINE_WORKERS.
const EnvPrefix = "UNITMARKET"

// Keys.
const (
	KeyWorkers        = "engine.workers"
	KeyPrecision      = "engine.precision"
	KeyEpsilon        = "engine.epsilon"
	KeyStrategy       = "engine.strategy"
	KeyZeroReserve    = "engine.zero_reserve"
	KeyLogLevel       = "log.level"
	KeyLogDevelopment = "log.development"
)

// Config is the resolved driver configuration.
type Config struct {
	Workers        int
	Precision      int
	Epsilon        float64
	Strategy       string
	ZeroReserve    bool
	LogLevel       string
	LogDevelopment bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyPrecision, maxweq.DefaultPrecision)
	v.SetDefault(KeyEpsilon, reserve.DefaultEpsilon)
	v.SetDefault(KeyStrategy, reserve.NameTwoDummies)
	v.SetDefault(KeyZeroReserve, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogDevelopment, false)
}

// Load reads path (YAML, JSON or TOML by extension; empty for none), applies
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	}

	cfg := Config{
		Workers:        v.GetInt(KeyWorkers),
		Precision:      v.GetInt(KeyPrecision),
		Epsilon:        v.GetFloat64(KeyEpsilon),
		Strategy:       v.GetString(KeyStrategy),
		ZeroReserve:    v.GetBool(KeyZeroReserve),
		LogLevel:       v.GetString(KeyLogLevel),
		LogDevelopment: v.GetBool(KeyLogDevelopment),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%s=%d: %w", KeyWorkers, c.Workers, ErrInvalidConfig)
	}
	if c.Precision < 0 || c.Precision > maxweq.MaxPrecision {
		return fmt.Errorf("%s=%d: %w", KeyPrecision, c.Precision, ErrInvalidConfig)
	}
	if !(c.Epsilon > 0) || math.IsInf(c.Epsilon, 0) {
		return fmt.Errorf("%s=%g: %w", KeyEpsilon, c.Epsilon, ErrInvalidConfig)
	}
	if _, err := reserve.StrategyByName(c.Strategy); err != nil {
		return fmt.Errorf("%s=%q: %w: %w", KeyStrategy, c.Strategy, ErrInvalidConfig, err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s=%q: %w: %w", KeyLogLevel, c.LogLevel, ErrInvalidConfig, err)
	}

	return nil
}

// MaxWEQOptions translates c into maxweq options.
func (c Config) MaxWEQOptions(log *zap.Logger) []maxweq.Option {
	return []maxweq.Option{
		maxweq.WithPrecision(c.Precision),
		maxweq.WithWorkers(c.Workers),
		maxweq.WithLogger(log),
	}
}

// ReserveOptions translates c into reserve options.
func (c Config) ReserveOptions(log *zap.Logger) ([]reserve.Option, error) {
	s, err := reserve.StrategyByName(c.Strategy)
	if err != nil {
		return nil, fmt.Errorf("ReserveOptions: %w", err)
	}

	return []reserve.Option{
		reserve.WithStrategy(s),
		reserve.WithEpsilon(c.Epsilon),
		reserve.WithPrecision(c.Precision),
		reserve.WithWorkers(c.Workers),
		reserve.WithLogger(log),
	}, nil
}

// EVPOptions translates c into evp options. Workers parallelize candidates.
func (c Config) EVPOptions(log *zap.Logger) ([]evp.Option, error) {
	s, err := reserve.StrategyByName(c.Strategy)
	if err != nil {
		return nil, fmt.Errorf("EVPOptions: %w", err)
	}

	return []evp.Option{
		evp.WithStrategy(s),
		evp.WithEpsilon(c.Epsilon),
		evp.WithPrecision(c.Precision),
		evp.WithWorkers(c.Workers),
		evp.WithZeroReserve(c.ZeroReserve),
		evp.WithLogger(log),
	}, nil
}
