// SPDX-License-Identifier: MIT

package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/unitmarket/evp"
	"github.com/katalvlaran/unitmarket/internal/config"
	"github.com/katalvlaran/unitmarket/internal/fixtures"
	"github.com/katalvlaran/unitmarket/maxweq"
	"github.com/katalvlaran/unitmarket/reserve"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Workers:        1,
		Precision:      maxweq.DefaultPrecision,
		Epsilon:        reserve.DefaultEpsilon,
		Strategy:       reserve.NameTwoDummies,
		ZeroReserve:    true,
		LogLevel:       "info",
		LogDevelopment: false,
	}, cfg)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := writeFile(t, "engine.yaml", `
engine:
  workers: 4
  precision: 3
  strategy: one-dummy
  zero_reserve: false
log:
  level: debug
`)
	t.Setenv("UNITMARKET_ENGINE_EPSILON", "0.001")
	t.Setenv("UNITMARKET_LOG_DEVELOPMENT", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 3, cfg.Precision)
	assert.Equal(t, reserve.NameOneDummy, cfg.Strategy)
	assert.False(t, cfg.ZeroReserve)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.InDelta(t, 0.001, cfg.Epsilon, 1e-15)
	assert.True(t, cfg.LogDevelopment)
}

func TestLoad_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"workers":   "engine:\n  workers: 0\n",
		"precision": "engine:\n  precision: 20\n",
		"epsilon":   "engine:\n  epsilon: 0\n",
		"strategy":  "engine:\n  strategy: nine-dummies\n",
		"level":     "log:\n  level: shout\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, "bad.yaml", body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_Epsilon(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	for _, eps := range []float64{0, -1e-4, math.Inf(1), math.NaN()} {
		cfg.Epsilon = eps
		assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig, "epsilon %g", eps)
	}
	cfg.Epsilon = 1e-3
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Options(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	log := zap.NewNop()

	m, err := maxweq.PriceByMarginalValue(fixtures.Market1(), cfg.MaxWEQOptions(log)...)
	require.NoError(t, err)
	assert.InDelta(t, 51.52, m.SellerRevenue(), 1e-9)

	ropts, err := cfg.ReserveOptions(log)
	require.NoError(t, err)
	assert.NotEmpty(t, ropts)

	eopts, err := cfg.EVPOptions(log)
	require.NoError(t, err)
	out, err := evp.Approximate(fixtures.Market3(), eopts...)
	require.NoError(t, err)
	assert.InDelta(t, 158.0, out.SellerRevenue(), 1e-9)

	cfg.Strategy = "unknown"
	_, err = cfg.ReserveOptions(log)
	assert.ErrorIs(t, err, reserve.ErrUnknownStrategy)
	_, err = cfg.EVPOptions(log)
	assert.ErrorIs(t, err, reserve.ErrUnknownStrategy)
}
