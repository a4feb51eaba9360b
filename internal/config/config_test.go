package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/passbook/internal/employees"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Bank.FirstAccountNumber = 2001
	cfg.Bank.CurrencySymbol = "€"
	cfg.Employees.BonusRates["intern"] = 0.05

	path := filepath.Join(t.TempDir(), "passbook.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2001, got.Bank.FirstAccountNumber)
	assert.Equal(t, "€", got.Bank.CurrencySymbol)
	assert.True(t, got.Bank.ConfirmZeroDeposit)
	assert.InDelta(t, 0.05, got.Employees.BonusRates["intern"], 0.001)
	assert.InDelta(t, 0.15, got.Employees.BonusRates["developer"], 0.001)
	assert.Equal(t, "info", got.Log.Level)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1001, cfg.Bank.FirstAccountNumber)
	assert.Equal(t, "$", cfg.Bank.CurrencySymbol)
	assert.True(t, cfg.Bank.ConfirmZeroDeposit)
	assert.InDelta(t, 0.15, cfg.Employees.BonusRates["developer"], 0.001)
	assert.InDelta(t, 0.10, cfg.Employees.BonusRates["designer"], 0.001)
	assert.InDelta(t, 0.20, cfg.Employees.BonusRates["manager"], 0.001)
	require.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault_Missing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bank:\n  first_account_number: 500\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Bank.FirstAccountNumber)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.InDelta(t, 0.20, cfg.Employees.BonusRates["manager"], 0.001)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "bank: [", "parsing config"},
		{"zero first number", "bank:\n  first_account_number: 0\n", "first_account_number"},
		{"negative rate", "employees:\n  bonus_rates:\n    manager: -0.1\n", "negative"},
		{"bad log level", "log:\n  level: loud\n", "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "passbook.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBonusRates(t *testing.T) {
	cfg := Default()
	cfg.Employees.BonusRates["Director"] = 0.3

	rates := cfg.BonusRates()
	assert.True(t, rates["developer"].Equal(decimal.RequireFromString("0.15")))
	assert.True(t, rates["director"].Equal(decimal.RequireFromString("0.3")))
}

func TestDefaultBonusRatesMatchEmployees(t *testing.T) {
	got := Default().BonusRates()
	want := employees.DefaultBonusRates()
	require.Len(t, got, len(want))
	for role, rate := range want {
		assert.True(t, got[role].Equal(rate), "role %s: got %s, want %s", role, got[role], rate)
	}
}

func TestSlogLevel(t *testing.T) {
	lvl, err := LogConfig{Level: "debug"}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = LogConfig{}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passbook.yaml")
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "first_account_number: 1001")
	assert.Contains(t, contents, "confirm_zero_deposit: true")
	assert.Contains(t, contents, "developer: 0.15")
	assert.Contains(t, contents, "level: info")
}
