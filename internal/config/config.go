package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/passbook/internal/employees"
	"github.com/cleared-dev/passbook/internal/ledger"
)

// Config represents the top-level passbook.yaml configuration.
type Config struct {
	Bank      BankConfig      `yaml:"bank"`
	Employees EmployeesConfig `yaml:"employees"`
	Log       LogConfig       `yaml:"log"`
}

// BankConfig controls the bank ledger menu.
type BankConfig struct {
	FirstAccountNumber int    `yaml:"first_account_number"`
	CurrencySymbol     string `yaml:"currency_symbol"`
	ConfirmZeroDeposit bool   `yaml:"confirm_zero_deposit"` // ask before opening an empty account
}

// EmployeesConfig controls bonus calculation.
type EmployeesConfig struct {
	BonusRates map[string]float64 `yaml:"bonus_rates"` // role -> fraction of base salary
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a passbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault reads path, falling back to Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the stock settings.
func Default() *Config {
	return &Config{
		Bank: BankConfig{
			FirstAccountNumber: ledger.FirstAccountNumber,
			CurrencySymbol:     "$",
			ConfirmZeroDeposit: true,
		},
		Employees: EmployeesConfig{
			BonusRates: defaultBonusRates(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func defaultBonusRates() map[string]float64 {
	rates := employees.DefaultBonusRates()
	out := make(map[string]float64, len(rates))
	for role, rate := range rates {
		out[role] = rate.InexactFloat64()
	}
	return out
}

// Validate checks values that would break the menus.
func (c *Config) Validate() error {
	if c.Bank.FirstAccountNumber < 1 {
		return fmt.Errorf("invalid config: bank.first_account_number must be positive, got %d", c.Bank.FirstAccountNumber)
	}
	for role, rate := range c.Employees.BonusRates {
		if rate < 0 {
			return fmt.Errorf("invalid config: bonus rate for %q is negative", role)
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// BonusRates returns the configured bonus rates as decimals keyed by lower-case role.
func (c *Config) BonusRates() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(c.Employees.BonusRates))
	for role, rate := range c.Employees.BonusRates {
		out[strings.ToLower(role)] = decimal.NewFromFloat(rate)
	}
	return out
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	name := l.Level
	if name == "" {
		name = "info"
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid config: log.level: %w", err)
	}
	return level, nil
}
