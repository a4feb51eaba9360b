package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/passbook/internal/config"
)

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passbook.yaml")

	out, _, err := runPassbook(t, "", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default config to "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestInit_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bank:\n  first_account_number: 7\n"), 0o644))

	_, _, err := runPassbook(t, "", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first_account_number: 7", "file left untouched")

	_, _, err = runPassbook(t, "", "init", "--config", path, "--force")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1001, cfg.Bank.FirstAccountNumber)
}
