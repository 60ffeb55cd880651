package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	assert.NoError(t, err)
	return path
}

func Test_NewFromFile_ShouldFillConfig(t *testing.T) {
	path := writeConfigFile(t, `
token: "test-token"
ConnectionStringDB: "postgres://localhost:5432/test"
OwnerUserID: 42
MainCurrency: "CNY"
DefaultTimeZone: "Asia/Shanghai"
ExchangeRate: "6.8"
FeeRate: "0.02"
KafkaTopic: "reports"
BrokersList:
  - "localhost:9092"
`)

	s, err := NewFromFile(path)

	assert.NoError(t, err)
	assert.Equal(t, "test-token", s.Token())
	cfg := s.GetConfig()
	assert.Equal(t, int64(42), cfg.OwnerUserID)
	assert.Equal(t, "CNY", cfg.MainCurrency)
	assert.Equal(t, "Asia/Shanghai", cfg.DefaultTimeZone)
	assert.Equal(t, "6.8", cfg.ExchangeRate)
	assert.Equal(t, "0.02", cfg.FeeRate)
	assert.Equal(t, []string{"localhost:9092"}, cfg.BrokersList)
}

func Test_NewFromFile_ShouldReturnError_WhenTokenMissing(t *testing.T) {
	path := writeConfigFile(t, `
ConnectionStringDB: "postgres://localhost:5432/test"
OwnerUserID: 42
`)

	_, err := NewFromFile(path)

	assert.Error(t, err)
}

func Test_NewFromFile_ShouldReturnError_WhenOwnerMissing(t *testing.T) {
	path := writeConfigFile(t, `
token: "test-token"
ConnectionStringDB: "postgres://localhost:5432/test"
`)

	_, err := NewFromFile(path)

	assert.Error(t, err)
}

func Test_NewFromFile_ShouldReturnError_WhenFileAbsent(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}
