package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig(nil)
	require.NoError(t, err)
	require.NotNil(t, c, "LoadConfig must not return nil")

	c, err = LoadConfig([]string{"-a", "https://ledger.example", "-r", "3"})
	require.NoError(t, err)
	assert.Equal(t, "https://ledger.example", c.ServerURL)
	assert.Equal(t, 3*time.Second, c.RequestTimeout)
}

func TestValidate(t *testing.T) {
	for _, u := range []string{"", "ledger.example", "ftp://ledger.example", "http://"} {
		c := Config{ServerURL: u, RequestTimeout: time.Second}
		assert.Error(t, c.Validate(), u)
	}

	c := Config{ServerURL: "http://x", RequestTimeout: 0}
	assert.Error(t, c.Validate())
}
