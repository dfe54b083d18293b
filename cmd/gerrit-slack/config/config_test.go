package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg, err := Environ()
	assert.Nil(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "gerrit-slack.sqlite", cfg.Database.Config)
	assert.Equal(t, 10*time.Second, cfg.WebhookTimeout)
}

func TestEnviron(t *testing.T) {
	os.Setenv("DATABASE_DRIVER", "postgres")
	os.Setenv("WEBHOOK_TIMEOUT", "3s")
	os.Setenv("API_TOKEN", "secret")
	defer os.Unsetenv("DATABASE_DRIVER")
	defer os.Unsetenv("WEBHOOK_TIMEOUT")
	defer os.Unsetenv("API_TOKEN")

	cfg, err := Environ()
	assert.Nil(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 3*time.Second, cfg.WebhookTimeout)
	assert.Equal(t, "secret", cfg.ApiToken)
	assert.NotContains(t, cfg.String(), "secret", "api token should not be printed")
}
