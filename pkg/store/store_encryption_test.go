package store

import (
	"testing"

	"github.com/gimlet-io/gerrit-slack/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestWebhookURLEncryption(t *testing.T) {
	s := NewTest()
	defer func() {
		s.Close()
	}()

	config := model.DefaultProjectConfig("testproject")
	config.WebhookURL = "https://hooks.slack.com/services/T000/B000/XXXX"
	err := s.SaveProjectConfig(config)
	assert.Nil(t, err)

	var stored string
	err = s.QueryRow("SELECT webhook_url FROM project_configs WHERE project = 'testproject'").Scan(&stored)
	assert.Nil(t, err)
	assert.NotEmpty(t, stored)
	assert.NotContains(t, stored, "hooks.slack.com", "webhook url should be encrypted at rest")

	fromDb, err := s.ProjectConfig("testproject")
	assert.Nil(t, err)
	assert.Equal(t, "https://hooks.slack.com/services/T000/B000/XXXX", fromDb.WebhookURL)
}

func TestEmptyWebhookURL(t *testing.T) {
	s := NewTest()
	defer func() {
		s.Close()
	}()

	err := s.SaveProjectConfig(model.DefaultProjectConfig("testproject"))
	assert.Nil(t, err)

	fromDb, err := s.ProjectConfig("testproject")
	assert.Nil(t, err)
	assert.Equal(t, "", fromDb.WebhookURL)
}

func TestEncryptionKeyLength(t *testing.T) {
	err := registerSecretMeddler("short")
	assert.NotNil(t, err)
}

func TestEncryptDecrypt(t *testing.T) {
	key := []byte(testEncryptionKey)

	ciphertext, err := encrypt([]byte("secret"), key)
	assert.Nil(t, err)

	plaintext, err := decrypt(ciphertext, key)
	assert.Nil(t, err)
	assert.Equal(t, "secret", string(plaintext))

	_, err = decrypt(ciphertext, []byte("another-encryption-key-32-bytes!"))
	assert.NotNil(t, err)

	_, err = decrypt([]byte("short"), key)
	assert.NotNil(t, err)
}
