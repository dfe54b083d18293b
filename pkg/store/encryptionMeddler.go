package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/russross/meddler"
)

// secretMeddler is the meddler of columns that hold secrets, like webhook urls
const secretMeddler = "secret"

// EncryptionMeddler encrypts string columns with AES-GCM and stores them base64 encoded.
// Empty strings are stored as is.
type EncryptionMeddler struct {
	Key []byte
}

// registerSecretMeddler encrypts secret columns if a key is set, stores them in plain text otherwise
func registerSecretMeddler(key string) error {
	if key == "" {
		meddler.Register(secretMeddler, meddler.IdentityMeddler(false))
		return nil
	}

	switch len(key) {
	case 16, 24, 32:
	default:
		return fmt.Errorf("encryption key has to be 16, 24 or 32 bytes long, got %d", len(key))
	}

	meddler.Register(secretMeddler, EncryptionMeddler{Key: []byte(key)})
	return nil
}

func (m EncryptionMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(string), nil
}

func (m EncryptionMeddler) PostRead(fieldAddr, scanTarget interface{}) error {
	stored := scanTarget.(*string)
	field, ok := fieldAddr.(*string)
	if !ok {
		return fmt.Errorf("encryption meddler: field is %T, not *string", fieldAddr)
	}

	if *stored == "" {
		*field = ""
		return nil
	}

	ciphertext, err := base64.StdEncoding.DecodeString(*stored)
	if err != nil {
		return fmt.Errorf("encryption meddler: %s", err)
	}
	plaintext, err := decrypt(ciphertext, m.Key)
	if err != nil {
		return fmt.Errorf("encryption meddler: %s", err)
	}

	*field = string(plaintext)
	return nil
}

func (m EncryptionMeddler) PreWrite(field interface{}) (saveValue interface{}, err error) {
	plaintext, ok := field.(string)
	if !ok {
		return nil, fmt.Errorf("encryption meddler: field is %T, not string", field)
	}
	if plaintext == "" {
		return "", nil
	}

	ciphertext, err := encrypt([]byte(plaintext), m.Key)
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(c)
}
