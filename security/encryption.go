package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
)

// Cipher seals snapshot blobs with AES-GCM before they hit disk. A nil
// *Cipher is valid and means no encryption.
type Cipher struct {
	key []byte
}

// NewCipher builds a cipher from the configured key string, padding or
// truncating it to 32 bytes. An empty key returns nil (encryption off).
func NewCipher(key string) *Cipher {
	if key == "" {
		return nil
	}
	if len(key) < 32 {
		padding := make([]byte, 32-len(key))
		key = key + string(padding)
	}
	return &Cipher{key: []byte(key[:32])}
}

// Encrypt seals plaintext, prefixing the random nonce.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	gcm, err := c.gcm()
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens data produced by Encrypt.
func (c *Cipher) Decrypt(data []byte) ([]byte, error) {
	gcm, err := c.gcm()
	if err != nil {
		return nil, err
	}
	if len(data) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	nonce := data[:gcm.NonceSize()]
	return gcm.Open(nil, nonce, data[gcm.NonceSize():], nil)
}

func (c *Cipher) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
