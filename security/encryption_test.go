package security

import (
	"bytes"
	"testing"
)

func TestNewCipherEmptyKey(t *testing.T) {
	if c := NewCipher(""); c != nil {
		t.Error("Expected nil cipher for empty key")
	}
}

func TestNewCipherKeyNormalization(t *testing.T) {
	testCases := []struct {
		name string
		key  string
	}{
		{"Short key padded", "short-key"},
		{"Exact 32 byte key", "12345678901234567890123456789012"},
		{"Long key truncated", "this-is-a-very-long-key-that-exceeds-32-bytes-by-quite-a-lot"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCipher(tc.key)
			if c == nil {
				t.Fatal("Expected non-nil cipher")
			}
			if len(c.key) != 32 {
				t.Errorf("Expected normalized key length of 32, got %d", len(c.key))
			}
		})
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c := NewCipher("test-encryption-key-12345678901234")

	testCases := []struct {
		name  string
		value string
	}{
		{"Simple text", "Hello, world!"},
		{"Empty string", ""},
		{"JSON blob", `{"properties":[{"id":1,"name":"Riverside"}]}`},
		{"Binary-ish data", "\x00\x01\x02\xff"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sealed, err := c.Encrypt([]byte(tc.value))
			if err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}
			if tc.value != "" && bytes.Contains(sealed, []byte(tc.value)) {
				t.Error("Ciphertext contains the plaintext")
			}

			plain, err := c.Decrypt(sealed)
			if err != nil {
				t.Fatalf("Decrypt failed: %v", err)
			}
			if string(plain) != tc.value {
				t.Errorf("Expected %q after round trip, got %q", tc.value, plain)
			}
		})
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	c := NewCipher("test-encryption-key-12345678901234")

	a, err := c.Encrypt([]byte("same input"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	b, err := c.Encrypt([]byte("same input"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("Expected distinct ciphertexts for repeated encryption")
	}
}

func TestDecryptRejectsTamperedData(t *testing.T) {
	c := NewCipher("test-encryption-key-12345678901234")

	sealed, err := c.Encrypt([]byte("important snapshot"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	sealed[len(sealed)-1] ^= 0xff

	if _, err := c.Decrypt(sealed); err == nil {
		t.Error("Expected decryption of tampered data to fail")
	}
}

func TestDecryptRejectsShortCiphertext(t *testing.T) {
	c := NewCipher("test-encryption-key-12345678901234")
	if _, err := c.Decrypt([]byte{1, 2, 3}); err == nil {
		t.Error("Expected decryption of truncated data to fail")
	}
}

func TestDecryptWrongKeyFails(t *testing.T) {
	a := NewCipher("key-one-aaaaaaaaaaaaaaaaaaaaaaaaaa")
	b := NewCipher("key-two-bbbbbbbbbbbbbbbbbbbbbbbbbb")

	sealed, err := a.Encrypt([]byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if _, err := b.Decrypt(sealed); err == nil {
		t.Error("Expected decryption with a different key to fail")
	}
}
