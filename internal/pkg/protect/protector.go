// internal/pkg/protect/protector.go
// Package protect reversibly protects tenant connection descriptors at rest.
package protect

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// prefix marks protected values. Values without it are treated as legacy
// plaintext and returned unchanged; values with it must authenticate.
const prefix = "enc:v1:"

// Protector is an AES-256-GCM protector keyed from a passphrase. It
// implements ports.ConnectionProtector.
type Protector struct {
	aead cipher.AEAD
}

// New derives the protection key from the passphrase.
func New(passphrase string) (*Protector, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("protection passphrase is required")
	}

	key := sha256.Sum256([]byte(passphrase))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Protector{aead: aead}, nil
}

// Protect seals the plaintext. Output is prefix + base64(nonce || ciphertext).
func (p *Protector) Protect(plaintext string) (string, error) {
	nonce := make([]byte, p.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := p.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return prefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Unprotect opens a protected value. Legacy values without the prefix are
// returned as-is; prefixed values that fail to decode or authenticate are a
// hard error, never silently passed through.
func (p *Protector) Unprotect(protected string) (string, error) {
	if !strings.HasPrefix(protected, prefix) {
		return protected, nil
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(protected, prefix))
	if err != nil {
		return "", fmt.Errorf("protected value is not valid base64: %w", err)
	}

	nonceSize := p.aead.NonceSize()
	if len(raw) < nonceSize {
		return "", fmt.Errorf("protected value is truncated")
	}

	plaintext, err := p.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("failed to unprotect value: %w", err)
	}

	return string(plaintext), nil
}
