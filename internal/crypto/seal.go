package crypto

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// The current supported version of the sealed envelope format.
	envelopeFormatVersion = 1

	KeyBytes  = chacha20poly1305.KeySize
	SaltBytes = 16
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// ciphertext has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted envelope")
	// ErrEmptyPassphrase is returned by Seal and Open for an empty passphrase.
	ErrEmptyPassphrase = errors.New("passphrase required")
)

// KDFParams are the Argon2id cost parameters.
type KDFParams struct {
	Time      uint32 `json:"time"`
	MemoryKiB uint32 `json:"memory_kib"`
	Threads   uint8  `json:"threads"`
}

// DefaultKDFParams returns interactive-strength Argon2id parameters.
func DefaultKDFParams() KDFParams {
	return KDFParams{Time: 3, MemoryKiB: 64 * 1024, Threads: 4}
}

// envelope is the JSON structure holding the ciphertext and KDF parameters.
type envelope struct {
	V      int       `json:"v"`
	KDF    KDFParams `json:"kdf"`
	Salt   []byte    `json:"salt"`
	Nonce  []byte    `json:"nonce"`
	Cipher []byte    `json:"cipher"`
}

// DeriveKey derives a key from a passphrase and salt using Argon2id.
func DeriveKey(passphrase string, salt []byte, p KDFParams) []byte {
	return argon2.IDKey([]byte(passphrase), salt, p.Time, p.MemoryKiB, p.Threads, KeyBytes)
}

// Seal encrypts plaintext under a key derived from passphrase and returns
// the JSON envelope.
func Seal(passphrase string, plaintext []byte, p KDFParams) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if p.Time == 0 || p.Threads == 0 {
		return nil, errors.New("invalid kdf parameters")
	}
	salt := make([]byte, SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key := DeriveKey(passphrase, salt, p)
	defer Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return json.Marshal(envelope{
		V:      envelopeFormatVersion,
		KDF:    p,
		Salt:   salt,
		Nonce:  nonce,
		Cipher: aead.Seal(nil, nonce, plaintext, salt),
	})
}

// Open decrypts an envelope produced by Seal.
func Open(passphrase string, sealed []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	var env envelope
	if err := json.Unmarshal(sealed, &env); err != nil {
		return nil, err
	}
	if env.V > envelopeFormatVersion {
		return nil, fmt.Errorf("unsupported envelope version %d", env.V)
	}
	if len(env.Salt) != SaltBytes {
		return nil, errors.New("invalid salt size")
	}
	if env.KDF.Time == 0 || env.KDF.Threads == 0 {
		return nil, errors.New("invalid kdf parameters")
	}

	key := DeriveKey(passphrase, env.Salt, env.KDF)
	defer Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != aead.NonceSize() {
		return nil, errors.New("invalid nonce size")
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, env.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// IsSealed reports whether b looks like an envelope produced by Seal.
func IsSealed(b []byte) bool {
	var probe struct {
		V      int    `json:"v"`
		Cipher []byte `json:"cipher"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return false
	}
	return probe.V > 0 && len(probe.Cipher) > 0
}
