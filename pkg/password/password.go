// Package password hashes author passwords with bcrypt.
package password

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a password does not match its hash
var ErrMismatch = errors.New("password mismatch")

// Hasher hashes and compares passwords
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a Hasher with the given cost; out-of-range costs
// fall back to bcrypt.DefaultCost
func NewBcryptHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// prehash digests the password so bcrypt never sees more than 72 bytes.
// Base64 keeps NUL bytes out of the input.
func prehash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), prehash(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrHashTooShort) {
		return ErrMismatch
	}
	return err
}
