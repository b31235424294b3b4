// Package password wraps bcrypt for the console's single shared admin
// credential. There are no per-user accounts; the hash arrives through
// configuration and the runtime only ever verifies against it. Hash exists
// for minting a replacement value when the password rotates.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMismatch      = errors.New("password does not match")
	ErrEmptyPassword = errors.New("password is empty")
)

// Hash derives a bcrypt hash usable as the configured admin password hash.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify checks plain against the configured hash. An empty hash means the
// console was deployed without a credential and never matches.
func Verify(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrMismatch
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
