// Package security provides password hashing helpers. Passwords are stored
// only as argon2id encoded hashes.
package security

import (
	"github.com/matthewhartstonge/argon2"
)

var argon = argon2.DefaultConfig()

// HashPassword hashes a plain text password and returns the encoded hash.
func HashPassword(password string) (string, error) {
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword checks a plain text password against an encoded hash.
func VerifyPassword(password, encodedHash string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
