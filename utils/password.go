package utils

import (
	"github.com/matthewhartstonge/argon2"
)

func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func VerifyPassword(encodedHash, password string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Argon2Encoder adapts HashPassword and VerifyPassword to the services'
// PasswordEncoder. A malformed stored hash never matches.
type Argon2Encoder struct{}

func (Argon2Encoder) Encode(raw string) (string, error) {
	return HashPassword(raw)
}

func (Argon2Encoder) Matches(raw, encoded string) bool {
	ok, err := VerifyPassword(encoded, raw)
	return err == nil && ok
}
