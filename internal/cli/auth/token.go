package auth

import (
	"errors"
	"os"
)

// SaveToken writes token to the auth token file.
func SaveToken(path, token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

// LoadToken reads token from the auth token file.
func LoadToken(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	// Trim any trailing newlines/spaces
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r' || b[len(b)-1] == ' ') {
		b = b[:len(b)-1]
	}
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	return string(b), nil
}
