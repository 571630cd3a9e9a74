package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNoToken      = errors.New("no bot token saved")
	ErrInvalidToken = errors.New("invalid bot token")
)

// ValidToken is a shape check only: BotFather tokens are "<id>:<secret>".
func ValidToken(token string) bool {
	token = strings.TrimSpace(token)
	return token != "" && strings.Contains(token, ":")
}

// LoadToken reads the token file at path.
func LoadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// SaveToken validates token and writes it readable by the owner only.
func SaveToken(path, token string) error {
	token = strings.TrimSpace(token)
	if !ValidToken(token) {
		return ErrInvalidToken
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating token dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("writing token: %w", err)
	}
	return nil
}

// RemoveToken deletes the token file. A missing file is not an error.
func RemoveToken(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing token: %w", err)
	}
	return nil
}

// ResolveToken prefers $SAVECNT_TOKEN over the token file.
func (c Config) ResolveToken() (string, error) {
	if c.Token != "" {
		if !ValidToken(c.Token) {
			return "", ErrInvalidToken
		}
		return strings.TrimSpace(c.Token), nil
	}
	return LoadToken(c.TokenPath())
}
