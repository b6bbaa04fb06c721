package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Token represents a named RocketAPI access token
type Token struct {
	Name         string    `json:"name"`
	Value        string    `json:"value"`
	LastModified time.Time `json:"last_modified"`
}

// TokenStore is the interface for storing and retrieving API tokens
type TokenStore interface {
	// Store saves a token under its name
	Store(token *Token) error

	// Retrieve gets the token with the given name
	Retrieve(name string) (*Token, error)

	// List returns all stored tokens
	List() ([]*Token, error)

	// Delete removes the token with the given name
	Delete(name string) error

	// Exists checks if a token with the given name exists
	Exists(name string) bool
}

// Manager handles token storage with fallback mechanisms
type Manager struct {
	stores []TokenStore
}

// NewManager creates a new token manager with appropriate storage backends
func NewManager() (*Manager, error) {
	var stores []TokenStore

	// Try keyring first (system keychain)
	keyringStore, err := NewKeyringStore()
	if err == nil {
		stores = append(stores, keyringStore)
	}

	// Always add encrypted file store as fallback
	configDir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	encryptedStore, err := NewEncryptedFileStore(filepath.Join(configDir, "tokens.enc"))
	if err != nil {
		return nil, fmt.Errorf("failed to create encrypted store: %w", err)
	}
	stores = append(stores, encryptedStore)

	// Add environment store as last resort
	stores = append(stores, NewEnvironmentStore())

	return &Manager{stores: stores}, nil
}

// Store saves a token using the first available store
func (m *Manager) Store(token *Token) error {
	if token.Name == "" {
		return errors.New("token name is required")
	}
	if token.Value == "" {
		return errors.New("token value is required")
	}

	token.LastModified = time.Now()

	var lastErr error
	for _, store := range m.stores {
		if err := store.Store(token); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}

	if lastErr != nil {
		return fmt.Errorf("failed to store token: %w", lastErr)
	}
	return errors.New("no available token stores")
}

// Retrieve gets the named token from the first store that has it
func (m *Manager) Retrieve(name string) (*Token, error) {
	for _, store := range m.stores {
		if token, err := store.Retrieve(name); err == nil && token != nil {
			return token, nil
		}
	}
	return nil, fmt.Errorf("token not found: %s", name)
}

// RetrieveDefault gets the default token: the environment variable when
// set, otherwise the first stored token.
func (m *Manager) RetrieveDefault() (*Token, error) {
	if envStore, ok := m.stores[len(m.stores)-1].(*EnvironmentStore); ok {
		if token, err := envStore.Retrieve(""); err == nil && token != nil {
			return token, nil
		}
	}

	tokens, err := m.List()
	if err == nil && len(tokens) > 0 {
		return tokens[0], nil
	}

	return nil, errors.New("no token found")
}

// List returns all stored tokens from all stores
func (m *Manager) List() ([]*Token, error) {
	tokenMap := make(map[string]*Token)

	for _, store := range m.stores {
		tokens, err := store.List()
		if err != nil {
			continue
		}
		for _, token := range tokens {
			// Use the most recently modified version
			if existing, ok := tokenMap[token.Name]; !ok || token.LastModified.After(existing.LastModified) {
				tokenMap[token.Name] = token
			}
		}
	}

	var result []*Token
	for _, token := range tokenMap {
		result = append(result, token)
	}

	return result, nil
}

// Delete removes the named token from all stores
func (m *Manager) Delete(name string) error {
	var deleted bool
	var lastErr error

	for _, store := range m.stores {
		if err := store.Delete(name); err == nil {
			deleted = true
		} else {
			lastErr = err
		}
	}

	if !deleted && lastErr != nil {
		return fmt.Errorf("failed to delete token: %w", lastErr)
	}
	if !deleted {
		return fmt.Errorf("token not found: %s", name)
	}

	return nil
}

// DeleteAll removes all stored tokens
func (m *Manager) DeleteAll() error {
	tokens, err := m.List()
	if err != nil {
		return err
	}

	for _, token := range tokens {
		_ = m.Delete(token.Name) // Ignore individual errors
	}

	return nil
}

// getConfigDir returns the configuration directory path
func getConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, "Library", "Application Support", "rocketapi")
	case "windows":
		configDir = filepath.Join(os.Getenv("APPDATA"), "rocketapi")
	default: // Linux and others
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			configDir = filepath.Join(xdgConfig, "rocketapi")
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			configDir = filepath.Join(home, ".config", "rocketapi")
		}
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// SanitizeToken creates a copy of the token with the value masked
func SanitizeToken(token *Token) *Token {
	if token == nil {
		return nil
	}

	return &Token{
		Name:         token.Name,
		Value:        maskString(token.Value),
		LastModified: token.LastModified,
	}
}

// maskString masks all but the first 4 and last 4 characters of a string
func maskString(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

// Errors
var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrInvalidToken     = errors.New("invalid token")
	ErrStoreUnavailable = errors.New("token store unavailable")
)
