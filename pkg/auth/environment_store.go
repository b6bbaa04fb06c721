package auth

import (
	"os"
	"time"
)

// EnvironmentStore implements TokenStore using environment variables.
// This is primarily for CI and scripting use.
type EnvironmentStore struct{}

// NewEnvironmentStore creates a new environment-based token store
func NewEnvironmentStore() *EnvironmentStore {
	return &EnvironmentStore{}
}

// Store is not supported for environment variables
func (e *EnvironmentStore) Store(token *Token) error {
	return ErrStoreUnavailable
}

// Retrieve gets the token from the ROCKETAPI_TOKEN environment variable
func (e *EnvironmentStore) Retrieve(name string) (*Token, error) {
	value := os.Getenv("ROCKETAPI_TOKEN")
	if value == "" {
		return nil, ErrTokenNotFound
	}

	// The environment doesn't store a name, so we use "default" or the
	// provided one
	if name == "" {
		name = "default"
	}

	return &Token{
		Name:         name,
		Value:        value,
		LastModified: time.Now(),
	}, nil
}

// List returns a single token if the environment variable is set
func (e *EnvironmentStore) List() ([]*Token, error) {
	token, err := e.Retrieve("")
	if err != nil {
		return []*Token{}, nil
	}
	return []*Token{token}, nil
}

// Delete is not supported for environment variables
func (e *EnvironmentStore) Delete(name string) error {
	return ErrStoreUnavailable
}

// Exists checks if the environment token is set
func (e *EnvironmentStore) Exists(name string) bool {
	return os.Getenv("ROCKETAPI_TOKEN") != ""
}
