package auth

import (
	"fmt"
	"sync"
)

// MockStore implements TokenStore for testing purposes
type MockStore struct {
	tokens map[string]*Token
	mu     sync.RWMutex

	// Error injection for testing
	StoreError    error
	RetrieveError error
	ListError     error
	DeleteError   error
}

// NewMockStore creates a new mock token store
func NewMockStore() *MockStore {
	return &MockStore{
		tokens: make(map[string]*Token),
	}
}

// Store saves a token to the mock store
func (m *MockStore) Store(token *Token) error {
	if m.StoreError != nil {
		return m.StoreError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if token == nil || token.Name == "" {
		return ErrInvalidToken
	}

	// Store a copy to avoid external modifications
	tokenCopy := *token
	m.tokens[token.Name] = &tokenCopy

	return nil
}

// Retrieve gets a token from the mock store
func (m *MockStore) Retrieve(name string) (*Token, error) {
	if m.RetrieveError != nil {
		return nil, m.RetrieveError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if name == "" {
		return nil, ErrInvalidToken
	}

	token, exists := m.tokens[name]
	if !exists {
		return nil, ErrTokenNotFound
	}

	tokenCopy := *token
	return &tokenCopy, nil
}

// List returns all stored tokens from the mock store
func (m *MockStore) List() ([]*Token, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var tokens []*Token
	for _, token := range m.tokens {
		tokenCopy := *token
		tokens = append(tokens, &tokenCopy)
	}

	return tokens, nil
}

// Delete removes a token from the mock store
func (m *MockStore) Delete(name string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if name == "" {
		return ErrInvalidToken
	}

	if _, exists := m.tokens[name]; !exists {
		return ErrTokenNotFound
	}

	delete(m.tokens, name)
	return nil
}

// Exists checks if a token exists in the mock store
func (m *MockStore) Exists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.tokens[name]
	return exists
}

// Clear removes all tokens from the mock store (useful for test cleanup)
func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens = make(map[string]*Token)
}

// Count returns the number of tokens in the mock store (useful for testing)
func (m *MockStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.tokens)
}

// NewMockManager creates a Manager with a mock store for testing
func NewMockManager() (*Manager, *MockStore) {
	mockStore := NewMockStore()
	manager := &Manager{
		stores: []TokenStore{mockStore},
	}
	return manager, mockStore
}

// NewMockManagerWithStores creates a Manager with explicit stores for testing
func NewMockManagerWithStores(stores ...TokenStore) *Manager {
	return &Manager{
		stores: stores,
	}
}

// GetToken returns a copy of the token for inspection (useful for testing)
func (m *MockStore) GetToken(name string) (*Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	token, exists := m.tokens[name]
	if !exists {
		return nil, fmt.Errorf("token not found: %s", name)
	}

	tokenCopy := *token
	return &tokenCopy, nil
}
