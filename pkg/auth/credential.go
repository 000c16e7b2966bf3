package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Credential is an identifier with a bcrypt-hashed secret.
type Credential struct {
	ID           uuid.UUID
	Identifier   string
	PasswordHash []byte
}

// NewCredential hashes secret with the given bcrypt cost.
func NewCredential(identifier, secret string, cost int) (*Credential, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash secret: %w", err)
	}
	return &Credential{
		ID:           uuid.New(),
		Identifier:   identifier,
		PasswordHash: hash,
	}, nil
}

// Matches reports whether secret hashes to the stored value.
func (c *Credential) Matches(secret string) bool {
	return bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(secret)) == nil
}

// CredentialStore looks credentials up.
type CredentialStore interface {
	ByIdentifier(ctx context.Context, identifier string) (*Credential, error)
	ByID(ctx context.Context, id uuid.UUID) (*Credential, error)
}

// MemoryCredentials is a fixed in-memory credential table.
// Identifiers are matched exactly; no case folding or trimming is applied.
type MemoryCredentials struct {
	mu           sync.RWMutex
	byIdentifier map[string]*Credential
	byID         map[uuid.UUID]*Credential
}

func NewMemoryCredentials(creds ...*Credential) (*MemoryCredentials, error) {
	m := &MemoryCredentials{
		byIdentifier: make(map[string]*Credential, len(creds)),
		byID:         make(map[uuid.UUID]*Credential, len(creds)),
	}
	for _, c := range creds {
		if err := m.Add(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MemoryCredentials) Add(c *Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byIdentifier[c.Identifier]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateIdentity, c.Identifier)
	}
	m.byIdentifier[c.Identifier] = c
	m.byID[c.ID] = c
	return nil
}

func (m *MemoryCredentials) ByIdentifier(_ context.Context, identifier string) (*Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.byIdentifier[identifier]
	if !ok {
		return nil, ErrCredentialNotFound
	}
	return c, nil
}

func (m *MemoryCredentials) ByID(_ context.Context, id uuid.UUID) (*Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.byID[id]
	if !ok {
		return nil, ErrCredentialNotFound
	}
	return c, nil
}
