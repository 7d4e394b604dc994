package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/gophkeeper-tui/internal/model"
)

var _ model.CredentialRepository = (*CredentialRepository)(nil)

// CredentialRepository keeps credentials in a slice ordered newest first.
type CredentialRepository struct {
	mu          sync.RWMutex
	credentials []model.Credential
}

func NewCredentialRepository() *CredentialRepository {
	return &CredentialRepository{}
}

// Replace sets the contents to exactly the given credentials, keeping their order.
func (r *CredentialRepository) Replace(_ context.Context, credentials []model.Credential) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.credentials = slices.Clone(credentials)
}

func (r *CredentialRepository) Prepend(_ context.Context, credential model.Credential) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.credentials = slices.Insert(r.credentials, 0, credential)
}

// Delete removes the credential with the given id and reports whether it was present.
func (r *CredentialRepository) Delete(_ context.Context, id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.credentials, func(c model.Credential) bool {
		return c.ID == id
	})
	if idx < 0 {
		return false
	}

	r.credentials = slices.Delete(r.credentials, idx, idx+1)
	return true
}

// List returns a copy of the stored credentials.
func (r *CredentialRepository) List(_ context.Context) []model.Credential {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.credentials)
}

func (r *CredentialRepository) Len(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.credentials)
}
