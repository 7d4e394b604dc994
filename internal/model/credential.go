package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CredentialRepository defines in-memory storage operations for credentials.
// Implementations keep entries in display order, newest first.
type CredentialRepository interface {
	Replace(ctx context.Context, credentials []Credential)
	Prepend(ctx context.Context, credential Credential)
	Delete(ctx context.Context, id uuid.UUID) bool
	List(ctx context.Context) []Credential
	Len(ctx context.Context) int
}

// Credential represents a stored website login.
type Credential struct {
	ID        uuid.UUID
	Website   string
	Username  string
	Secret    string
	CreatedAt time.Time
}

// NewCredentialParams contains parameters to add a credential.
type NewCredentialParams struct {
	Website  string
	Username string
	Secret   string
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}
