package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/gophkeeper-tui/internal/logger"
	"github.com/dtroode/gophkeeper-tui/internal/model"
	"github.com/dtroode/gophkeeper-tui/internal/search"
)

// Credentials owns the session's credential collection.
type Credentials struct {
	repo   model.CredentialRepository
	logger *logger.Logger
	now    func() time.Time
	newID  func() uuid.UUID
}

func NewCredentials(repo model.CredentialRepository, logger *logger.Logger) *Credentials {
	return &Credentials{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		newID:  uuid.New,
	}
}

// Initialize replaces the collection with seed, keeping its order.
func (s *Credentials) Initialize(ctx context.Context, seed []model.Credential) {
	s.repo.Replace(ctx, seed)
	s.logger.Info("credential store initialized", "count", len(seed))
}

// Add validates params and stores a new credential in front of the existing ones.
func (s *Credentials) Add(ctx context.Context, params model.NewCredentialParams) (model.Credential, error) {
	if err := validateParams(params); err != nil {
		s.logger.Debug("rejected credential", "error", err)
		return model.Credential{}, err
	}

	credential := model.Credential{
		ID:        s.newID(),
		Website:   params.Website,
		Username:  params.Username,
		Secret:    params.Secret,
		CreatedAt: s.now(),
	}
	s.repo.Prepend(ctx, credential)

	s.logger.Info("credential added", "id", credential.ID, "website", credential.Website)

	return credential, nil
}

// Delete removes the credential with id. Unknown ids are ignored.
func (s *Credentials) Delete(ctx context.Context, id uuid.UUID) bool {
	removed := s.repo.Delete(ctx, id)
	if removed {
		s.logger.Info("credential deleted", "id", id)
	} else {
		s.logger.Debug("credential already absent", "id", id)
	}

	return removed
}

func (s *Credentials) List(ctx context.Context) []model.Credential {
	return s.repo.List(ctx)
}

// Search filters the current snapshot by query.
func (s *Credentials) Search(ctx context.Context, query string) []model.Credential {
	return search.Filter(s.repo.List(ctx), query)
}

func (s *Credentials) Len(ctx context.Context) int {
	return s.repo.Len(ctx)
}

func validateParams(params model.NewCredentialParams) error {
	var empty []string
	if strings.TrimSpace(params.Website) == "" {
		empty = append(empty, model.FieldWebsite)
	}
	if strings.TrimSpace(params.Username) == "" {
		empty = append(empty, model.FieldUsername)
	}
	if strings.TrimSpace(params.Secret) == "" {
		empty = append(empty, model.FieldSecret)
	}

	if len(empty) > 0 {
		return model.NewValidationError(empty...)
	}
	return nil
}
