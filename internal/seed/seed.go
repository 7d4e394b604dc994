// Package seed provides the credentials a session starts with.
package seed

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dtroode/gophkeeper-tui/internal/model"
)

// Demo returns the built-in mock credentials relative to now.
func Demo(now time.Time) []model.Credential {
	return []model.Credential{
		{
			ID:        uuid.New(),
			Website:   "github.com",
			Username:  "developer@email.com",
			Secret:    "SecurePass123!",
			CreatedAt: now,
		},
		{
			ID:        uuid.New(),
			Website:   "google.com",
			Username:  "user@gmail.com",
			Secret:    "MyPassword456",
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}
}

type file struct {
	Credentials []entry `yaml:"credentials"`
}

type entry struct {
	ID        string    `yaml:"id"`
	Website   string    `yaml:"website"`
	Username  string    `yaml:"username"`
	Password  string    `yaml:"password"`
	CreatedAt time.Time `yaml:"created_at"`
}

// LoadFile reads seed credentials from a YAML file.
func LoadFile(path string, now time.Time) ([]model.Credential, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return Decode(f, now)
}

// Decode parses YAML seed data. Missing ids are generated and missing
// creation times default to now. Entries keep the order they appear in.
func Decode(r io.Reader, now time.Time) ([]model.Credential, error) {
	var doc file
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return []model.Credential{}, nil
		}
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	credentials := make([]model.Credential, 0, len(doc.Credentials))
	seen := make(map[uuid.UUID]struct{}, len(doc.Credentials))
	for i, e := range doc.Credentials {
		c, err := e.toModel(now)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("seed entry %d: duplicate id %s", i, c.ID)
		}
		seen[c.ID] = struct{}{}
		credentials = append(credentials, c)
	}

	return credentials, nil
}

func (e entry) toModel(now time.Time) (model.Credential, error) {
	var empty []string
	if strings.TrimSpace(e.Website) == "" {
		empty = append(empty, model.FieldWebsite)
	}
	if strings.TrimSpace(e.Username) == "" {
		empty = append(empty, model.FieldUsername)
	}
	if len(empty) > 0 {
		return model.Credential{}, model.NewValidationError(empty...)
	}

	id := uuid.New()
	if e.ID != "" {
		parsed, err := uuid.Parse(e.ID)
		if err != nil {
			return model.Credential{}, fmt.Errorf("invalid id %q: %w", e.ID, err)
		}
		id = parsed
	}

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	return model.Credential{
		ID:        id,
		Website:   e.Website,
		Username:  e.Username,
		Secret:    e.Password,
		CreatedAt: createdAt,
	}, nil
}
