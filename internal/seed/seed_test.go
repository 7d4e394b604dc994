package seed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gophkeeper-tui/internal/model"
)

var now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func TestDemo(t *testing.T) {
	t.Parallel()

	got := Demo(now)

	require.Len(t, got, 2)
	assert.Equal(t, "github.com", got[0].Website)
	assert.Equal(t, "developer@email.com", got[0].Username)
	assert.Equal(t, now, got[0].CreatedAt)
	assert.Equal(t, "google.com", got[1].Website)
	assert.Equal(t, now.Add(-24*time.Hour), got[1].CreatedAt)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	input := `
credentials:
  - id: 550e8400-e29b-41d4-a716-446655440000
    website: example.com
    username: alice
    password: s3cret
    created_at: 2026-01-02T03:04:05Z
  - website: example.org
    username: bob
    password: hunter2
`
	got, err := Decode(strings.NewReader(input), now)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, model.Credential{
		ID:        uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Website:   "example.com",
		Username:  "alice",
		Secret:    "s3cret",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}, got[0])

	assert.Equal(t, "example.org", got[1].Website)
	assert.Equal(t, "hunter2", got[1].Secret)
	assert.Equal(t, now, got[1].CreatedAt)
	assert.NotEqual(t, uuid.Nil, got[1].ID)
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	got, err := Decode(strings.NewReader(""), now)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "malformed yaml",
			input: "credentials: [",
		},
		{
			name:  "missing website",
			input: "credentials:\n  - username: bob\n    password: x\n",
		},
		{
			name:  "bad id",
			input: "credentials:\n  - id: nope\n    website: a.com\n    username: bob\n",
		},
		{
			name: "duplicate id",
			input: "credentials:\n" +
				"  - id: 550e8400-e29b-41d4-a716-446655440000\n    website: a.com\n    username: a\n" +
				"  - id: 550e8400-e29b-41d4-a716-446655440000\n    website: b.com\n    username: b\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(strings.NewReader(tt.input), now)
			assert.Error(t, err)
		})
	}
}

func TestDecode_MissingFieldIsValidationError(t *testing.T) {
	_, err := Decode(strings.NewReader("credentials:\n  - password: x\n"), now)

	var vErr *model.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{model.FieldWebsite, model.FieldUsername}, vErr.Fields)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("credentials:\n  - website: a.com\n    username: u\n    password: p\n"), 0o600))

	got, err := LoadFile(path, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a.com", got[0].Website)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), now)
	assert.Error(t, err)
}
