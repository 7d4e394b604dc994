package search

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/gophkeeper-tui/internal/model"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	github := model.Credential{ID: uuid.New(), Website: "GitHub.com", Username: "dev@x.com", Secret: "gmail-secret"}
	google := model.Credential{ID: uuid.New(), Website: "google.com", Username: "user@gmail.com", Secret: "hunter2"}
	entries := []model.Credential{github, google}

	tests := []struct {
		name  string
		query string
		want  []model.Credential
	}{
		{name: "empty query", query: "", want: entries},
		{name: "whitespace query", query: "   \t", want: entries},
		{name: "website match", query: "git", want: []model.Credential{github}},
		{name: "username match ignores case", query: "GMAIL", want: []model.Credential{google}},
		{name: "both match keeps order", query: "com", want: []model.Credential{github, google}},
		{name: "secret is not searched", query: "hunter", want: []model.Credential{}},
		{name: "no match", query: "bitbucket", want: []model.Credential{}},
		{name: "control characters", query: "\x00\x1b", want: []model.Credential{}},
		{name: "very long query", query: strings.Repeat("a", 10_000), want: []model.Credential{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Filter(entries, tt.query))
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	entries := []model.Credential{
		{ID: uuid.New(), Website: "a.com", Username: "u1"},
		{ID: uuid.New(), Website: "b.org", Username: "u2"},
		{ID: uuid.New(), Website: "c.com", Username: "u3"},
	}
	before := append([]model.Credential(nil), entries...)

	got := Filter(entries, ".com")

	assert.Equal(t, before, entries)
	assert.Equal(t, []model.Credential{entries[0], entries[2]}, got)
	assert.Equal(t, got, Filter(entries, ".com"))
}

func TestMatches(t *testing.T) {
	t.Parallel()

	c := model.Credential{Website: "Example.org", Username: "Alice", Secret: "wonderland"}

	assert.True(t, Matches(c, ""))
	assert.True(t, Matches(c, "EXAMPLE"))
	assert.True(t, Matches(c, "ali"))
	assert.False(t, Matches(c, "wonder"))
}
