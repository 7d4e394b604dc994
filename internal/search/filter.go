// Package search derives the visible subset of credentials for a query.
package search

import (
	"strings"

	"github.com/dtroode/gophkeeper-tui/internal/model"
)

// Filter returns the credentials whose website or username contains query,
// ignoring case. Order is preserved. A blank query returns credentials as is.
func Filter(credentials []model.Credential, query string) []model.Credential {
	if strings.TrimSpace(query) == "" {
		return credentials
	}

	needle := strings.ToLower(query)
	matched := make([]model.Credential, 0, len(credentials))
	for _, c := range credentials {
		if matches(c, needle) {
			matched = append(matched, c)
		}
	}

	return matched
}

// Matches reports whether a single credential would pass Filter for query.
func Matches(credential model.Credential, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	return matches(credential, strings.ToLower(query))
}

func matches(c model.Credential, needle string) bool {
	return strings.Contains(strings.ToLower(c.Website), needle) ||
		strings.Contains(strings.ToLower(c.Username), needle)
}
