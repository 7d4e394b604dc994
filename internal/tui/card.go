package tui

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/dtroode/gophkeeper-tui/internal/model"
)

// MaskSecret hides secret behind one mask per rune.
func MaskSecret(secret, mask string) string {
	return strings.Repeat(mask, utf8.RuneCountInString(secret))
}

// FormatCreated renders the creation date followed by its age relative to now.
func FormatCreated(createdAt time.Time, layout string, now time.Time) string {
	return createdAt.Format(layout) + " · " + humanize.RelTime(createdAt, now, "ago", "from now")
}

type cardOptions struct {
	revealed   bool
	selected   bool
	mask       string
	dateLayout string
	now        time.Time
}

func renderCard(c model.Credential, opts cardOptions) string {
	secret := MaskSecret(c.Secret, opts.mask)
	revealHint := "show"
	if opts.revealed {
		secret = c.Secret
		revealHint = "hide"
	}

	hint := func(s string) string { return "  " + helpStyle.Render(s) }

	body := lipgloss.JoinVertical(lipgloss.Left,
		websiteStyle.Render(c.Website),
		subtitleStyle.Render(FormatCreated(c.CreatedAt, opts.dateLayout, opts.now)),
		"",
		fieldStyle.Render("user "+c.Username)+hint("u copy"),
		fieldStyle.Render(secret)+hint("v "+revealHint+" · p copy"),
	)

	if opts.selected {
		return cardSelectedStyle.Render(body)
	}
	return cardStyle.Render(body)
}
