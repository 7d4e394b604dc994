// Package tui is the terminal front end of the password manager. It renders
// the credential list, search box and add dialog, and turns key presses into
// store commands followed by a recompute of the visible list.
package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/dtroode/gophkeeper-tui/internal/logger"
	"github.com/dtroode/gophkeeper-tui/internal/model"
)

// CredentialService is the store the UI drives.
type CredentialService interface {
	Add(ctx context.Context, params model.NewCredentialParams) (model.Credential, error)
	Delete(ctx context.Context, id uuid.UUID) bool
	Search(ctx context.Context, query string) []model.Credential
	Len(ctx context.Context) int
}

// Options contains presentation parameters.
type Options struct {
	ToastDuration time.Duration
	DateLayout    string
	MaskChar      string
}

type mode int

const (
	modeList mode = iota
	modeSearch
	modeAdd
)

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	label string
	err   error
}

// Model is the root bubbletea model.
type Model struct {
	ctx       context.Context
	svc       CredentialService
	clipboard model.Clipboard
	logger    *logger.Logger
	opts      Options
	now       func() time.Time

	keys   keyMap
	help   help.Model
	search textinput.Model
	form   addForm
	mode   mode

	visible  []model.Credential
	cursor   int
	revealed map[uuid.UUID]bool

	toast    *toast
	toastSeq int

	width, height int
}

var _ tea.Model = (*Model)(nil)

func New(ctx context.Context, svc CredentialService, clipboard model.Clipboard, logger *logger.Logger, opts Options) *Model {
	keys := newKeyMap()

	search := textinput.New()
	search.Prompt = "⌕ "
	search.Placeholder = "Search passwords..."
	search.Width = 40

	m := &Model{
		ctx:       ctx,
		svc:       svc,
		clipboard: clipboard,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
		keys:      keys,
		help:      help.New(),
		search:    search,
		form:      newAddForm(keys, opts.MaskChar),
		revealed:  make(map[uuid.UUID]bool),
	}
	m.refresh()

	return m
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, m *Model, altScreen bool) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run tui: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// refresh recomputes the visible list from the current store snapshot.
func (m *Model) refresh() {
	m.visible = m.svc.Search(m.ctx, m.search.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

func (m *Model) selected() (model.Credential, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return model.Credential{}, false
	}
	return m.visible[m.cursor], true
}

func (m *Model) showToast(title, description string, destructive bool) tea.Cmd {
	m.toastSeq++
	m.toast = &toast{
		title:       title,
		description: description,
		destructive: destructive,
		seq:         m.toastSeq,
	}
	return expireToastCmd(m.toastSeq, m.opts.ToastDuration)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastExpiredMsg:
		if m.toast != nil && m.toast.seq == msg.seq {
			m.toast = nil
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn("clipboard write failed", "error", msg.err)
			return m, m.showToast("Failed to copy", "Could not copy to clipboard", true)
		}
		return m, m.showToast(msg.label+" copied!", "Successfully copied to clipboard", false)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
	}

	switch m.mode {
	case modeAdd:
		return m.updateForm(msg)
	case modeSearch:
		return m.updateSearch(msg)
	default:
		return m.updateList(msg)
	}
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Search):
		m.mode = modeSearch
		return m, m.search.Focus()

	case key.Matches(keyMsg, m.keys.ClearSearch):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refresh()
		}

	case key.Matches(keyMsg, m.keys.Add):
		m.mode = modeAdd
		return m, m.form.open()

	case key.Matches(keyMsg, m.keys.Delete):
		c, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.svc.Delete(m.ctx, c.ID)
		delete(m.revealed, c.ID)
		m.refresh()
		return m, m.showToast("Password deleted", c.Website+" was removed", false)

	case key.Matches(keyMsg, m.keys.Reveal):
		if c, ok := m.selected(); ok {
			m.revealed[c.ID] = !m.revealed[c.ID]
		}

	case key.Matches(keyMsg, m.keys.CopyUsername):
		if c, ok := m.selected(); ok {
			return m, copyCmd(m.clipboard, c.Username, "Username")
		}

	case key.Matches(keyMsg, m.keys.CopySecret):
		if c, ok := m.selected(); ok {
			return m, copyCmd(m.clipboard, c.Secret, "Password")
		}
	}

	return m, nil
}

func (m *Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.ClearSearch):
			m.search.SetValue("")
			m.search.Blur()
			m.mode = modeList
			m.refresh()
			return m, nil
		case key.Matches(keyMsg, m.keys.DoneSearch):
			m.search.Blur()
			m.mode = modeList
			return m, nil
		}
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.cursor = 0
		m.refresh()
	}

	return m, cmd
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		action formAction
		cmd    tea.Cmd
	)
	m.form, action, cmd = m.form.Update(msg)

	switch action {
	case formCancel:
		m.mode = modeList
		return m, nil
	case formSubmit:
		return m, m.submitForm()
	}

	return m, cmd
}

func (m *Model) submitForm() tea.Cmd {
	created, err := m.svc.Add(m.ctx, m.form.params())
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			return m.showToast("Missing fields", "Please fill in all fields", true)
		}
		m.logger.Error("failed to add credential", "error", err)
		return m.showToast("Failed to save", err.Error(), true)
	}

	m.form.reset()
	m.mode = modeList
	m.refresh()
	if idx := slices.IndexFunc(m.visible, func(c model.Credential) bool { return c.ID == created.ID }); idx >= 0 {
		m.cursor = idx
	}

	return m.showToast("Password added!", "Successfully saved your password", false)
}

func copyCmd(clipboard model.Clipboard, text, label string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{label: label, err: clipboard.WriteAll(text)}
	}
}
