package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dtroode/gophkeeper-tui/internal/model"
)

const (
	inputWebsite = iota
	inputUsername
	inputSecret
	buttonSave
	buttonCancel
)

type formAction int

const (
	formNone formAction = iota
	formSubmit
	formCancel
)

// addForm is the "Add New Password" dialog.
type addForm struct {
	inputs     []textinput.Model
	focusIndex int
	keys       keyMap
}

func newAddForm(keys keyMap, mask string) addForm {
	f := addForm{
		inputs: make([]textinput.Model, 3),
		keys:   keys,
	}

	for i := range f.inputs {
		t := textinput.New()
		t.Cursor.Style = focusedInputStyle
		t.Width = 40

		switch i {
		case inputWebsite:
			t.Prompt = "Website:        "
			t.Placeholder = "example.com"
		case inputUsername:
			t.Prompt = "Username/Email: "
			t.Placeholder = "your@email.com"
		case inputSecret:
			t.Prompt = "Password:       "
			t.Placeholder = "••••••••"
			t.EchoMode = textinput.EchoPassword
			if r := []rune(mask); len(r) > 0 {
				t.EchoCharacter = r[0]
			}
		}
		f.inputs[i] = t
	}

	return f
}

func (f addForm) params() model.NewCredentialParams {
	return model.NewCredentialParams{
		Website:  f.inputs[inputWebsite].Value(),
		Username: f.inputs[inputUsername].Value(),
		Secret:   f.inputs[inputSecret].Value(),
	}
}

// open focuses the first field.
func (f *addForm) open() tea.Cmd {
	return f.setFocus(inputWebsite)
}

func (f *addForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
}

func (f *addForm) setFocus(idx int) tea.Cmd {
	f.focusIndex = idx
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == idx {
			cmd = f.inputs[i].Focus()
			f.inputs[i].TextStyle = focusedInputStyle
			f.inputs[i].PromptStyle = focusedInputStyle
			continue
		}
		f.inputs[i].Blur()
		f.inputs[i].TextStyle = lipgloss.NewStyle()
		f.inputs[i].PromptStyle = lipgloss.NewStyle()
	}
	return cmd
}

func (f addForm) Update(msg tea.Msg) (addForm, formAction, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, f.keys.Cancel):
			return f, formCancel, nil
		case key.Matches(keyMsg, f.keys.Submit):
			if f.focusIndex == buttonCancel {
				return f, formCancel, nil
			}
			return f, formSubmit, nil
		case key.Matches(keyMsg, f.keys.Next):
			return f, formNone, f.setFocus((f.focusIndex + 1) % (buttonCancel + 1))
		case key.Matches(keyMsg, f.keys.Prev):
			return f, formNone, f.setFocus((f.focusIndex + buttonCancel) % (buttonCancel + 1))
		}
	}

	if f.focusIndex >= len(f.inputs) {
		return f, formNone, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focusIndex], cmd = f.inputs[f.focusIndex].Update(msg)
	return f, formNone, cmd
}

func (f addForm) View() string {
	rows := []string{titleStyle.Render("Add New Password"), ""}
	for i := range f.inputs {
		rows = append(rows, f.inputs[i].View())
	}

	save, cancel := buttonStyle, buttonStyle
	switch f.focusIndex {
	case buttonSave:
		save = activeButtonStyle
	case buttonCancel:
		cancel = activeButtonStyle
	}
	rows = append(rows, "", lipgloss.JoinHorizontal(lipgloss.Top,
		save.Render("Save Password"),
		cancel.Render("Cancel"),
	))

	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
