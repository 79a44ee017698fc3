package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	focusName = iota
	focusDescription
	focusImage
	focusCount
)

// NoteFormModel is the create-note page. The image is picked by typing a
// local file path; the file's base name becomes the object key.
type NoteFormModel struct {
	ctx  context.Context
	form service.NoteFormService

	// readFile loads the picked image.
	readFile func(string) ([]byte, error)

	name        textinput.Model
	description textarea.Model
	image       textinput.Model
	focus       int

	submitting bool
	errMsg     string
}

func NewNoteFormModel(ctx context.Context, form service.NoteFormService) *NoteFormModel {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 255
	name.Width = 54

	description := textarea.New()
	description.Placeholder = "Description"
	description.CharLimit = 4096
	description.SetWidth(54)
	description.SetHeight(5)

	image := textinput.New()
	image.Placeholder = "/path/to/image.png (optional)"
	image.Width = 54

	m := &NoteFormModel{
		ctx:         ctx,
		form:        form,
		readFile:    os.ReadFile,
		name:        name,
		description: description,
		image:       image,
	}
	m.setFocus(focusName)
	return m
}

func (m *NoteFormModel) Init() tea.Cmd {
	m.errMsg = ""
	return textinput.Blink
}

func (m *NoteFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(noteCreatedMsg); ok {
		m.submitting = false
		payload := showNotesMsg{status: "Note created"}
		switch {
		case errors.Is(result.err, service.ErrRefreshAfterCreate):
			// the note exists, so a resubmit would store it twice
			payload = showNotesMsg{status: "Note created, but the list could not be refreshed", refetch: true}
		case result.err != nil:
			m.errMsg = humanizeError(result.err)
			return m, nil
		}

		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageNotes, Payload: payload}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageNotes, Payload: showNotesMsg{}} }
		case key.Matches(keyMsg, keys.tab):
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus((m.focus - 1 + focusCount) % focusCount)
			return m, nil
		case key.Matches(keyMsg, keys.submit),
			key.Matches(keyMsg, keys.enter) && m.focus != focusDescription:
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
	case focusImage:
		m.image, cmd = m.image.Update(msg)
	}
	return m, cmd
}

func (m *NoteFormModel) View() string {
	var b strings.Builder

	b.WriteString("Name\n")
	b.WriteString(m.name.View())
	b.WriteString("\n\nDescription\n")
	b.WriteString(m.description.View())
	b.WriteString("\n\nImage\n")
	b.WriteString(m.image.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Creating...]\n")
	} else {
		b.WriteString("\n[Create note]\n")
	}

	renderMessages(&b, "", m.errMsg)

	return renderPage("NEW NOTE", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+s: create")
}

func (m *NoteFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	draft := models.NoteDraft{
		Name:        m.name.Value(),
		Description: m.description.Value(),
	}
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Description) == "" {
		m.errMsg = "Name and description are required"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx := m.ctx
	form := m.form
	readFile := m.readFile
	imagePath := strings.TrimSpace(m.image.Value())

	return func() tea.Msg {
		if imagePath != "" {
			data, err := readFile(imagePath)
			if err != nil {
				return noteCreatedMsg{err: fmt.Errorf("read image: %w", err)}
			}
			draft.Image = &models.ImageFile{FileName: filepath.Base(imagePath), Data: data}
		}
		return noteCreatedMsg{err: form.Create(ctx, draft)}
	}
}

func (m *NoteFormModel) reset() {
	m.name.SetValue("")
	m.description.Reset()
	m.image.SetValue("")
	m.errMsg = ""
	m.setFocus(focusName)
}

func (m *NoteFormModel) setFocus(focus int) {
	m.focus = focus
	m.name.Blur()
	m.description.Blur()
	m.image.Blur()

	switch focus {
	case focusName:
		m.name.Focus()
	case focusDescription:
		m.description.Focus()
	case focusImage:
		m.image.Focus()
	}
}
