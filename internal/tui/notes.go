// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// NotesModel is the notes page. It renders the held list with a detail pane
// for the selected note and drives delete, refresh, copy and sign-out.
type NotesModel struct {
	ctx     context.Context
	list    service.NoteListService
	form    service.NoteFormService
	auth    service.ClientAuthService
	appInfo service.ClientAppInfoService
	updates <-chan service.RefreshResult
	limit   int

	// copyText writes to the system clipboard.
	copyText func(string) error

	notes    []models.Note
	filtered []int
	cursor   int

	filter    textinput.Model
	filtering bool

	confirmDelete bool
	loading       bool
	listening     bool
	serverVersion string
	status        string
	errMsg        string
}

// NewNotesModel creates the notes page. updates may be nil when no
// background refresh runs.
func NewNotesModel(ctx context.Context, services *service.ClientServices, limit int) *NotesModel {
	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.Prompt = "/ "
	filter.Width = 40

	var updates <-chan service.RefreshResult
	if services.RefreshJob != nil {
		updates = services.RefreshJob.Updates()
	}

	return &NotesModel{
		ctx:      ctx,
		list:     services.NoteList,
		form:     services.NoteForm,
		auth:     services.AuthService,
		appInfo:  services.AppInfo,
		updates:  updates,
		limit:    limit,
		copyText: clipboard.WriteAll,
		filter:   filter,
	}
}

// Init fetches the list and the server version. The refresh listener is
// armed once per model.
func (m *NotesModel) Init() tea.Cmd {
	m.loading = true
	m.status, m.errMsg = "", ""
	m.confirmDelete = false

	cmds := []tea.Cmd{m.cmdFetch(), m.cmdServerVersion()}
	if !m.listening && m.updates != nil {
		m.listening = true
		cmds = append(cmds, m.waitRefresh())
	}
	return tea.Batch(cmds...)
}

func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.setNotes(msg.notes)
		return m, nil

	case refreshMsg:
		// background results keep arriving until the program exits
		next := m.waitRefresh()
		if msg.result.Err != nil {
			return m, tea.Batch(next, m.handleError(msg.result.Err))
		}
		m.setNotes(msg.result.Notes)
		return m, next

	case showNotesMsg:
		m.setNotes(m.list.Notes())
		m.errMsg = ""
		var cmds []tea.Cmd
		if msg.refetch {
			m.loading = true
			cmds = append(cmds, m.cmdFetch())
		}
		if msg.status != "" {
			m.status = msg.status
			cmds = append(cmds, cmdClearStatus())
		}
		return m, tea.Batch(cmds...)

	case noteDeletedMsg:
		m.loading = false
		m.setNotes(m.list.Notes())
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.status = "Note deleted"
		return m, cmdClearStatus()

	case serverVersionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy to clipboard: %v", msg.err)
			return m, nil
		}
		m.status = "Image URL copied"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		if m.confirmDelete {
			return m.updateConfirm(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *NotesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.newNote):
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Page: pageForm} }
	case key.Matches(msg, keys.delete):
		if _, ok := m.selected(); ok && !m.loading {
			m.confirmDelete = true
		}
	case key.Matches(msg, keys.copy):
		note, ok := m.selected()
		if !ok {
			return m, nil
		}
		if !note.HasImage() {
			m.errMsg = "Selected note has no image"
			return m, nil
		}
		return m, m.cmdCopy(note.Image)
	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, m.cmdFetch()
	case key.Matches(msg, keys.signOut):
		return m, m.cmdSignOut()
	case key.Matches(msg, keys.filter):
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.esc):
		m.filter.SetValue("")
		m.applyFilter()
	}

	return m, nil
}

func (m *NotesModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case key.Matches(msg, keys.esc):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *NotesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmDelete = false
		note, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.loading = true
		return m, m.cmdDelete(note.ID)
	case key.Matches(msg, keys.no):
		m.confirmDelete = false
	}
	return m, nil
}

func (m *NotesModel) View() string {
	var b strings.Builder

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && len(m.notes) == 0:
		b.WriteString("Loading...\n")
	case len(m.notes) == 0:
		b.WriteString("No notes yet, press n to create one\n")
	case len(m.filtered) == 0:
		b.WriteString("Nothing matches the filter\n")
	default:
		m.renderTable(&b)
		m.renderDetail(&b)
	}

	if m.confirmDelete {
		if note, ok := m.selected(); ok {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Delete %q? y: yes │ n: no", note.Name)))
			b.WriteString("\n")
		}
	}

	renderMessages(&b, m.status, m.errMsg)

	if m.serverVersion != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("server " + m.serverVersion))
	}

	title := fmt.Sprintf("NOTES (%d/%d)", len(m.notes), m.limit)
	hotKeys := "n: new │ d: delete │ c: copy image URL │ r: refresh │ /: filter │ s: sign out"
	if m.filtering {
		hotKeys = "enter: apply │ esc: clear"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *NotesModel) renderTable(b *strings.Builder) {
	b.WriteString(fmt.Sprintf("  %-3s │ %-24s │ %-5s\n", "#", "Name", "Image"))
	b.WriteString("──────┼──────────────────────────┼──────\n")

	for row, idx := range m.filtered {
		note := m.notes[idx]
		image := "no"
		if note.HasImage() {
			image = "yes"
		}

		line := fmt.Sprintf("%-3d │ %-24s │ %-5s", idx+1, fitText(note.Name, 24), image)
		if row == m.cursor {
			b.WriteString("> ")
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
}

func (m *NotesModel) renderDetail(b *strings.Builder) {
	note, ok := m.selected()
	if !ok {
		return
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString("Name:        ")
	b.WriteString(note.Name)
	b.WriteString("\n")
	b.WriteString("Description: ")
	b.WriteString(note.Description)
	b.WriteString("\n")
	b.WriteString("Image:       ")
	b.WriteString(fitText(valueOrDash(note.Image), 96))
	b.WriteString("\n")
	if !note.CreatedAt.IsZero() {
		b.WriteString("Created:     ")
		b.WriteString(note.CreatedAt.Local().Format(time.DateTime))
		b.WriteString("\n")
	}
}

func (m *NotesModel) setNotes(notes []models.Note) {
	var selectedID string
	if note, ok := m.selected(); ok {
		selectedID = note.ID
	}

	m.notes = notes
	m.applyFilter()

	// keep the cursor on the same note across refetches
	for row, idx := range m.filtered {
		if m.notes[idx].ID == selectedID {
			m.cursor = row
			return
		}
	}
}

func (m *NotesModel) applyFilter() {
	m.filtered = filterNotes(m.notes, m.filter.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m *NotesModel) selected() (models.Note, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return models.Note{}, false
	}
	return m.notes[m.filtered[m.cursor]], true
}

// handleError shows err. An expired session signs the user out.
func (m *NotesModel) handleError(err error) tea.Cmd {
	if errors.Is(err, service.ErrUnauthorized) || errors.Is(err, service.ErrNotAuthenticated) {
		return m.cmdSignOut()
	}
	m.errMsg = humanizeError(err)
	return nil
}

func (m *NotesModel) cmdFetch() tea.Cmd {
	ctx := m.ctx
	list := m.list
	return func() tea.Msg {
		notes, err := list.FetchAll(ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m *NotesModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	form := m.form
	return func() tea.Msg {
		return noteDeletedMsg{err: form.Delete(ctx, id)}
	}
}

func (m *NotesModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		session, _ := auth.Session()
		err := auth.SignOut(ctx)
		return signedOutMsg{login: session.Login, err: err}
	}
}

func (m *NotesModel) cmdServerVersion() tea.Cmd {
	if m.appInfo == nil {
		return nil
	}
	ctx := m.ctx
	appInfo := m.appInfo
	return func() tea.Msg {
		version, err := appInfo.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func (m *NotesModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}

func (m *NotesModel) waitRefresh() tea.Cmd {
	updates := m.updates
	return func() tea.Msg {
		result, ok := <-updates
		if !ok {
			return nil
		}
		return refreshMsg{result: result}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
