package tui

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/workers"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles the global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) opens the notes page after sign-in and the menu after sign-out
// 5) hands background refresh results to the notes page on any page
// 6) delegates all other messages to the active page
type RootModel struct {
	ctx        context.Context
	pages      map[string]tea.Model
	current    tea.Model
	background workers.Worker

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage. background is
// started after every sign-in and stopped on sign-out; it may be nil.
func NewRootModel(
	ctx context.Context,
	pages map[string]tea.Model,
	startPage string,
	buildInfo models.AppBuildInfo,
	background workers.Worker,
) RootModel {
	return RootModel{
		ctx:        ctx,
		pages:      pages,
		current:    pages[startPage],
		buildInfo:  buildInfo,
		background: background,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		return r.navigate(nav)
	}

	switch result := msg.(type) {
	case LoginResult:
		if result.Err == nil {
			return r.signIn(msg)
		}
	case RegisterResult:
		if result.Err == nil {
			return r.signIn(msg)
		}
	case refreshMsg:
		return r.deliverRefresh(result)
	case signedOutMsg:
		if r.background != nil {
			r.background.Stop()
		}
		return r.navigate(NavigateTo{
			Page:    pageMenu,
			Payload: SignedOutNotice{Login: result.login, Err: result.err},
		})
	}

	return r.delegate(msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return appStyle.Render(r.current.View())
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next

	if nav.Payload != nil {
		return r, func() tea.Msg { return nav.Payload }
	}
	return r, r.current.Init()
}

// signIn lets the auth page see its result, then opens the notes page.
func (r RootModel) signIn(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := r.delegate(msg)
	root := model.(RootModel)

	if root.background != nil {
		root.background.Start(root.ctx)
	}

	return root, tea.Batch(cmd, func() tea.Msg { return NavigateTo{Page: pageNotes} })
}

func (r RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// deliverRefresh routes msg to the notes page even when another page is
// shown. The notes page re-arms the listener only when it sees the result.
func (r RootModel) deliverRefresh(msg refreshMsg) (tea.Model, tea.Cmd) {
	notes, ok := r.pages[pageNotes]
	if !ok {
		return r.delegate(msg)
	}

	updated, cmd := notes.Update(msg)
	r.pages[pageNotes] = updated
	if r.current == notes {
		r.current = updated
	}
	return r, cmd
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
