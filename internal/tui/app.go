package tui

import (
	"github.com/MKhiriev/mentem-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageConsent  = "consent"
)

// RootModel is the router of the login flow:
// 1) keeps the active page
// 2) handles global ctrl+c quit and the version window
// 3) handles NavigateTo messages
// 4) finishes the flow on login, consent or decline
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	declined   bool
	identity   models.Identity
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	if nav, ok := msg.(NavigateTo); ok {
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

	switch result := msg.(type) {
	case LoginResult:
		if result.Err == nil {
			r.delegate(result)
			r.identity = result.Identity
			if result.Identity.ConsentGiven {
				return r, tea.Quit
			}
			return r, func() tea.Msg {
				return NavigateTo{Page: pageConsent, Payload: consentPrompt{identity: result.Identity}}
			}
		}
	case ConsentResult:
		if result.Err == nil {
			r.identity.ConsentGiven = true
			return r, tea.Quit
		}
	case consentDeclinedMsg:
		r.declined = true
		return r, tea.Quit
	}

	return r, r.delegate(msg)
}

func (r *RootModel) delegate(msg tea.Msg) tea.Cmd {
	if r.current == nil {
		return nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.current == nil {
		return renderPage("MENTEM PORTAL", "", "")
	}
	return appStyle.Render(r.current.View())
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
