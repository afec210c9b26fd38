package tui

import (
	"github.com/MKhiriev/go-borrower-search/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps the visible search form
// 2) handles global ctrl+c quit and the build info overlay
// 3) handles SwitchVariant messages
// 4) delivers search results to the form that started the search
type RootModel struct {
	forms   map[string]*SearchFormModel
	order   []string
	current string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers the forms in order and shows the first one.
func NewRootModel(forms []*SearchFormModel, buildInfo models.AppBuildInfo) RootModel {
	r := RootModel{
		forms:     make(map[string]*SearchFormModel, len(forms)),
		buildInfo: buildInfo,
	}
	for _, f := range forms {
		r.forms[f.variant] = f
		r.order = append(r.order, f.variant)
	}
	if len(r.order) > 0 {
		r.current = r.order[0]
	}
	return r
}

func (r RootModel) Init() tea.Cmd {
	if form := r.forms[r.current]; form != nil {
		return form.Init()
	}
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.info):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case SwitchVariant:
		next := msg.Target
		if next == "" {
			next = r.variantAfter(msg.From)
		}
		form, ok := r.forms[next]
		if !ok {
			return r, nil
		}
		r.current = next
		return r, form.Init()
	case searchDoneMsg:
		// the search may have been started before a switch
		if form, ok := r.forms[msg.variant]; ok {
			_, cmd := form.Update(msg)
			return r, cmd
		}
		return r, nil
	}

	form := r.forms[r.current]
	if form == nil {
		return r, nil
	}
	_, cmd := form.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	form := r.forms[r.current]
	if form == nil {
		return renderPage("BORROWER SEARCH", "", "")
	}
	return form.View()
}

// Current returns the name of the visible variant.
func (r RootModel) Current() string {
	return r.current
}

func (r RootModel) variantAfter(name string) string {
	for i, v := range r.order {
		if v == name {
			return r.order[(i+1)%len(r.order)]
		}
	}
	return r.current
}
