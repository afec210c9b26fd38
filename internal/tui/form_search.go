// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-borrower-search/internal/service"
	"github.com/MKhiriev/go-borrower-search/internal/state"
	"github.com/MKhiriev/go-borrower-search/internal/validators"
	"github.com/MKhiriev/go-borrower-search/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SwitchHandler is called with false when the user asks to leave a form for
// the other variant.
type SwitchHandler func(bool)

// clipboardWriteAll is replaced in tests.
var clipboardWriteAll = clipboard.WriteAll

// searchField describes one input of the form.
type searchField struct {
	name        string
	label       string
	placeholder string
	charLimit   int
}

var searchFields = []searchField{
	{name: models.FieldApplicationNo, label: "No. Aplikasi (alias Order ID)", placeholder: "2024010100001", charLimit: 20},
	{name: models.FieldAppID, label: "App ID", placeholder: "100001", charLimit: 20},
	{name: models.FieldNamaNasabah, label: "Nama Nasabah", placeholder: "Budi Santoso", charLimit: 100},
	{name: models.FieldNoKTP, label: "No. KTP", placeholder: "3171011201850001", charLimit: 16},
}

// SearchFormModel is the Bubble Tea model of one borrower search form.
//
// The form collects the four search fields, shows per-field validation
// messages, a status panel after an unsuccessful search, the result of a
// successful one and the last request error. Submission is disabled while a
// request is outstanding.
type SearchFormModel struct {
	ctx      context.Context
	variant  string
	search   service.ClientSearchService
	store    state.SearchStore
	onSwitch SwitchHandler

	inputs      []textinput.Model
	focus       int
	submitting  bool
	issues      validators.Issues
	serverError string
	notice      string
}

// NewSearchFormModel builds the form for one variant. onSwitch may be nil.
func NewSearchFormModel(ctx context.Context, variant service.ClientSearchVariant, onSwitch SwitchHandler) *SearchFormModel {
	inputs := make([]textinput.Model, len(searchFields))
	for i, f := range searchFields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = f.placeholder
		inputs[i].CharLimit = f.charLimit
		inputs[i].Width = 40
	}
	inputs[0].Focus()

	return &SearchFormModel{
		ctx:      ctx,
		variant:  variant.Name,
		search:   variant.Service,
		store:    variant.Store,
		onSwitch: onSwitch,
		inputs:   inputs,
	}
}

func (m *SearchFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - searchDoneMsg for this variant: ends the submission, keeps the request error;
//   - copiedMsg: shows the copy result;
//   - tab/shift+tab and arrows: move focus;
//   - enter: submits unless a request is outstanding;
//   - ctrl+s: switches to the other variant unless a request is outstanding;
//   - ctrl+y: copies a found result.
//
// Other messages go to the focused input.
func (m *SearchFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		if msg.variant != m.variant {
			return m, nil
		}
		m.submitting = false
		if msg.outcome.Kind == service.OutcomeRequestFailed {
			m.serverError = msg.outcome.Message
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.notice = "Result copied to clipboard"
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.next):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.prev):
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.submit):
			return m, m.submit()
		case key.Matches(msg, keys.switchForm):
			return m, m.switchVariant()
		case key.Matches(msg, keys.copy):
			return m, m.copyResult()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SearchFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	m.notice = ""
	res := m.search.Submit(m.ctx, m.input())
	if !res.Valid {
		m.issues = res.Issues
		return nil
	}

	m.clearInputs()
	m.issues = nil
	m.serverError = ""
	m.submitting = true
	return m.cmdSearch(res.Input)
}

func (m *SearchFormModel) switchVariant() tea.Cmd {
	if m.submitting {
		return nil
	}
	if m.onSwitch != nil {
		m.onSwitch(false)
	}

	from := m.variant
	return func() tea.Msg { return SwitchVariant{From: from} }
}

func (m *SearchFormModel) copyResult() tea.Cmd {
	snap := m.store.Snapshot()
	if !snap.Found() {
		m.notice = "Nothing to copy"
		return nil
	}

	result := *snap.Result
	return func() tea.Msg {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{err: clipboardWriteAll(string(data))}
	}
}

func (m *SearchFormModel) cmdSearch(input models.SearchInput) tea.Cmd {
	ctx := m.ctx
	search := m.search
	variant := m.variant

	return func() tea.Msg {
		return searchDoneMsg{variant: variant, outcome: search.Search(ctx, input)}
	}
}

func (m *SearchFormModel) input() models.SearchInput {
	return models.SearchInput{
		ApplicationNo: m.inputs[0].Value(),
		AppID:         m.inputs[1].Value(),
		NamaNasabah:   m.inputs[2].Value(),
		NoKTP:         m.inputs[3].Value(),
	}
}

func (m *SearchFormModel) clearInputs() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
}

func (m *SearchFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SearchFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SearchFormModel) View() string {
	snap := m.store.Snapshot()

	byField := m.issues.ByField()

	var b strings.Builder
	for i, f := range searchFields {
		messages := byField[f.name]
		b.WriteString(m.renderInput(i, len(messages) > 0))
		b.WriteString("\n")
		for _, message := range messages {
			b.WriteString("    ")
			b.WriteString(errorStyle.Render(message))
			b.WriteString("\n")
		}
	}

	// issues not tied to any input
	for _, message := range byField[""] {
		b.WriteString(errorStyle.Render(message))
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Searching...]\n")
	} else {
		b.WriteString("\n[Search]\n")
	}

	if snap.NotFound() {
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(renderStatusPanel(snap.SearchParameters)))
		b.WriteString("\n")
	}
	if snap.Found() {
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(renderResultPanel(*snap.Result)))
		b.WriteString("\n")
	}

	if m.serverError != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.serverError))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	return renderPage(
		fmt.Sprintf("BORROWER SEARCH (%s)", m.variant),
		strings.TrimRight(b.String(), "\n"),
		helpLine(keys.next, keys.submit, keys.switchForm, keys.copy, keys.info),
	)
}

// renderInput renders the label and input line of field i, highlighted when
// the field failed validation.
func (m *SearchFormModel) renderInput(i int, invalid bool) string {
	line := labelStyle.Render(searchFields[i].label) + " [" + m.inputs[i].View() + "]"
	if invalid {
		return inputErrorStyle.Render(line)
	}
	return line
}

// renderStatusPanel lists the parameters of the unsuccessful search. A raw
// "no parameters" payload is shown as its message.
func renderStatusPanel(params []models.ParameterEntry) string {
	var b strings.Builder
	b.WriteString("Borrower not found\n")

	if len(params) == 1 {
		if noParams, _ := params[0]["noParams"].(bool); noParams {
			message, _ := params[0]["message"].(string)
			b.WriteString(valueOrDash(message))
			return b.String()
		}
	}

	b.WriteString("Search parameters:")
	if len(params) == 0 {
		b.WriteString(" -")
	}
	for _, entry := range params {
		b.WriteString("\n  ")
		b.WriteString(formatParameter(entry))
	}
	return b.String()
}

func renderResultPanel(resp models.SearchResponse) string {
	p := resp.PersonalInfo

	var b strings.Builder
	b.WriteString("Personal info\n")
	fmt.Fprintf(&b, "  Order ID:     %s\n", valueOrDash(p.ApplicationNo))
	fmt.Fprintf(&b, "  App ID:       %s\n", valueOrDash(p.AppID))
	fmt.Fprintf(&b, "  Nama Nasabah: %s\n", valueOrDash(p.NamaNasabah))
	fmt.Fprintf(&b, "  No. KTP:      %s\n", valueOrDash(p.NoKTP))
	fmt.Fprintf(&b, "  Birth date:   %s\n", valueOrDash(p.BirthDate))
	fmt.Fprintf(&b, "  Address:      %s\n", valueOrDash(p.Address))
	fmt.Fprintf(&b, "  Phone:        %s", valueOrDash(p.Phone))

	if l := resp.LoanInfo; l != nil {
		b.WriteString("\nLoan info\n")
		fmt.Fprintf(&b, "  Product:      %s\n", valueOrDash(l.Product))
		fmt.Fprintf(&b, "  Plafond:      %s\n", formatPlafond(l.Plafond))
		fmt.Fprintf(&b, "  Tenor:        %d\n", l.Tenor)
		fmt.Fprintf(&b, "  Status:       %s", valueOrDash(l.Status))
	}
	return b.String()
}
