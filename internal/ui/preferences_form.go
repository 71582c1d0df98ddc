package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/freshcart/internal/domain"
)

// PreferencesForm is a Bubble Tea component for the optional questionnaire.
// Esc skips the whole questionnaire.
type PreferencesForm struct {
	Completed bool
	Skipped   bool
	form      *huh.Form
	prefs     domain.Preferences
}

// NewPreferencesForm builds one form page per question of domain.Questionnaire
func NewPreferencesForm() *PreferencesForm {
	pf := &PreferencesForm{}

	groups := make([]*huh.Group, 0, len(domain.Questionnaire))
	for _, q := range domain.Questionnaire {
		groups = append(groups, huh.NewGroup(pf.field(q)))
	}
	pf.form = huh.NewForm(groups...).WithShowHelp(false)

	return pf
}

// field maps a question to a huh field bound to the matching answer
func (pf *PreferencesForm) field(q domain.Question) huh.Field {
	options := huh.NewOptions(q.Options...)

	if q.Multi {
		return huh.NewMultiSelect[string]().
			Title(q.Title).
			Description(q.Description).
			Options(options...).
			Value(&pf.prefs.Household)
	}

	value := &pf.prefs.Diet
	if q.ID == domain.QuestionShopTime {
		value = &pf.prefs.ShopTime
	}
	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(options...).
		Value(value)
}

func (pf *PreferencesForm) Init() tea.Cmd {
	return pf.form.Init()
}

func (pf *PreferencesForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		pf.Skipped = true
		pf.Completed = true
		return pf, nil
	}

	form, cmd := pf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		pf.form = f
	}

	if pf.form.State == huh.StateCompleted {
		pf.Completed = true
		return pf, nil
	}
	return pf, cmd
}

func (pf *PreferencesForm) View() string {
	return pf.form.View()
}

// Result returns the answers
func (pf *PreferencesForm) Result() domain.Preferences {
	return pf.prefs
}
