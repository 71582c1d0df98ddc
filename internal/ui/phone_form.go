package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/freshcart/internal/domain"
)

// PhoneFormResult contains what the user entered on the login screen
type PhoneFormResult struct {
	AcceptedTerms bool
	PhoneNumber   string
}

// PhoneForm is a Bubble Tea component asking for the mobile number
type PhoneForm struct {
	Completed bool
	form      *huh.Form
	result    PhoneFormResult
}

// NewPhoneForm creates the login form
func NewPhoneForm() *PhoneForm {
	pf := &PhoneForm{}

	pf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mobile number").
				Description("We will send a 6 digit code to this number").
				Prompt("+91 ").
				Placeholder("98765 43210").
				CharLimit(10).
				Value(&pf.result.PhoneNumber).
				Validate(domain.ValidateIndianMobile),
			huh.NewConfirm().
				Title("I agree to the Terms & Conditions and Privacy Policy").
				Affirmative("Agree").
				Negative("Decline").
				Value(&pf.result.AcceptedTerms).
				Validate(func(accepted bool) error {
					if !accepted {
						return errors.New("please accept the terms to continue")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	return pf
}

func (pf *PhoneForm) Init() tea.Cmd {
	return pf.form.Init()
}

func (pf *PhoneForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (pf *PhoneForm) View() string {
	return pf.form.View()
}

// Result returns the form result
func (pf *PhoneForm) Result() PhoneFormResult {
	return pf.result
}
