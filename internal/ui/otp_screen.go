package ui

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/freshcart/internal/adapters/otp"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/services"
	"github.com/renato0307/freshcart/internal/theme"
)

// OTPScreen sends the code and verifies what the user types
type OTPScreen struct {
	Completed   bool
	auth        *services.AuthService
	challenge   *services.OTPChallenge
	ctx         context.Context
	devMode     bool
	errors      *ErrorManager
	input       textinput.Model
	keys        KeyMap
	phoneNumber string
	sending     bool
	spinner     spinner.Model
	verifying   bool
}

// NewOTPScreen creates the screen. Init sends the first code.
func NewOTPScreen(ctx context.Context, auth *services.AuthService, phoneNumber string, errors *ErrorManager, keys KeyMap, devMode bool) *OTPScreen {
	ti := textinput.New()
	ti.Placeholder = "------"
	ti.CharLimit = 6
	ti.Width = 8
	ti.Prompt = "Code: "
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	return &OTPScreen{
		auth:        auth,
		ctx:         ctx,
		devMode:     devMode,
		errors:      errors,
		input:       ti,
		keys:        keys,
		phoneNumber: phoneNumber,
		sending:     true,
		spinner:     s,
	}
}

func (o *OTPScreen) Init() tea.Cmd {
	return tea.Batch(o.spinner.Tick, textinput.Blink, o.request())
}

func (o *OTPScreen) request() tea.Cmd {
	ctx, auth, phone := o.ctx, o.auth, o.phoneNumber
	return func() tea.Msg {
		challenge, err := auth.RequestOTP(ctx, phone)
		return otpSentMsg{Challenge: challenge, Err: err}
	}
}

func (o *OTPScreen) resend() tea.Cmd {
	ctx, auth := o.ctx, o.auth
	return func() tea.Msg {
		challenge, err := auth.ResendOTP(ctx)
		return otpSentMsg{Challenge: challenge, Err: err}
	}
}

func (o *OTPScreen) verify(code string) tea.Cmd {
	ctx, auth := o.ctx, o.auth
	return func() tea.Msg {
		return otpVerifiedMsg{Err: auth.VerifyOTP(ctx, code)}
	}
}

func resendTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return resendTickMsg{} })
}

func (o *OTPScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !o.sending && !o.verifying {
			return o, nil
		}
		var cmd tea.Cmd
		o.spinner, cmd = o.spinner.Update(msg)
		return o, cmd

	case otpSentMsg:
		o.sending = false
		if msg.Err != nil {
			logging.Logger.Warn("OTP request failed", "error", msg.Err)
			return o, o.errors.SetError(msg.Err)
		}
		o.challenge = msg.Challenge
		o.input.Reset()
		return o, resendTick()

	case resendTickMsg:
		if o.auth.ResendIn() > 0 {
			return o, resendTick()
		}
		return o, nil

	case otpVerifiedMsg:
		o.verifying = false
		if msg.Err != nil {
			o.input.Reset()
			return o, o.errors.SetError(msg.Err)
		}
		o.Completed = true
		return o, nil

	case tea.KeyMsg:
		if o.sending || o.verifying {
			return o, nil
		}
		switch {
		case key.Matches(msg, o.keys.Resend):
			return o.handleResend()
		case key.Matches(msg, o.keys.Confirm):
			return o.submit()
		case msg.Type == tea.KeyRunes && !allDigits(msg.Runes):
			return o, nil
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	if len(o.input.Value()) == o.input.CharLimit && o.challenge != nil {
		_, submit := o.submit()
		return o, tea.Batch(cmd, submit)
	}
	return o, cmd
}

func (o *OTPScreen) handleResend() (tea.Model, tea.Cmd) {
	o.sending = true
	if o.challenge == nil {
		// The first send failed, so there is nothing to resend
		return o, tea.Batch(o.spinner.Tick, o.request())
	}
	return o, tea.Batch(o.spinner.Tick, o.resend())
}

func (o *OTPScreen) submit() (tea.Model, tea.Cmd) {
	if o.challenge == nil {
		return o, nil
	}
	o.verifying = true
	return o, tea.Batch(o.spinner.Tick, o.verify(o.input.Value()))
}

func (o *OTPScreen) View() string {
	var b []string
	b = append(b, theme.LabelStyle.Render("Enter the 6 digit code sent to ")+theme.AddressStyle.Render("+91 "+o.phoneNumber))
	b = append(b, "")

	switch {
	case o.sending:
		b = append(b, o.spinner.View()+" Sending code...")
	case o.verifying:
		b = append(b, o.spinner.View()+" Verifying...")
	default:
		b = append(b, o.input.View())
	}
	b = append(b, "")

	if wait := o.auth.ResendIn(); wait > 0 {
		b = append(b, theme.MutedStyle.Render(fmt.Sprintf("Resend code in %ds", int(wait.Round(time.Second).Seconds()))))
	} else if !o.sending {
		b = append(b, renderHelp(o.keys.Resend))
	}
	if o.devMode {
		b = append(b, theme.MutedStyle.Render("Demo code: "+otp.DemoCode))
	}
	return joinLines(b)
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
