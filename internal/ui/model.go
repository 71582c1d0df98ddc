package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/services"
	"github.com/renato0307/freshcart/internal/theme"
)

const errorClearDelay = 10 * time.Second

type uiState int

const (
	stateSplash uiState = iota
	statePhone
	stateOTP
	stateLocation
	stateAddress
	statePreferences
	stateSamples
	stateDone
)

// ModelConfig configures the onboarding TUI
type ModelConfig struct {
	DevMode        bool
	Session        *services.Session
	SplashDuration time.Duration
}

// Model is the root Bubble Tea model of the onboarding flow
type Model struct {
	addressForm     *AddressForm
	cancel          context.CancelFunc
	ctx             context.Context
	devMode         bool
	errorManager    *ErrorManager
	height          int
	keys            KeyMap
	locationScreen  *LocationScreen
	otpScreen       *OTPScreen
	phoneForm       *PhoneForm
	preferencesForm *PreferencesForm
	samplesList     *SamplesList
	session         *services.Session
	splashDuration  time.Duration
	state           uiState
	width           int
}

// NewModel creates the onboarding model for one session
func NewModel(cfg ModelConfig) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		cancel:         cancel,
		ctx:            ctx,
		devMode:        cfg.DevMode,
		errorManager:   NewErrorManager(errorClearDelay),
		keys:           NewKeyMap(),
		phoneForm:      NewPhoneForm(),
		session:        cfg.Session,
		splashDuration: cfg.SplashDuration,
		state:          stateSplash,
	}
	if cfg.SplashDuration <= 0 {
		m.state = statePhone
	}
	return m
}

// Close cancels the work the screens have in flight
func (m *Model) Close() {
	m.cancel()
}

func (m *Model) Init() tea.Cmd {
	if m.state == stateSplash {
		return tea.Tick(m.splashDuration, func(time.Time) tea.Msg { return splashDoneMsg{} })
	}
	return m.phoneForm.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case clearErrorMsg:
		m.errorManager.HandleClear(msg)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.cancel()
			return m, tea.Quit
		}
	}

	switch m.state {
	case stateSplash:
		return m.updateSplash(msg)
	case statePhone:
		return m.updatePhone(msg)
	case stateOTP:
		return m.updateOTP(msg)
	case stateLocation:
		return m.updateLocation(msg)
	case stateAddress:
		return m.updateAddress(msg)
	case statePreferences:
		return m.updatePreferences(msg)
	case stateSamples:
		return m.updateSamples(msg)
	case stateDone:
		return m.updateDone(msg)
	}
	return m, nil
}

func (m *Model) updateSplash(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case splashDoneMsg, tea.KeyMsg:
		m.state = statePhone
		return m, m.phoneForm.Init()
	}
	return m, nil
}

func (m *Model) updatePhone(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.SkipLogin) {
		m.session.Auth.SkipLogin()
		return m.enterLocation()
	}

	_, cmd := m.phoneForm.Update(msg)
	if !m.phoneForm.Completed {
		return m, cmd
	}

	result := m.phoneForm.Result()
	m.otpScreen = NewOTPScreen(m.ctx, m.session.Auth, result.PhoneNumber, m.errorManager, m.keys, m.devMode)
	m.state = stateOTP
	return m, m.otpScreen.Init()
}

func (m *Model) updateOTP(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.otpScreen.Update(msg)
	if !m.otpScreen.Completed {
		return m, cmd
	}
	return m.enterLocation()
}

func (m *Model) enterLocation() (tea.Model, tea.Cmd) {
	m.locationScreen = NewLocationScreen(m.ctx, m.session.Location, m.session.Store, m.errorManager, m.keys, m.devMode)
	m.state = stateLocation
	return m, m.locationScreen.Init()
}

func (m *Model) updateLocation(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.locationScreen.Update(msg)
	if !m.locationScreen.Completed {
		return m, cmd
	}

	loc, _ := m.session.Store.Location()
	m.addressForm = NewAddressForm(loc)
	m.state = stateAddress
	return m, m.addressForm.Init()
}

func (m *Model) updateAddress(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.addressForm.Update(msg)
	if !m.addressForm.Completed {
		return m, cmd
	}

	addr := m.addressForm.Result()
	if err := m.session.Onboarding.SaveAddress(addr); err != nil {
		logging.Logger.Warn("Address rejected", "error", err)
		loc, _ := m.session.Store.Location()
		m.addressForm = NewAddressForm(loc)
		return m, tea.Batch(m.errorManager.SetError(err), m.addressForm.Init())
	}

	m.preferencesForm = NewPreferencesForm()
	m.state = statePreferences
	return m, m.preferencesForm.Init()
}

func (m *Model) updatePreferences(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.preferencesForm.Update(msg)
	if !m.preferencesForm.Completed {
		return m, cmd
	}

	if m.preferencesForm.Skipped {
		m.session.Onboarding.SkipPreferences()
	} else if err := m.session.Onboarding.SavePreferences(m.preferencesForm.Result()); err != nil {
		// The questionnaire is optional, so a bad answer set is dropped
		logging.Logger.Warn("Preferences rejected", "error", err)
		m.session.Onboarding.SkipPreferences()
		cmd = m.errorManager.SetError(err)
	}

	m.samplesList = NewSamplesList(m.ctx, m.session.Onboarding, m.session.Store, m.errorManager, m.keys)
	m.state = stateSamples
	return m, tea.Batch(cmd, m.samplesList.Init())
}

func (m *Model) updateSamples(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.samplesList.Update(msg)
	if !m.samplesList.Completed {
		return m, cmd
	}

	if err := m.session.Onboarding.FinishSamples(); err != nil {
		m.samplesList.Completed = false
		return m, m.errorManager.SetError(err)
	}
	m.state = stateDone
	return m, nil
}

func (m *Model) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "q", "esc":
			m.cancel()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) View() string {
	var body string
	var subtitle string

	switch m.state {
	case stateSplash:
		return m.viewSplash()
	case statePhone:
		subtitle = "Login"
		body = m.phoneForm.View() + "\n" + renderHelp(m.keys.SkipLogin)
	case stateOTP:
		subtitle = "Verify your number"
		body = m.otpScreen.View()
	case stateLocation:
		subtitle = "Select your delivery location"
		body = m.locationScreen.View()
	case stateAddress:
		subtitle = "Add address details"
		body = m.addressForm.View()
	case statePreferences:
		subtitle = "Tell us about you"
		body = m.preferencesForm.View() + "\n" + theme.HelpStyle.Render("esc skip questions")
	case stateSamples:
		subtitle = "Free samples"
		body = m.samplesList.View()
	case stateDone:
		subtitle = "You're all set"
		body = m.viewDone()
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.devMode, subtitle))
	b.WriteString(renderProgress(m.session.Onboarding.Progress()))
	b.WriteString("\n\n")
	b.WriteString(body)

	if m.errorManager.HasError() {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.errorWidth())))
	}
	return b.String()
}

func (m *Model) errorWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width - 2
}

func (m *Model) viewSplash() string {
	splash := joinLines([]string{
		theme.AppNameStyle.Render("freshcart"),
		theme.TaglineStyle.Render(versionInfo.Tagline),
		"",
		theme.MutedStyle.Render("press any key"),
	})
	if m.width == 0 || m.height == 0 {
		return splash
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, splash)
}

func (m *Model) viewDone() string {
	snap := m.session.Store.Snapshot()

	var b []string
	if snap.PhoneNumber != "" && snap.IsLoggedIn {
		b = append(b, summaryLine("Phone", "+91 "+snap.PhoneNumber))
	} else {
		b = append(b, summaryLine("Phone", "guest"))
	}
	if snap.Location != nil {
		b = append(b, summaryLine("Location", snap.Location.Address+", "+snap.Location.City))
	}
	if snap.Address != nil {
		b = append(b, summaryLine("Address", fmt.Sprintf("%s (%s), %s %s",
			snap.Address.Line1, snap.Address.Tag, snap.Address.City, snap.Address.Pincode)))
	}
	b = append(b, summaryLine("Preferences", describePreferences(snap.Preferences)))

	names := make([]string, len(snap.SelectedSamples))
	for i, s := range snap.SelectedSamples {
		names[i] = s.Name
	}
	if len(names) == 0 {
		names = []string{"none"}
	}
	b = append(b, summaryLine("Samples", strings.Join(names, ", ")))
	b = append(b, "", theme.HelpStyle.Render("enter exit"))
	return joinLines(b)
}

func describePreferences(p domain.Preferences) string {
	if p.IsEmpty() {
		return "skipped"
	}
	var parts []string
	if len(p.Household) > 0 {
		parts = append(parts, strings.Join(p.Household, ", "))
	}
	if p.Diet != "" {
		parts = append(parts, p.Diet)
	}
	if p.ShopTime != "" {
		parts = append(parts, p.ShopTime)
	}
	return strings.Join(parts, " | ")
}

func summaryLine(label, value string) string {
	return theme.LabelStyle.Render(fmt.Sprintf("%-12s", label)) + theme.NormalStyle.Render(value)
}

func helpKey(k string) string {
	return theme.HelpKeyStyle.Render(k)
}

func helpLabel(label string) string {
	return theme.HelpLabelStyle.Render(label)
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
