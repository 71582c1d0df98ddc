package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/services"
	"github.com/renato0307/freshcart/internal/theme"
)

const (
	// markerStep is how far one arrow key moves the marker (about 110 m)
	markerStep = 0.001

	// foregroundDelay is how long the simulated settings app stays open
	foregroundDelay = 1500 * time.Millisecond
)

var errInvalidMapPoint = errors.New(`map point must look like "12.9352, 77.6245"`)

type locationMode int

const (
	modeBrowse locationMode = iota
	modeSearch
	modeMapPoint
)

// LocationScreen drives location resolution and shows the delivery location card
type LocationScreen struct {
	Completed  bool
	committing bool
	ctx        context.Context
	devMode    bool
	errors     *ErrorManager
	input      textinput.Model
	keys       KeyMap
	latest     *domain.Resolution
	location   *services.LocationService
	marker     domain.Coordinates
	mode       locationMode
	pending    int
	spinner    spinner.Model
	store      *services.SessionStore
}

// NewLocationScreen creates the screen. Init starts the on-load resolution.
func NewLocationScreen(ctx context.Context, location *services.LocationService, store *services.SessionStore, errs *ErrorManager, keys KeyMap, devMode bool) *LocationScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	ti := textinput.New()
	ti.CharLimit = 120
	ti.Width = 40

	ls := &LocationScreen{
		ctx:      ctx,
		devMode:  devMode,
		errors:   errs,
		input:    ti,
		keys:     keys,
		location: location,
		marker:   domain.DefaultLocation().Coordinates(),
		spinner:  s,
		store:    store,
	}
	if loc, ok := store.Location(); ok {
		ls.marker = loc.Coordinates()
	}
	return ls
}

func (ls *LocationScreen) Init() tea.Cmd {
	return ls.resolve(ls.location.ResolveOnLoad)
}

// resolve runs one resolution attempt off the UI goroutine
func (ls *LocationScreen) resolve(fn func(context.Context) domain.Resolution) tea.Cmd {
	ls.pending++
	ctx := ls.ctx
	return tea.Batch(ls.spinner.Tick, func() tea.Msg {
		return resolutionMsg{Resolution: fn(ctx)}
	})
}

func (ls *LocationScreen) commit(fn func(context.Context) error) tea.Cmd {
	ls.committing = true
	ctx := ls.ctx
	return tea.Batch(ls.spinner.Tick, func() tea.Msg {
		return locationCommittedMsg{Err: fn(ctx)}
	})
}

func (ls *LocationScreen) openSettings() tea.Cmd {
	ctx, location := ls.ctx, ls.location
	return func() tea.Msg {
		return settingsOpenedMsg{Err: location.OpenSettings(ctx)}
	}
}

func (ls *LocationScreen) resumeOnForeground() tea.Cmd {
	ls.pending++
	ctx, location := ls.ctx, ls.location
	return tea.Batch(ls.spinner.Tick, func() tea.Msg {
		res, started := location.ResumeOnForeground(ctx)
		return foregroundResolutionMsg{Resolution: res, Started: started}
	})
}

func (ls *LocationScreen) busy() bool {
	return ls.pending > 0 || ls.committing
}

func (ls *LocationScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !ls.busy() {
			return ls, nil
		}
		var cmd tea.Cmd
		ls.spinner, cmd = ls.spinner.Update(msg)
		return ls, cmd

	case resolutionMsg:
		ls.pending--
		return ls, ls.handleResolution(msg.Resolution)

	case foregroundResolutionMsg:
		ls.pending--
		if !msg.Started {
			return ls, nil
		}
		return ls, ls.handleResolution(msg.Resolution)

	case settingsOpenedMsg:
		if msg.Err != nil {
			return ls, ls.errors.SetError(msg.Err)
		}
		return ls, tea.Tick(foregroundDelay, func(time.Time) tea.Msg { return foregroundMsg{} })

	case foregroundMsg:
		return ls, ls.resumeOnForeground()

	case locationCommittedMsg:
		ls.committing = false
		if msg.Err != nil {
			return ls, ls.errors.SetError(msg.Err)
		}
		ls.Completed = true
		return ls, nil

	case tea.KeyMsg:
		if ls.mode != modeBrowse {
			return ls.updateInput(msg)
		}
		return ls.updateBrowse(msg)
	}
	return ls, nil
}

func (ls *LocationScreen) handleResolution(res domain.Resolution) tea.Cmd {
	if errors.Is(res.Reason, domain.ErrSuperseded) || errors.Is(res.Reason, context.Canceled) {
		return nil
	}
	ls.latest = &res
	if res.HasLocation() {
		ls.marker = res.Location.Coordinates()
	}
	if res.Kind == domain.ResolutionFailed && res.Terminal() != domain.PhaseAwaitingUserAction {
		return ls.errors.SetError(res.Reason)
	}
	return nil
}

func (ls *LocationScreen) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if ls.committing {
		return ls, nil
	}

	switch {
	case key.Matches(msg, ls.keys.Confirm):
		return ls, ls.commit(ls.location.CommitLocationAndAdvance)
	case key.Matches(msg, ls.keys.Skip):
		return ls, ls.commit(ls.location.SkipToDefault)
	case key.Matches(msg, ls.keys.Current):
		return ls, ls.resolve(ls.location.ResolveCurrentLocation)
	case key.Matches(msg, ls.keys.OpenSettings):
		if !ls.location.AwaitingUserAction() {
			return ls, nil
		}
		return ls, ls.openSettings()
	case key.Matches(msg, ls.keys.Search):
		return ls, ls.enterInput(modeSearch, "Search for area, street name...")
	case key.Matches(msg, ls.keys.MapPoint):
		return ls, ls.enterInput(modeMapPoint, "12.9352, 77.6245")
	case key.Matches(msg, ls.keys.Up):
		return ls, ls.nudge(markerStep, 0)
	case key.Matches(msg, ls.keys.Down):
		return ls, ls.nudge(-markerStep, 0)
	case key.Matches(msg, ls.keys.Right):
		return ls, ls.nudge(0, markerStep)
	case key.Matches(msg, ls.keys.Left):
		return ls, ls.nudge(0, -markerStep)
	}
	return ls, nil
}

// nudge moves the marker and resolves the new point, like dragging a map pin
func (ls *LocationScreen) nudge(dLat, dLon float64) tea.Cmd {
	ls.marker = domain.Coordinates{
		Latitude:  ls.marker.Latitude + dLat,
		Longitude: ls.marker.Longitude + dLon,
	}
	coords := ls.marker
	return ls.resolve(func(ctx context.Context) domain.Resolution {
		return ls.location.ResolveFromMarkerDrag(ctx, coords)
	})
}

func (ls *LocationScreen) enterInput(mode locationMode, placeholder string) tea.Cmd {
	ls.mode = mode
	ls.input.Reset()
	ls.input.Placeholder = placeholder
	ls.input.Prompt = "> "
	if mode == modeMapPoint {
		ls.input.Prompt = "Map point: "
	}
	return ls.input.Focus()
}

func (ls *LocationScreen) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		ls.mode = modeBrowse
		ls.input.Blur()
		return ls, nil
	case tea.KeyEnter:
		return ls.submitInput()
	}
	var cmd tea.Cmd
	ls.input, cmd = ls.input.Update(msg)
	return ls, cmd
}

func (ls *LocationScreen) submitInput() (tea.Model, tea.Cmd) {
	value := ls.input.Value()
	mode := ls.mode
	ls.mode = modeBrowse
	ls.input.Blur()

	if mode == modeSearch {
		return ls, ls.resolve(func(ctx context.Context) domain.Resolution {
			return ls.location.ResolveFromSearch(ctx, value)
		})
	}

	coords, err := parseMapPoint(value)
	if err != nil {
		return ls, ls.errors.SetError(err)
	}
	return ls, ls.resolve(func(ctx context.Context) domain.Resolution {
		return ls.location.ResolveFromMapPoint(ctx, coords)
	})
}

// parseMapPoint reads "lat, lon"
func parseMapPoint(value string) (domain.Coordinates, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return domain.Coordinates{}, errInvalidMapPoint
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Coordinates{}, errInvalidMapPoint
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Coordinates{}, errInvalidMapPoint
	}
	coords := domain.Coordinates{Latitude: lat, Longitude: lon}
	if !coords.Valid() {
		return domain.Coordinates{}, fmt.Errorf("%w: %s", errInvalidMapPoint, coords)
	}
	return coords, nil
}

func (ls *LocationScreen) View() string {
	var b []string

	b = append(b, ls.renderCard())
	b = append(b, theme.MarkerStyle.Render("◉ ")+theme.MutedStyle.Render("Marker at "+ls.marker.String()))

	if ls.location.AwaitingUserAction() {
		b = append(b, "")
		b = append(b, theme.DegradedStyle.Render("Location permission is off. Open settings to allow it, or search for your address."))
	}

	switch {
	case ls.committing:
		b = append(b, "", ls.spinner.View()+" Checking delivery availability...")
	case ls.pending > 0:
		b = append(b, "", ls.spinner.View()+" Locating...")
	}

	if ls.mode != modeBrowse {
		b = append(b, "", ls.input.View())
		b = append(b, theme.MutedStyle.Render("enter submit  esc cancel"))
		return joinLines(b)
	}

	if ls.devMode && ls.latest != nil {
		b = append(b, "", theme.MutedStyle.Render(renderPhases(*ls.latest)))
	}

	b = append(b, "")
	help := []key.Binding{ls.keys.Confirm, ls.keys.Current, ls.keys.Search, ls.keys.MapPoint, ls.keys.Skip}
	if ls.location.AwaitingUserAction() {
		help = append(help, ls.keys.OpenSettings)
	}
	b = append(b, renderHelp(help...))
	b = append(b, theme.HelpStyle.Render("arrows move the marker"))
	return joinLines(b)
}

func (ls *LocationScreen) renderCard() string {
	loc, ok := ls.displayedLocation()
	if !ok {
		return theme.LocationCardStyle.Render(theme.MutedStyle.Render("No location yet"))
	}

	lines := []string{
		theme.AddressStyle.Render(loc.Address),
		theme.NormalStyle.Render(loc.SubAddress),
		theme.MutedStyle.Render(loc.City),
	}

	switch {
	case !loc.IsServiceable:
		lines = append(lines, theme.NotServiceableStyle.Render("We don't deliver here yet"))
	case ls.latest != nil && ls.latest.Kind == domain.ResolutionDegraded:
		lines = append(lines, theme.DegradedStyle.Render("Approximate location"))
	default:
		lines = append(lines, theme.ResolvedStyle.Render("Delivery available"))
	}
	return theme.LocationCardStyle.Render(joinLines(lines))
}

// displayedLocation prefers the latest attempt over the stored location
func (ls *LocationScreen) displayedLocation() (domain.ResolvedLocation, bool) {
	if latest, ok := ls.location.Latest(); ok && latest.HasLocation() {
		return latest.Location, true
	}
	return ls.store.Location()
}

func renderPhases(res domain.Resolution) string {
	phases := make([]string, len(res.Phases))
	for i, p := range res.Phases {
		phases[i] = string(p)
	}
	line := fmt.Sprintf("#%d %s via %s: %s", res.Attempt, res.Trigger, res.Kind, strings.Join(phases, " > "))
	if res.Reason != nil {
		line += " (" + res.Reason.Error() + ")"
	}
	return line
}
