package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/services"
	"github.com/renato0307/freshcart/internal/theme"
)

// SamplesList lets the user pick free samples from the catalog
type SamplesList struct {
	Completed  bool
	ctx        context.Context
	cursor     int
	errors     *ErrorManager
	keys       KeyMap
	loading    bool
	onboarding *services.OnboardingService
	samples    []domain.Sample
	selected   map[int]bool
}

// NewSamplesList creates the list. Init loads the catalog.
func NewSamplesList(ctx context.Context, onboarding *services.OnboardingService, store *services.SessionStore, errors *ErrorManager, keys KeyMap) *SamplesList {
	selected := make(map[int]bool)
	for _, s := range store.SelectedSamples() {
		selected[s.ID] = true
	}
	return &SamplesList{
		ctx:        ctx,
		errors:     errors,
		keys:       keys,
		loading:    true,
		onboarding: onboarding,
		selected:   selected,
	}
}

func (sl *SamplesList) Init() tea.Cmd {
	ctx, onboarding := sl.ctx, sl.onboarding
	return func() tea.Msg {
		samples, err := onboarding.Samples(ctx)
		return samplesLoadedMsg{Err: err, Samples: samples}
	}
}

func (sl *SamplesList) toggle(id int) tea.Cmd {
	ctx, onboarding := sl.ctx, sl.onboarding
	return func() tea.Msg {
		selected, err := onboarding.ToggleSample(ctx, id)
		return sampleToggledMsg{Err: err, ID: id, Selected: selected}
	}
}

func (sl *SamplesList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case samplesLoadedMsg:
		sl.loading = false
		if msg.Err != nil {
			return sl, sl.errors.SetError(msg.Err)
		}
		sl.samples = msg.Samples
		return sl, nil

	case sampleToggledMsg:
		if msg.Err != nil {
			return sl, sl.errors.SetError(msg.Err)
		}
		sl.selected[msg.ID] = msg.Selected
		return sl, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, sl.keys.Up):
			if sl.cursor > 0 {
				sl.cursor--
			}
		case key.Matches(msg, sl.keys.Down):
			if sl.cursor < len(sl.samples)-1 {
				sl.cursor++
			}
		case key.Matches(msg, sl.keys.Toggle):
			if len(sl.samples) > 0 {
				return sl, sl.toggle(sl.samples[sl.cursor].ID)
			}
		case key.Matches(msg, sl.keys.Confirm):
			if !sl.loading {
				sl.Completed = true
			}
		}
	}
	return sl, nil
}

// SelectedCount returns how many samples are selected
func (sl *SamplesList) SelectedCount() int {
	n := 0
	for _, ok := range sl.selected {
		if ok {
			n++
		}
	}
	return n
}

func (sl *SamplesList) View() string {
	if sl.loading {
		return theme.MutedStyle.Render("Loading samples...")
	}

	var b []string
	b = append(b, theme.LabelStyle.Render("Pick the free samples you'd like with your first order"), "")
	for i, s := range sl.samples {
		cursor := "  "
		if i == sl.cursor {
			cursor = theme.CursorStyle.Render("> ")
		}
		check := "[ ]"
		name := theme.NormalStyle.Render(s.Name)
		if sl.selected[s.ID] {
			check = "[x]"
			name = theme.SelectedStyle.Render(s.Name)
		}
		b = append(b, fmt.Sprintf("%s%s %s  %s  %s", cursor, check, name,
			theme.MutedStyle.Render(s.Sub), theme.BadgeStyle.Render(s.Badge)))
	}
	b = append(b, "", theme.MutedStyle.Render(fmt.Sprintf("%d selected", sl.SelectedCount())))
	b = append(b, renderHelp(sl.keys.Toggle, sl.keys.Up, sl.keys.Down, sl.keys.Confirm))
	return joinLines(b)
}
