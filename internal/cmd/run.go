package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/freshcart/internal/config"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/ui"
)

// RunCmd starts the onboarding TUI in the local terminal
type RunCmd struct {
	Dev           bool `help:"Enable development mode (shows version info and resolution phases)"`
	SplashSeconds int  `help:"Seconds the splash screen stays up" default:"3"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if cli.settings != nil && r.SplashSeconds == config.DefaultSplashSeconds && cli.settings.SplashSeconds != nil {
		r.SplashSeconds = *cli.settings.SplashSeconds
	}

	session := cli.Container.NewSession()
	defer session.Close()

	logging.Logger.Info("Starting onboarding TUI", "session_id", session.Store.ID())
	model := ui.NewModel(ui.ModelConfig{
		DevMode:        r.Dev,
		Session:        session,
		SplashDuration: time.Duration(r.SplashSeconds) * time.Second,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
