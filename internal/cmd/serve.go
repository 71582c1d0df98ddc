package cmd

import (
	"fmt"
	"time"

	"github.com/renato0307/freshcart/internal/config"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/server"
)

// ServeCmd serves the onboarding TUI over SSH, one session per connection
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file used for public key auth" type:"path"`
	Dev            bool   `help:"Enable development mode in served sessions"`
	Host           string `help:"Host to bind to" default:"localhost"`
	HostKey        string `help:"SSH host key path (generated when missing)" type:"path"`
	Port           int    `help:"Port to listen on" default:"23234"`
	SplashSeconds  int    `help:"Seconds the splash screen stays up" default:"3"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	s.applySettings(cli.settings)

	srv, err := server.NewServer(server.Options{
		AuthorizedKeysPath: s.AuthorizedKeys,
		DevMode:            s.Dev,
		Host:               s.Host,
		HostKeyPath:        s.HostKey,
		Port:               s.Port,
		SplashDuration:     time.Duration(s.SplashSeconds) * time.Second,
	}, cli.Container)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logging.Logger.Info("Serving onboarding over SSH", "address", srv.Address())
	// Blocks until shutdown
	return srv.Start()
}

func (s *ServeCmd) applySettings(settings *config.Settings) {
	if settings != nil {
		if s.AuthorizedKeys == "" && settings.AuthorizedKeys != "" {
			s.AuthorizedKeys = settings.AuthorizedKeys
		}
		if s.Host == config.DefaultSSHHost && settings.SSHHost != "" {
			s.Host = settings.SSHHost
		}
		if s.Port == config.DefaultSSHPort && settings.SSHPort != nil {
			s.Port = *settings.SSHPort
		}
		if s.SplashSeconds == config.DefaultSplashSeconds && settings.SplashSeconds != nil {
			s.SplashSeconds = *settings.SplashSeconds
		}
	}

	if s.AuthorizedKeys == "" {
		s.AuthorizedKeys = config.GetAuthorizedKeysPath()
	}
	if s.HostKey == "" {
		s.HostKey = config.GetHostKeyPath()
	}
}
