package server

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/services"
	"github.com/renato0307/freshcart/internal/ui"
)

// sessionModel wraps ui.Model to discard the onboarding session when the connection ends
type sessionModel struct {
	*ui.Model
	closeOnce sync.Once
	connID    string
	session   *services.Session
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		s.close()
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// close runs once, on quit or when the SSH connection drops
func (s *sessionModel) close() {
	s.closeOnce.Do(func() {
		s.Model.Close()
		s.session.Close()
		logging.Logger.Info("SSH session ended",
			"conn_id", s.connID,
			"duration", time.Since(s.startTime).String())
	})
}

// teaHandler creates a Bubbletea model and an onboarding session for each SSH connection
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	connID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	session := s.factory.NewSession()
	logging.Logger.Info("New SSH session",
		"conn_id", connID,
		"session_id", session.Store.ID(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model := s.newSessionModel(connID, session)
	go func() {
		<-sess.Context().Done()
		model.close()
	}()

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *Server) newSessionModel(connID string, session *services.Session) *sessionModel {
	return &sessionModel{
		Model: ui.NewModel(ui.ModelConfig{
			DevMode:        s.opts.DevMode,
			Session:        session,
			SplashDuration: s.opts.SplashDuration,
		}),
		connID:    connID,
		session:   session,
		startTime: time.Now(),
	}
}
