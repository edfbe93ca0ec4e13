// Package serve exposes the terminal viewer over SSH. Every connection gets
// its own session state; nothing is shared between sessions.
package serve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/lorenz/internal/tui"
)

const shutdownTimeout = 5 * time.Second

type Config struct {
	Host        string
	Port        string
	HostKeyPath string
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// OptionsFunc returns viewer options for a new session. It must return a
// fresh interact.State (or nil) on every call.
type OptionsFunc func() tui.Options

type Server struct {
	cfg     Config
	srv     *ssh.Server
	newOpts OptionsFunc
	log     *logrus.Entry
}

func New(cfg Config, newOpts OptionsFunc) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		newOpts: newOpts,
		log:     logrus.WithField("component", "serve"),
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Addr()),
		wish.WithMiddleware(
			bm.Middleware(s.handler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	}
	if cfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.HostKeyPath))
	}

	srv, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create ssh server: %w", err)
	}
	s.srv = srv
	return s, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.cfg.Addr()).Info("listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	m, entry := s.newSession(sess.User(), pty.Term)
	entry.WithField("remote", sess.RemoteAddr().String()).Info("session started")
	return m, []tea.ProgramOption{tea.WithAltScreen()}
}

// newSession builds the model for one connection, tagged with a fresh
// session id in its log fields.
func (s *Server) newSession(user, term string) (*tui.Model, *logrus.Entry) {
	entry := s.log.WithFields(logrus.Fields{
		"session": uuid.NewString(),
		"user":    user,
		"term":    term,
	})
	opts := s.newOpts()
	opts.Log = entry
	return tui.NewModel(opts), entry
}
