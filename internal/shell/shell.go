package shell

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adb/jackscope/internal/config"
	"github.com/adb/jackscope/internal/signal"
)

var (
	ErrAlreadyActive = errors.New("shell already activated")
	ErrExited        = errors.New("shell has exited")
)

// Shell owns the toolkit application and the single window it presents.
type Shell struct {
	logger *zap.Logger
	cfg    *config.Config
	stdout io.Writer

	fyneApp fyne.App
	signals *signal.Registry

	mu      sync.Mutex
	state   State
	session uuid.UUID
	window  fyne.Window
	button  *widget.Button
}

type Option func(*options)

type options struct {
	toolkit Toolkit
}

// WithToolkit replaces the platform toolkit, e.g. with fyne's test driver.
func WithToolkit(t Toolkit) Option {
	return func(o *options) {
		o.toolkit = t
	}
}

// New brings up the toolkit and registers the activation handler. The
// returned shell has not shown anything yet.
func New(cfg *config.Config, logger *zap.Logger, stdout io.Writer, opts ...Option) (*Shell, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	o := options{toolkit: NewToolkit}
	for _, opt := range opts {
		opt(&o)
	}

	fyneApp, err := startToolkit(o.toolkit, cfg.Application.ID)
	if err != nil {
		return nil, err
	}

	switch cfg.GUI.Theme {
	case "dark":
		fyneApp.Settings().SetTheme(theme.DarkTheme())
	case "light":
		fyneApp.Settings().SetTheme(theme.LightTheme())
	}

	s := &Shell{
		logger:  logger,
		cfg:     cfg,
		stdout:  stdout,
		fyneApp: fyneApp,
		signals: signal.NewRegistry(),
		state:   StateUninitialized,
	}

	if _, err := s.signals.Connect(signal.Activate, s.onActivate); err != nil {
		return nil, err
	}

	logger.Debug("Toolkit initialised", zap.String("app_id", cfg.Application.ID))
	return s, nil
}

// Activate fires the activation event and returns the window it built.
func (s *Shell) Activate() (fyne.Window, error) {
	if err := s.signals.Emit(signal.Activate); err != nil {
		return nil, err
	}
	return s.Window(), nil
}

// Click delivers one click to the button's handler.
func (s *Shell) Click() error {
	return s.signals.Emit(signal.Clicked)
}

// Run activates the shell and blocks in the toolkit event loop until the
// window is closed. It returns the process exit status, plus the activation
// error (ErrToolkitInit when the driver could not come up) if no window was
// shown.
func (s *Shell) Run() (int, error) {
	if _, err := s.Activate(); err != nil && !errors.Is(err, ErrAlreadyActive) {
		return 1, fmt.Errorf("activate: %w", err)
	}

	session := s.sessionID()
	s.logger.Info("Entering event loop", zap.Stringer("session", session))
	s.fyneApp.Run()

	s.setState(StateExited)
	s.logger.Info("Event loop finished", zap.Stringer("session", session))
	return 0, nil
}

// sessionID identifies the current activation; the window shown, window
// closed and loop exit log lines all carry it.
func (s *Shell) sessionID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Shell) Window() fyne.Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.window
}

func (s *Shell) Button() *widget.Button {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.button
}

func (s *Shell) App() fyne.App {
	return s.fyneApp
}

func (s *Shell) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}
