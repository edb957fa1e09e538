package shell

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adb/jackscope/internal/signal"
)

// onActivate builds the window and its button. It runs at most once per
// shell; the button is added before the window is shown.
func (s *Shell) onActivate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateRunning:
		return ErrAlreadyActive
	case StateExited:
		return ErrExited
	}

	clickedID, err := s.signals.Connect(signal.Clicked, s.onClicked)
	if err != nil {
		return fmt.Errorf("bind click handler: %w", err)
	}

	session := uuid.New()
	window, button, err := s.buildWindow(session)
	if err != nil {
		if derr := s.signals.Disconnect(clickedID); derr != nil {
			s.logger.Warn("Failed to unbind click handler", zap.Error(derr))
		}
		return err
	}

	s.session = session
	s.window = window
	s.button = button
	s.state = StateRunning

	s.logger.Info("Window shown",
		zap.Stringer("session", session),
		zap.String("title", s.cfg.GUI.Title),
		zap.Int("width", s.cfg.GUI.Width),
		zap.Int("height", s.cfg.GUI.Height))

	return nil
}

// buildWindow is the first call into the platform driver; GLFW comes up
// inside NewWindow and panics from Show when it could not.
func (s *Shell) buildWindow(session uuid.UUID) (window fyne.Window, button *widget.Button, err error) {
	defer func() {
		if r := recover(); r != nil {
			window, button = nil, nil
			err = fmt.Errorf("%w: %v", ErrToolkitInit, r)
		}
	}()

	window = s.fyneApp.NewWindow(s.cfg.GUI.Title)
	button = widget.NewButton(s.cfg.Button.Label, s.tapped)

	window.SetContent(button)
	window.Resize(fyne.NewSize(float32(s.cfg.GUI.Width), float32(s.cfg.GUI.Height)))
	window.SetMaster()
	window.SetOnClosed(func() {
		s.logger.Info("Window closed", zap.Stringer("session", session))
	})
	window.Show()

	return window, button, nil
}

func (s *Shell) tapped() {
	if err := s.Click(); err != nil {
		s.logger.Error("Click handler failed", zap.Error(err))
	}
}

func (s *Shell) onClicked() error {
	if _, err := fmt.Fprintln(s.stdout, s.cfg.Button.ClickedMessage); err != nil {
		return fmt.Errorf("write click message: %w", err)
	}
	return nil
}
