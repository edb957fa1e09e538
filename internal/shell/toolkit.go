package shell

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// ErrToolkitInit wraps any failure to bring up the GUI toolkit.
var ErrToolkitInit = errors.New("failed to init GUI toolkit")

// Toolkit creates the toolkit application for an application identifier.
type Toolkit func(id string) (fyne.App, error)

// NewToolkit is the default Toolkit backed by the platform driver.
func NewToolkit(id string) (fyne.App, error) {
	return app.NewWithID(id), nil
}

// startToolkit runs the factory and turns both returned errors and driver
// panics into ErrToolkitInit.
func startToolkit(toolkit Toolkit, id string) (a fyne.App, err error) {
	defer func() {
		if r := recover(); r != nil {
			a = nil
			err = fmt.Errorf("%w: %v", ErrToolkitInit, r)
		}
	}()

	a, err = toolkit(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrToolkitInit, err)
	}
	if a == nil {
		return nil, fmt.Errorf("%w: toolkit returned no application", ErrToolkitInit)
	}
	return a, nil
}
