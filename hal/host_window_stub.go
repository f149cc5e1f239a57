//go:build !tinygo && !cgo

package hal

import "errors"

// WindowConfig controls the desktop preview window.
type WindowConfig struct {
	Scale int
	TPS   int
}

func RunWindow(_ AppFactory, _ WindowConfig, _ ...Option) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
