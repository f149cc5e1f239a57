package widget

import "errors"

var (
	// ErrInvalidRange reports a zero-width value range or arc.
	ErrInvalidRange = errors.New("widget: invalid range")
	// ErrInvalidStep reports a non-positive segment step.
	ErrInvalidStep = errors.New("widget: invalid step")
	// ErrNilDriver reports a widget constructed without a driver.
	ErrNilDriver = errors.New("widget: nil driver")
)
