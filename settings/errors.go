package settings

import "errors"

var (
	// ErrInvalidConfig is returned when a loaded configuration fails
	// validation. The wrapped message lists every offending key.
	ErrInvalidConfig = errors.New("settings: invalid configuration")

	// ErrLoad is returned when the configuration source cannot be read or
	// decoded.
	ErrLoad = errors.New("settings: cannot load configuration")
)
