package hashing

import (
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

var logger = atomic.NewPointer(func() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}())

// SetLogger installs the logger used for configuration changes and rejected
// stored values. Passwords, salts and digests are never logged.
// The default logger discards everything.
func SetLogger(l zerolog.Logger) {
	l = l.With().Str("component", "hashing").Logger()
	logger.Store(&l)
}

func log() *zerolog.Logger {
	return logger.Load()
}
