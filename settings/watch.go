package settings

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"go.uber.org/atomic"
)

// WatchOption configures a [Watcher].
type WatchOption func(*Watcher)

// WithOnChange registers fn to run after each successfully applied reload.
func WithOnChange(fn func(Config)) WatchOption {
	return func(w *Watcher) { w.onChange = fn }
}

// WithLogger sets the logger for reload outcomes. The default discards
// everything.
func WithLogger(l zerolog.Logger) WatchOption {
	return func(w *Watcher) { w.log = l }
}

// Watcher applies a configuration file to the global hashing settings and
// re-applies it whenever the file changes.
//
// Viper offers no way to stop watching, so a Watcher lives for the rest of
// the process.
type Watcher struct {
	path     string
	v        *viper.Viper
	current  *atomic.Pointer[Config]
	onChange func(Config)
	log      zerolog.Logger
}

// Watch loads path, applies it with [Config.Apply] and starts watching the
// file. The initial load must succeed; later invalid edits are logged and
// leave the previous settings in effect.
func Watch(path string, opts ...WatchOption) (*Watcher, error) {
	w := &Watcher{
		path: path,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.v = newViper()
	w.v.SetConfigFile(path)
	if err := w.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	cfg, err := decode(w.v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(); err != nil {
		return nil, err
	}
	w.current = atomic.NewPointer(&cfg)

	w.v.OnConfigChange(w.reload)
	w.v.WatchConfig()

	w.log.Info().
		Str("path", path).
		Str("algorithm", cfg.Algorithm).
		Int("salt_size", cfg.SaltSize).
		Msg("hashing settings loaded")
	return w, nil
}

// Current returns the configuration most recently applied.
func (w *Watcher) Current() Config {
	return *w.current.Load()
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) reload(e fsnotify.Event) {
	if err := w.v.ReadInConfig(); err != nil {
		w.log.Error().Err(err).Str("path", w.path).Msg("hashing settings reload failed")
		return
	}
	// Editors often truncate before writing; an empty read is not a change.
	if !w.v.InConfig(keyAlgorithm) && !w.v.InConfig(keySaltSize) {
		return
	}

	cfg, err := decode(w.v)
	if err == nil {
		err = cfg.Apply()
	}
	if err != nil {
		w.log.Error().Err(err).Str("path", w.path).Str("op", e.Op.String()).
			Msg("hashing settings reload rejected")
		return
	}

	w.current.Store(&cfg)
	w.log.Info().
		Str("path", w.path).
		Str("algorithm", cfg.Algorithm).
		Int("salt_size", cfg.SaltSize).
		Msg("hashing settings reloaded")
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
