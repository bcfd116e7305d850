package hashing

import (
	"go.uber.org/atomic"
)

// The process-wide configuration is a single immutable *Hasher that is
// replaced as a whole, so a reader never sees the algorithm of one setting
// paired with the salt size of another.
var current = atomic.NewPointer(mustDefaultHasher())

func mustDefaultHasher() *Hasher {
	h, err := NewHasher(DefaultAlgorithm, DefaultSaltSize)
	if err != nil {
		panic(err)
	}
	return h
}

// Option changes one field of the global configuration in
// [SetDefaultSettings].
type Option func(*settingsUpdate)

type settingsUpdate struct {
	alg      *Algorithm
	saltSize *int
}

// WithAlgorithm sets the global digest algorithm.
func WithAlgorithm(alg Algorithm) Option {
	return func(u *settingsUpdate) { u.alg = &alg }
}

// WithSaltSize sets the global salt length. It must be in
// [MinSaltSize, MaxSaltSize].
func WithSaltSize(n int) Option {
	return func(u *settingsUpdate) { u.saltSize = &n }
}

// SetDefaultSettings updates the configuration used by [Hash], [Validate],
// [NeedsRehash] and [HashedPasswordSize]. Fields without an option keep their
// current value; the defaults are [DefaultAlgorithm] and [DefaultSaltSize].
//
// Every option is validated before anything changes: on error the previous
// configuration stays in effect.
//
// Calls racing with Hash or Validate in other goroutines are safe, but which
// configuration a concurrent call observes is not defined. Values hashed under
// one salt size still validate after the salt size changes; values hashed
// under another algorithm do not. Use a [Hasher] from [NewHasher] when the
// configuration must stay fixed.
func SetDefaultSettings(opts ...Option) error {
	var u settingsUpdate
	for _, opt := range opts {
		opt(&u)
	}
	if u.saltSize != nil {
		if err := validateSaltSize(*u.saltSize); err != nil {
			return err
		}
	}
	if u.alg != nil {
		if _, err := DigestFor(*u.alg); err != nil {
			return err
		}
	}

	for {
		old := current.Load()
		alg, saltSize := old.Algorithm(), old.SaltSize()
		if u.alg != nil {
			alg = *u.alg
		}
		if u.saltSize != nil {
			saltSize = *u.saltSize
		}
		next, err := NewHasher(alg, saltSize)
		if err != nil {
			return err
		}
		if current.CompareAndSwap(old, next) {
			log().Debug().
				Str("algorithm", alg.String()).
				Int("salt_size", saltSize).
				Msg("default settings changed")
			return nil
		}
	}
}

// ResetDefaultSettings restores [DefaultAlgorithm] and [DefaultSaltSize].
func ResetDefaultSettings() {
	current.Store(mustDefaultHasher())
}

// Default returns the current global configuration as a [Hasher]. The
// returned Hasher does not follow later [SetDefaultSettings] calls, which
// makes it the way to hash and validate several values under one
// configuration.
func Default() *Hasher {
	return current.Load()
}

// DefaultSettings returns the current global algorithm and salt size.
func DefaultSettings() (Algorithm, int) {
	h := current.Load()
	return h.Algorithm(), h.SaltSize()
}

// HashedPasswordSize returns the length of values [Hash] produces under the
// current configuration. It reflects the live settings, not those in effect
// when any particular stored value was produced.
func HashedPasswordSize() int {
	return current.Load().HashedPasswordSize()
}

// Hash hashes password under the current global configuration.
func Hash(password string) (string, error) {
	return current.Load().Hash(password)
}

// Validate checks password against stored using the current global
// algorithm. See [Hasher.Validate].
func Validate(password, stored string) (bool, error) {
	return current.Load().Validate(password, stored)
}

// NeedsRehash reports whether stored differs in length from values produced
// under the current global configuration. See [Hasher.NeedsRehash].
func NeedsRehash(stored string) (bool, error) {
	return current.Load().NeedsRehash(stored)
}
