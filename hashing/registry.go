package hashing

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"
)

// Registry lazily builds and caches one [Digest] per [Algorithm].
//
// The first request for an algorithm constructs its engine; later requests
// return the same engine. Entries are never removed.
//
// # Thread safety
//
// All Registry methods are safe for concurrent use. Construction for a given
// algorithm happens at most once even when several goroutines race on the
// first request: the engine is computed under the map's bucket lock.
type Registry struct {
	digests *xsync.Map[Algorithm, *Digest]
}

// NewRegistry returns an empty Registry.
//
// Most callers never need one: [NewHasher] and the package-level functions
// share a process-wide registry.
func NewRegistry() *Registry {
	return &Registry{digests: xsync.NewMap[Algorithm, *Digest]()}
}

var sharedRegistry = NewRegistry()

// DigestFor returns the engine for alg from the process-wide registry.
func DigestFor(alg Algorithm) (*Digest, error) {
	return sharedRegistry.Digest(alg)
}

// Digest returns the cached engine for alg, constructing it on first use.
// Returns [ErrUnsupportedAlgorithm] for values outside the enum; nothing is
// cached in that case.
func (r *Registry) Digest(alg Algorithm) (*Digest, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}
	if d, ok := r.digests.Load(alg); ok {
		return d, nil
	}

	var buildErr error
	d, _ := r.digests.LoadOrCompute(alg, func() (*Digest, bool) {
		built, err := newDigest(alg)
		if err != nil {
			buildErr = err
			return nil, true
		}
		return built, false
	})
	if buildErr != nil {
		return nil, buildErr
	}
	return d, nil
}

// Len reports how many engines have been constructed so far.
func (r *Registry) Len() int {
	return r.digests.Size()
}

// NewHasher is like the package-level [NewHasher] but resolves its engine
// from r.
func (r *Registry) NewHasher(alg Algorithm, saltSize int) (*Hasher, error) {
	if err := validateSaltSize(saltSize); err != nil {
		return nil, err
	}
	d, err := r.Digest(alg)
	if err != nil {
		return nil, err
	}
	return &Hasher{digest: d, saltSize: saltSize}, nil
}
