package hashing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/hasbyte1/go-salted-hash/hashing"

// Hasher hashes and validates passwords with a fixed algorithm and salt size.
//
// A hashed password is the uppercase hex digest of password+salt followed by
// the salt itself:
//
//	<digest: Algorithm.DigestSize() chars><salt: SaltSize() chars>
//
// The format carries no header or delimiter. Validation takes the salt to be
// everything after the first Algorithm.DigestSize() characters, so any
// Hasher using the same algorithm can validate the value regardless of the
// salt size it was produced with.
//
// # Thread safety
//
// Hasher is immutable after construction and safe for concurrent use.
type Hasher struct {
	digest   *Digest
	saltSize int
}

// NewHasher returns a Hasher bound to alg and saltSize for its lifetime.
// Returns [ErrInvalidSaltSize] if saltSize is outside [MinSaltSize,
// MaxSaltSize] and [ErrUnsupportedAlgorithm] if alg is unknown.
func NewHasher(alg Algorithm, saltSize int) (*Hasher, error) {
	return sharedRegistry.NewHasher(alg, saltSize)
}

// Algorithm returns the configured digest algorithm.
func (h *Hasher) Algorithm() Algorithm { return h.digest.Algorithm() }

// SaltSize returns the configured salt length in characters.
func (h *Hasher) SaltSize() int { return h.saltSize }

// HashedPasswordSize returns the length of every value produced by
// [Hasher.Hash]: the digest size plus the salt size.
func (h *Hasher) HashedPasswordSize() int { return h.digest.Size() + h.saltSize }

// Hash salts and digests password. Two calls with the same password return
// different values because a fresh salt is drawn each time. A password that
// is not valid UTF-8 is rejected with [ErrEncoding].
func (h *Hasher) Hash(password string) (string, error) {
	return hashWithSalt(password, createSalt(h.saltSize), h.digest)
}

// Validate reports whether password produces stored when hashed with the
// salt found at the end of stored.
//
// Returns (false, [ErrMalformedHash]) when stored is shorter than the digest
// and (false, [ErrEncoding]) when password is not valid UTF-8. Lengths are
// measured in bytes; values produced by Hash are ASCII, so only ASCII stored
// values can match. The comparison is a plain string equality, not constant
// time.
func (h *Hasher) Validate(password, stored string) (bool, error) {
	return validate(password, stored, h.digest)
}

// HashContext is [Hasher.Hash] wrapped in a trace span.
func (h *Hasher) HashContext(ctx context.Context, password string) (string, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "Hasher.Hash")
	defer span.End()
	span.SetAttributes(h.attributes()...)

	out, err := h.Hash(password)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return out, err
}

// ValidateContext is [Hasher.Validate] wrapped in a trace span.
func (h *Hasher) ValidateContext(ctx context.Context, password, stored string) (bool, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "Hasher.Validate")
	defer span.End()
	span.SetAttributes(h.attributes()...)

	ok, err := h.Validate(password, stored)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Bool("hashing.match", ok))
	return ok, err
}

// NeedsRehash reports whether stored was produced with a different salt size
// than h is configured with, by comparing its length with
// [Hasher.HashedPasswordSize]. Callers should re-hash the password on the
// next successful validation when it returns true.
//
// The algorithm cannot be detected from the stored value; a value produced
// by another algorithm will simply fail validation.
func (h *Hasher) NeedsRehash(stored string) (bool, error) {
	if _, _, err := split(stored, h.digest); err != nil {
		return false, err
	}
	return len(stored) != h.HashedPasswordSize(), nil
}

// Split decomposes stored into its digest and salt parts. The digest part is
// the first [Hasher.Algorithm] digest size bytes; a non-ASCII stored value
// may be cut inside a multi-byte rune.
func (h *Hasher) Split(stored string) (digest, salt string, err error) {
	return split(stored, h.digest)
}

func (h *Hasher) attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("hashing.algorithm", h.Algorithm().String()),
		attribute.Int("hashing.salt_size", h.saltSize),
	}
}

// hashWithSalt digests password+salt and appends salt to the hex digest.
// The result is always d.Size()+len(salt) characters long.
func hashWithSalt(password, salt string, d *Digest) (string, error) {
	b, err := encodeText(password + salt)
	if err != nil {
		return "", err
	}
	return d.Sum(b) + salt, nil
}

func validate(password, stored string, d *Digest) (bool, error) {
	_, salt, err := split(stored, d)
	if err != nil {
		return false, err
	}
	recomputed, err := hashWithSalt(password, salt, d)
	if err != nil {
		return false, err
	}
	return recomputed == stored, nil
}

func split(stored string, d *Digest) (string, string, error) {
	if len(stored) < d.Size() {
		log().Warn().
			Str("algorithm", d.Algorithm().String()).
			Int("length", len(stored)).
			Int("digest_size", d.Size()).
			Msg("rejected hashed password shorter than digest")
		return "", "", fmt.Errorf("%w: length %d is shorter than the %s digest size %d",
			ErrMalformedHash, len(stored), d.Algorithm(), d.Size())
	}
	return stored[:d.Size()], stored[d.Size():], nil
}
