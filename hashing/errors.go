package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hasher.Validate(password, stored)
//	if errors.Is(err, hashing.ErrMalformedHash) {
//	    // stored value is shorter than the digest
//	}
var (
	// ErrInvalidSaltSize is returned when a salt size outside
	// [MinSaltSize, MaxSaltSize] is passed to [NewHasher] or
	// [SetDefaultSettings]. No configuration is changed when it is returned.
	ErrInvalidSaltSize = errors.New("hashing: invalid salt size")

	// ErrUnsupportedAlgorithm is returned when an [Algorithm] value is not
	// one of the supported selectors, or a name cannot be parsed.
	ErrUnsupportedAlgorithm = errors.New("hashing: unsupported algorithm")

	// ErrMalformedHash is returned by Validate, Split and NeedsRehash when
	// the stored value is shorter than the algorithm's digest, so no salt
	// can be extracted from it.
	ErrMalformedHash = errors.New("hashing: malformed hashed password")

	// ErrEncoding is returned when the password text is not valid UTF-8 and
	// so cannot be converted to its UTF-16 byte form without loss.
	ErrEncoding = errors.New("hashing: cannot encode password text")
)
