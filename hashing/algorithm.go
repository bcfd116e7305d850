package hashing

import (
	"fmt"
	"strconv"
	"strings"
)

// Algorithm selects the digest used to hash a salted password.
//
// The numeric values and the digest sizes reported by [Algorithm.DigestSize]
// are part of the stored format: changing either breaks verification of
// previously persisted hashes.
type Algorithm int

const (
	// MD5 produces 32 hex characters (exclusive salt).
	MD5 Algorithm = iota
	// SHA1 produces 40 hex characters (exclusive salt).
	SHA1
	// SHA256 produces 64 hex characters (exclusive salt).
	SHA256
	// SHA384 produces 96 hex characters (exclusive salt).
	SHA384
	// SHA512 produces 128 hex characters (exclusive salt).
	SHA512
	// Blake2b produces 128 hex characters (exclusive salt).
	Blake2b
)

var algorithmNames = [...]string{
	MD5:     "MD5",
	SHA1:    "SHA1",
	SHA256:  "SHA256",
	SHA384:  "SHA384",
	SHA512:  "SHA512",
	Blake2b: "Blake2b",
}

var digestSizes = [...]int{
	MD5:     32,
	SHA1:    40,
	SHA256:  64,
	SHA384:  96,
	SHA512:  128,
	Blake2b: 128,
}

// Algorithms returns every supported algorithm in enum order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range algorithmNames {
		out[i] = Algorithm(i)
	}
	return out
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a >= MD5 && a <= Blake2b
}

// DigestSize returns the length of a's digest in hexadecimal characters,
// or 0 when a is not a supported algorithm.
func (a Algorithm) DigestSize() int {
	if !a.Valid() {
		return 0
	}
	return digestSizes[a]
}

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	if !a.Valid() {
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}
	return algorithmNames[a]
}

// MarshalText implements [encoding.TextMarshaler].
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseAlgorithm].
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAlgorithm resolves an algorithm by name. Matching ignores case and
// "-" or "_" separators, so "sha-256", "SHA_256" and "sha256" are equivalent.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.TrimSpace(name))
	for i, n := range algorithmNames {
		if strings.EqualFold(key, n) {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}
