package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Digest is a digest engine bound to one [Algorithm]. It renders the digest
// of its input as uppercase hexadecimal, two characters per output byte.
//
// # Thread safety
//
// Digest is immutable after construction and safe for concurrent use. Every
// call to [Digest.Sum] works on a fresh [hash.Hash].
type Digest struct {
	alg     Algorithm
	size    int
	newHash func() hash.Hash
}

// newDigest builds the engine for alg. It is called at most once per
// algorithm per [Registry].
func newDigest(alg Algorithm) (*Digest, error) {
	var newHash func() hash.Hash
	switch alg {
	case MD5:
		newHash = md5.New
	case SHA1:
		newHash = sha1.New
	case SHA256:
		newHash = sha256.New
	case SHA384:
		newHash = sha512.New384
	case SHA512:
		newHash = sha512.New
	case Blake2b:
		// Unkeyed blake2b.New512 cannot fail; probe it once here so Sum
		// never has to.
		if _, err := blake2b.New512(nil); err != nil {
			return nil, fmt.Errorf("hashing: blake2b: %w", err)
		}
		newHash = func() hash.Hash {
			h, _ := blake2b.New512(nil)
			return h
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}

	return &Digest{
		alg:     alg,
		size:    newHash().Size() * 2,
		newHash: newHash,
	}, nil
}

// Algorithm returns the algorithm this engine computes.
func (d *Digest) Algorithm() Algorithm { return d.alg }

// Size returns the digest length in hexadecimal characters.
func (d *Digest) Size() int { return d.size }

// Sum returns the digest of b as an uppercase hex string of length
// [Digest.Size].
func (d *Digest) Sum(b []byte) string {
	h := d.newHash()
	h.Write(b)
	return strings.ToUpper(hex.EncodeToString(h.Sum(nil)))
}
