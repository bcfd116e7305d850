package hashing

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	// MinSaltSize is the smallest accepted salt length in characters.
	MinSaltSize = 1
	// MaxSaltSize is the largest accepted salt length in characters.
	MaxSaltSize = 100

	// DefaultAlgorithm is the algorithm the global hasher starts with.
	DefaultAlgorithm = SHA256
	// DefaultSaltSize is the salt length the global hasher starts with.
	DefaultSaltSize = 16

	// SaltAlphabet lists the symbols a salt is drawn from.
	SaltAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var saltCharset = append(append([]rune{}, lo.NumbersCharset...), lo.UpperCaseLettersCharset...)

func validateSaltSize(n int) error {
	if n < MinSaltSize || n > MaxSaltSize {
		return fmt.Errorf("%w: salt size %d must be in [%d, %d]",
			ErrInvalidSaltSize, n, MinSaltSize, MaxSaltSize)
	}
	return nil
}

// createSalt returns n symbols drawn uniformly, with replacement, from
// [SaltAlphabet]. The source is math/rand, not crypto/rand: the salt only
// has to be unique, not secret.
func createSalt(n int) string {
	return strings.ToUpper(lo.RandomString(n, saltCharset))
}
