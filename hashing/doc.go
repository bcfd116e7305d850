// Package hashing provides salted one-way password hashing over a selectable
// digest algorithm: MD5, SHA-1, SHA-256, SHA-384, SHA-512 or Blake2b.
//
// # Architecture
//
// A [Registry] maps each [Algorithm] to a [Digest] engine, built on first use
// and cached for the life of the registry. A [Hasher] pairs one engine with a
// salt size and implements the hash and validate protocol. Hashers come in
// two forms:
//
//   - an immutable instance from [NewHasher], fixed at construction;
//   - the process-wide configuration behind [Hash], [Validate] and
//     [HashedPasswordSize], changed with [SetDefaultSettings].
//
// Both share the same registry and produce interchangeable values.
//
// # Quick start
//
//	h, err := hashing.NewHasher(hashing.SHA512, 16)
//	if err != nil { log.Fatal(err) }
//
//	stored, _ := h.Hash("my-secret-password")
//	ok, _     := h.Validate("my-secret-password", stored) // true
//
// # Stored format
//
// A hashed password is the uppercase hex digest of password+salt followed by
// the salt:
//
//	<digest hex, Algorithm.DigestSize() chars><salt, 1..100 chars of 0-9A-Z>
//
// The format is positional and not self-describing. The verifier must know
// the algorithm; the salt length is recovered as the total length minus the
// digest size. Password and salt are encoded as UTF-16 little-endian (no BOM)
// before digesting, so every Unicode code point survives the round trip.
//
// # Security
//
// This is a single pass of a fast digest with a plain string comparison. It
// is not an adaptive key-derivation function and gives no constant-time
// guarantee; layer bcrypt or Argon2id on top for high-security credential
// storage.
package hashing
