package hashing_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-salted-hash/hashing"
)

func TestAlgorithm_DigestSize(t *testing.T) {
	cases := map[hashing.Algorithm]int{
		hashing.MD5:     32,
		hashing.SHA1:    40,
		hashing.SHA256:  64,
		hashing.SHA384:  96,
		hashing.SHA512:  128,
		hashing.Blake2b: 128,
	}
	for alg, want := range cases {
		if got := alg.DigestSize(); got != want {
			t.Errorf("%s: DigestSize = %d, want %d", alg, got, want)
		}
	}
	if got := hashing.Algorithm(42).DigestSize(); got != 0 {
		t.Errorf("unknown algorithm: DigestSize = %d, want 0", got)
	}
}

func TestAlgorithm_EnumValuesAreStable(t *testing.T) {
	want := []hashing.Algorithm{0, 1, 2, 3, 4, 5}
	got := []hashing.Algorithm{
		hashing.MD5, hashing.SHA1, hashing.SHA256,
		hashing.SHA384, hashing.SHA512, hashing.Blake2b,
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s = %d, want %d", got[i], int(got[i]), int(want[i]))
		}
	}
	if n := len(hashing.Algorithms()); n != 6 {
		t.Errorf("Algorithms() has %d entries, want 6", n)
	}
}

func TestAlgorithm_Valid(t *testing.T) {
	for _, alg := range hashing.Algorithms() {
		if !alg.Valid() {
			t.Errorf("%s should be valid", alg)
		}
	}
	for _, alg := range []hashing.Algorithm{-1, 6, 100} {
		if alg.Valid() {
			t.Errorf("%d should not be valid", int(alg))
		}
	}
}

func TestAlgorithm_String(t *testing.T) {
	if got := hashing.Blake2b.String(); got != "Blake2b" {
		t.Errorf("got %q, want Blake2b", got)
	}
	if got := hashing.Algorithm(9).String(); got != "Algorithm(9)" {
		t.Errorf("got %q, want Algorithm(9)", got)
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]hashing.Algorithm{
		"MD5":     hashing.MD5,
		"md5":     hashing.MD5,
		"sha1":    hashing.SHA1,
		"SHA-1":   hashing.SHA1,
		"sha256":  hashing.SHA256,
		"sha-256": hashing.SHA256,
		"SHA_384": hashing.SHA384,
		" SHA512": hashing.SHA512,
		"blake2b": hashing.Blake2b,
		"BLAKE2B": hashing.Blake2b,
	}
	for name, want := range cases {
		got, err := hashing.ParseAlgorithm(name)
		if err != nil {
			t.Errorf("%q: unexpected error %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %s, want %s", name, got, want)
		}
	}
}

func TestParseAlgorithm_Unknown(t *testing.T) {
	for _, name := range []string{"", "sha3", "argon2id", "blake2s"} {
		_, err := hashing.ParseAlgorithm(name)
		if !errors.Is(err, hashing.ErrUnsupportedAlgorithm) {
			t.Errorf("%q: expected ErrUnsupportedAlgorithm, got %v", name, err)
		}
	}
}

func TestAlgorithm_TextRoundTrip(t *testing.T) {
	for _, alg := range hashing.Algorithms() {
		text, err := alg.MarshalText()
		if err != nil {
			t.Fatalf("%s: MarshalText: %v", alg, err)
		}
		var back hashing.Algorithm
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("%s: UnmarshalText: %v", alg, err)
		}
		if back != alg {
			t.Errorf("got %s, want %s", back, alg)
		}
	}
	if _, err := hashing.Algorithm(7).MarshalText(); !errors.Is(err, hashing.ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm, got %v", err)
	}
}
