// Package settings loads hasher configuration from files and the environment
// and applies it to the [hashing] package.
//
// A configuration file holds two keys:
//
//	algorithm: SHA512   # MD5, SHA1, SHA256, SHA384, SHA512 or Blake2b
//	salt_size: 24       # 1..100
//
// Any format viper understands (YAML, JSON, TOML, ...) works; the type is
// inferred from the file extension. Missing keys fall back to
// [hashing.DefaultAlgorithm] and [hashing.DefaultSaltSize], and the
// environment variables SALTEDHASH_ALGORITHM and SALTEDHASH_SALT_SIZE
// override the file.
//
// [Watch] keeps the global hashing configuration in sync with a file: every
// valid change is applied through [hashing.SetDefaultSettings]; invalid
// changes are logged and ignored.
package settings
