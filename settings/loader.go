package settings

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/hasbyte1/go-salted-hash/hashing"
)

// EnvPrefix prefixes the environment variables that override file values.
const EnvPrefix = "SALTEDHASH"

const (
	keyAlgorithm = "algorithm"
	keySaltSize  = "salt_size"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyAlgorithm, hashing.DefaultAlgorithm.String())
	v.SetDefault(keySaltSize, hashing.DefaultSaltSize)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration file at path. The format is inferred from the
// extension. The result is validated.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	return decode(v)
}

// LoadBytes reads configuration from memory. configType is any format viper
// supports, such as "yaml", "json" or "toml".
func LoadBytes(configType string, data []byte) (Config, error) {
	if strings.TrimSpace(configType) == "" {
		return Config{}, fmt.Errorf("%w: config type is required", ErrLoad)
	}
	v := newViper()
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return decode(v)
}

// FromEnv builds a configuration from defaults and environment variables only.
func FromEnv() (Config, error) {
	return decode(newViper())
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
