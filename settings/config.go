package settings

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/hasbyte1/go-salted-hash/hashing"
)

// Config is the file and environment representation of hasher settings.
type Config struct {
	Algorithm string `mapstructure:"algorithm" validate:"required,hash_algorithm"`
	SaltSize  int    `mapstructure:"salt_size" validate:"min=1,max=100"`
}

// Default returns the configuration the hashing package starts with.
func Default() Config {
	return Config{
		Algorithm: hashing.DefaultAlgorithm.String(),
		SaltSize:  hashing.DefaultSaltSize,
	}
}

// Validate checks every field and reports all failures at once, wrapped in
// [ErrInvalidConfig].
func (c Config) Validate() error {
	err := configValidator.validate.Struct(c)
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(validateErrs))
	for _, fe := range validateErrs {
		msgs = append(msgs, fe.Translate(configValidator.translator))
	}
	sort.Strings(msgs)
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// ParsedAlgorithm resolves the configured algorithm name.
func (c Config) ParsedAlgorithm() (hashing.Algorithm, error) {
	return hashing.ParseAlgorithm(c.Algorithm)
}

// NewHasher validates c and returns an immutable hasher for it.
func (c Config) NewHasher() (*hashing.Hasher, error) {
	alg, err := c.resolve()
	if err != nil {
		return nil, err
	}
	return hashing.NewHasher(alg, c.SaltSize)
}

// Apply validates c and installs it as the global hashing configuration.
// Nothing changes when validation fails.
func (c Config) Apply() error {
	alg, err := c.resolve()
	if err != nil {
		return err
	}
	return hashing.SetDefaultSettings(
		hashing.WithAlgorithm(alg),
		hashing.WithSaltSize(c.SaltSize),
	)
}

func (c Config) resolve() (hashing.Algorithm, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c.ParsedAlgorithm()
}

type translatedValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

var configValidator = newConfigValidator()

//nolint:errcheck // registration only fails on programmer error
func newConfigValidator() translatedValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their configuration key.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		return name
	})

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, _ := uni.GetTranslator("en")
	enTranslations.RegisterDefaultTranslations(validate, enTrans)

	validate.RegisterValidation("hash_algorithm", func(fl validator.FieldLevel) bool {
		_, err := hashing.ParseAlgorithm(fl.Field().String())
		return err == nil
	})
	validate.RegisterTranslation("hash_algorithm", enTrans,
		func(ut ut.Translator) error {
			return ut.Add("hash_algorithm", "{0} must be one of MD5, SHA1, SHA256, SHA384, SHA512, Blake2b", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fe.Tag(), fe.Field())
			return t
		},
	)

	return translatedValidator{validate: validate, translator: enTrans}
}
