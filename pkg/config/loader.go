package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type cacheEntry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]*cacheEntry)

	dotenvOnce sync.Once

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Load fills v from the process environment, then checks its `validate`
// tags. A .env file in the working directory is read once, before the first
// load; variables already set in the environment win.
//
// Each config type is parsed once per process. Later calls for the same T
// copy the cached value, or return the cached error.
//
//	type Config struct {
//		AppName string `env:"APP_NAME" envDefault:"postapi" validate:"required"`
//		Port    int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// A missing .env file is normal outside local development.
		_ = godotenv.Load()
	})

	t := reflect.TypeFor[T]()

	cacheMu.Lock()
	entry, ok := cache[t]
	if !ok {
		entry = &cacheEntry{}
		cache[t] = entry
	}
	cacheMu.Unlock()

	entry.once.Do(func() {
		var cfg T
		if entry.err = Parse(&cfg); entry.err == nil {
			entry.value = cfg
		}
	})

	if entry.err != nil {
		return entry.err
	}
	cfg, ok := entry.value.(T)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cfg
	return nil
}

// Parse fills v from the environment and validates it without touching the
// cache or the .env file. Options are passed to env.ParseWithOptions, which
// lets tests supply their own variables.
func Parse[T any](v *T, opts ...env.Options) error {
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	if len(opts) > 0 {
		o = opts[0]
	}

	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if err := Validate(v); err != nil {
		return err
	}
	return nil
}

// Validate checks v's `validate` struct tags.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return errors.Join(ErrInvalidConfig, err)
		}

		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			errs := make([]error, 0, len(fieldErrs)+1)
			errs = append(errs, ErrInvalidConfig)
			for _, fe := range fieldErrs {
				errs = append(errs, fmt.Errorf("%s: failed %q check", fe.Namespace(), fe.Tag()))
			}
			return errors.Join(errs...)
		}
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
