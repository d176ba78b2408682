package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/zjrosen/regdesk/internal/flags"
	"github.com/zjrosen/regdesk/internal/store"
	"github.com/zjrosen/regdesk/internal/ui/styles"
)

var validate = newValidator()

// newValidator reports field errors by their config key instead of the Go
// field name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks the struct tag rules and then the cross-field rules that
// tags cannot express. It returns the first problem found.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fieldError(fieldErrs[0])
		}
		return fmt.Errorf("validating config: %w", err)
	}
	if err := ValidateDateFormat(cfg.UI.DateFormat); err != nil {
		return err
	}
	if err := ValidateTheme(cfg.Theme); err != nil {
		return err
	}
	if err := ValidateSeed(cfg.Seed); err != nil {
		return err
	}
	if err := ValidateTracing(cfg.Tracing); err != nil {
		return err
	}
	return ValidateFlags(cfg.Flags)
}

// fieldError renders a validator failure as "ui.date_format: ...".
func fieldError(fe validator.FieldError) error {
	key := fe.Namespace()
	if _, rest, ok := strings.Cut(key, "."); ok {
		key = rest
	}
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", key)
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value())
	case "gte", "lte":
		return fmt.Errorf("%s must be between 0.0 and 1.0, got %v", key, fe.Value())
	default:
		return fmt.Errorf("%s failed %q validation", key, fe.Tag())
	}
}

// ValidateDateFormat rejects layouts with no date or time fields, which
// would print the layout text itself for every registration. The sample
// instant differs from the reference time in every field, so any field in
// the layout changes the output.
func ValidateDateFormat(layout string) error {
	sample := time.Date(2001, time.March, 4, 5, 6, 7, 0, time.UTC)
	if sample.Format(layout) == layout {
		return fmt.Errorf("ui.date_format %q contains no date fields", layout)
	}
	return nil
}

// ValidateTheme checks every color override names a known token and is a
// hex color.
func ValidateTheme(theme ThemeConfig) error {
	for token, value := range theme.FlattenedColors() {
		if !styles.IsValidToken(token) {
			return fmt.Errorf("theme.colors: unknown color token %q", token)
		}
		if err := validate.Var(value, "hexcolor,len=4|len=7"); err != nil {
			return fmt.Errorf("theme.colors.%s: invalid hex color %q", token, value)
		}
	}
	return nil
}

// ValidateSeed checks the seed would build a valid initial state. A
// disabled seed is not checked.
func ValidateSeed(seed SeedConfig) error {
	if !seed.Enabled {
		return nil
	}
	if _, err := store.Seeded(seed.Store()); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

// ValidateTracing checks exporter requirements. Paths are only required
// while tracing is enabled.
func ValidateTracing(tracing TracingConfig) error {
	if !tracing.Enabled {
		return nil
	}
	if tracing.Exporter == "file" && tracing.FilePath == "" {
		return errors.New("tracing.file_path is required when exporter is \"file\"")
	}
	if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
		return errors.New("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}
	return nil
}

// ValidateFlags rejects flag names regdesk does not know, which are most
// likely typos.
func ValidateFlags(values map[string]bool) error {
	if unknown := flags.New(values).Unknown(); len(unknown) > 0 {
		return fmt.Errorf("flags: unknown flag %q", unknown[0])
	}
	return nil
}
