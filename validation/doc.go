// Package validation provides argument guards and input validation for
// extkit.
//
// The guard functions return a single AppError naming the offending
// argument and are used by operations that validate eagerly. The Validator
// collects several field errors into one INVALID_INPUT error, and
// ValidateStruct checks struct tags (via the validator library) on
// configuration values.
//
// # Argument Guards
//
//	if err := validation.Positive("width", width); err != nil {
//	    return "", err
//	}
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name).Positive("width", width)
//	err := v.Validate()
//
// # Struct Tag Validation
//
//	type TextConfig struct {
//	    Width int `mapstructure:"width" validate:"gt=0"`
//	}
//	err := validation.ValidateStruct(cfg)
package validation
