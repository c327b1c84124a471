// Package validation provides input validation for configuration and CLI
// arguments.
//
// It supports struct tag validation (using the go-playground validator) and
// programmatic validation with error collection. Both report failures as
// *errors.AppError with code INVALID_ARGUMENT.
//
// # Struct Tag Validation
//
//	type PostsConfig struct {
//	    Dir   string `mapstructure:"dir" validate:"required"`
//	    Width int    `mapstructure:"width" validate:"min=1,max=9"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Pattern("slug", slug, `^[a-z0-9-]+$`)
//	err := v.Err()
package validation
