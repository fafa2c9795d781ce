package service

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// subdomainPattern matches URL-safe subdomain labels: lowercase
// alphanumerics and interior hyphens, per DNS label rules.
var subdomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// NewValidator returns a validator with the custom tags the services rely
// on registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	// subdomain is registered on a pre-validated pattern; the closure never errors
	_ = v.RegisterValidation("subdomain", func(fl validator.FieldLevel) bool {
		return subdomainPattern.MatchString(fl.Field().String())
	})
	return v
}
