package config

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(err)
	}

	return validate
}

// validateCORSOrigin accepts scheme://host[:port] with an optional trailing
// slash, and a "*." subdomain wildcard right after the scheme. Anything the
// cors middleware would refuse at startup is rejected here.
func validateCORSOrigin(fl validator.FieldLevel) bool {
	origin := strings.TrimSpace(fl.Field().String())
	if i := strings.Index(origin, "://*."); i != -1 {
		origin = origin[:i+3] + origin[i+4:]
	}

	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	if parsed.Host == "" || strings.Contains(parsed.Host, "*") || parsed.User != nil {
		return false
	}
	if (parsed.Path != "" && parsed.Path != "/") || parsed.RawQuery != "" || parsed.Fragment != "" {
		return false
	}

	return true
}
