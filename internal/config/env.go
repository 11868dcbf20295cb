package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

const defaultSecretKey = "change-me"

// AppConfig is the deployment configuration read from the environment.
type AppConfig struct {
	Port                string `validate:"required,numeric"`
	Env                 string `validate:"required"`
	SecretKey           string `validate:"required"`
	Debug               bool
	AllowedHosts        []string `validate:"dive,required"`
	CORSAllowAllOrigins bool
	CORSAllowedOrigins  []string `validate:"dive,cors_origin"`
	CSRFTrustedOrigins  []string `validate:"dive,http_url"`
	DatabaseURL         string
	DatabasePath        string `validate:"required"`
	StaticRoot          string
}

func LoadAppConfig(validate *validator.Validate) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:                getEnv("APP_PORT", "8000"),
		Env:                 getEnv("APP_ENV", "production"),
		SecretKey:           getEnv("SECRET_KEY", defaultSecretKey),
		Debug:               envBool("DEBUG", "False"),
		AllowedHosts:        splitList(getEnv("ALLOWED_HOSTS", "*")),
		CORSAllowAllOrigins: envBool("CORS_ALLOW_ALL_ORIGINS", "True"),
		CORSAllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		CSRFTrustedOrigins:  splitList(os.Getenv("CSRF_TRUSTED_ORIGINS")),
		DatabaseURL:         strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DatabasePath:        getEnv("DATABASE_PATH", "./db.sqlite3"),
		StaticRoot:          getEnv("STATIC_ROOT", "./staticfiles"),
	}

	if validate != nil {
		if err := validate.Struct(cfg); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	return cfg, nil
}

// InsecureSecretKey reports a production deployment still running with the
// placeholder secret.
func (c *AppConfig) InsecureSecretKey() bool {
	return !c.Debug && c.SecretKey == defaultSecretKey
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envBool(key, fallback string) bool {
	return strings.ToLower(getEnv(key, fallback)) == "true"
}

func splitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
