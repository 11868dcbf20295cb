package middleware

import (
	"MonitoreoBackend/pkg/log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
)

func (m *middleware) NewSecurityMiddleware() fiber.Handler {
	return helmet.New(helmet.Config{
		XSSProtection:             "0",
		ContentTypeNosniff:        "nosniff",
		XFrameOptions:             "DENY",
		ReferrerPolicy:            "same-origin",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginEmbedderPolicy: "unsafe-none",
		CrossOriginResourcePolicy: "cross-origin",
		OriginAgentCluster:        "?1",
		XDNSPrefetchControl:       "off",
		XDownloadOptions:          "noopen",
		XPermittedCrossDomain:     "none",
	})
}

var debugAllowedHosts = []string{".localhost", "127.0.0.1", "[::1]"}

type allowedHosts struct {
	patterns []string
}

func newAllowedHosts(hosts []string, debug bool) *allowedHosts {
	patterns := make([]string, 0, len(hosts))
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			patterns = append(patterns, h)
		}
	}

	if len(patterns) == 0 && debug {
		patterns = append(patterns, debugAllowedHosts...)
	}

	return &allowedHosts{patterns: patterns}
}

// allows reports whether host (as sent in the Host header, port included)
// matches one of the patterns. "*" matches anything; a leading dot matches
// the domain itself and every subdomain.
func (a *allowedHosts) allows(host string) bool {
	domain := hostDomain(host)
	if domain == "" {
		return false
	}

	for _, pattern := range a.patterns {
		if pattern == "*" {
			return true
		}
		if strings.HasPrefix(pattern, ".") {
			if domain == pattern[1:] || strings.HasSuffix(domain, pattern) {
				return true
			}
			continue
		}
		if domain == pattern {
			return true
		}
	}

	return false
}

func hostDomain(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return ""
	}

	if strings.HasPrefix(host, "[") {
		end := strings.Index(host, "]")
		if end == -1 {
			return ""
		}
		return host[:end+1]
	}

	if i := strings.LastIndex(host, ":"); i != -1 {
		host = host[:i]
	}

	return strings.TrimSuffix(host, ".")
}

func (m *middleware) NewAllowedHostsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		host := string(c.Request().Host())
		if m.hosts.allows(host) {
			return c.Next()
		}

		m.log.WithFields(log.Fields{
			"request_id": m.GetRequestID(c),
			"host":       host,
			"path":       c.Path(),
		}).Warn("Invalid HTTP_HOST header")

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Bad Request (400)",
		})
	}
}
