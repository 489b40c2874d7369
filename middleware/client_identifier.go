package middleware

import (
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/guestbook_api/shared"
)

// ClientIdentifier stores the rate limiting key in c.Locals(shared.ClientID).
// The browser-supplied id is preferred; the client IP is the fallback. Both
// are spoofable, so the limiter built on them is a deterrent only.
func ClientIdentifier() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(shared.ClientID, GetClientIdentifier(c))
		return c.Next()
	}
}

func GetClientIdentifier(c *fiber.Ctx) string {
	if clientID := c.Get("X-Client-ID"); clientID != "" {
		return clientID
	}

	if clientID := c.Query("client_id"); clientID != "" {
		return clientID
	}

	return GetClientIP(c)
}

func GetClientIP(c *fiber.Ctx) string {
	// Check for forwarded IP first (for load balancers/proxies)
	forwarded := c.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if ip != "" {
				return ip
			}
		}
	}

	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	if cfIP := c.Get("CF-Connecting-IP"); cfIP != "" {
		return cfIP
	}

	ip, _, err := net.SplitHostPort(c.Context().RemoteAddr().String())
	if err != nil {
		return c.Context().RemoteAddr().String()
	}

	return ip
}
