package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

const ctxClientIPKey = "client_ip"

// ClientIP resolves the caller address once so the rate limiter and the logs agree on it.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxClientIPKey, getClientIP(c))
		c.Next()
	}
}

func getClientIP(c *gin.Context) string {
	// first hop of X-Forwarded-For wins
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); isValidIP(ip) {
			return ip
		}
	}

	for _, header := range []string{"X-Real-Ip", "CF-Connecting-IP"} {
		if ip := strings.TrimSpace(c.GetHeader(header)); isValidIP(ip) {
			return ip
		}
	}

	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}

func isValidIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

// GetIPFromContext returns the address stored by ClientIP, resolving it on the spot when
// the middleware did not run.
func GetIPFromContext(c *gin.Context) string {
	if ip := c.GetString(ctxClientIPKey); ip != "" {
		return ip
	}
	return getClientIP(c)
}
