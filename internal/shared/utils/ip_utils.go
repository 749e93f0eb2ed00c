package utils

import (
	"net"

	"github.com/gin-gonic/gin"
)

// ExtractClientIP returns the client address used as the rate limit key.
// X-Forwarded-For and X-Real-IP count only when RemoteAddr belongs to a proxy
// the engine trusts (gin.Engine.SetTrustedProxies); otherwise the remote
// address itself is the key.
func ExtractClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); isValidIP(ip) {
		return ip
	}
	return "127.0.0.1"
}

func isValidIP(ip string) bool {
	return ip != "" && net.ParseIP(ip) != nil
}
