package http

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// createSecurityMiddleware adds frame, content-type, referrer and HSTS headers.
// HSTS is sent only when the session cookie is marked Secure.
func createSecurityMiddleware(https bool) gin.HandlerFunc {
	options := secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
	}
	if https {
		options.STSSeconds = 31536000
		options.STSIncludeSubdomains = true
	}
	sec := secure.New(options)

	return func(c *gin.Context) {
		if err := sec.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		if status := c.Writer.Status(); status > 300 && status < 399 {
			c.Abort()
		}
	}
}
