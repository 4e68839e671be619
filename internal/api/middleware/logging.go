package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("storeops.http")

// Logger writes one access-log line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			logger.Errorf("%s %s %d %s %s", c.Request.Method, path, status, latency, c.Errors.String())
		case status >= 400:
			logger.Warningf("%s %s %d %s", c.Request.Method, path, status, latency)
		default:
			logger.Debugf("%s %s %d %s", c.Request.Method, path, status, latency)
		}
	}
}
