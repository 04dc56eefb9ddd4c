package middleware

import (
	"fmt"
	"io"
	"time"

	"github.com/ariebrainware/clinic-cms/util"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// EndpointCallLogger writes one structured log line per request. Server
// errors log at error level, client errors at warn.
func EndpointCallLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()

		fields := logrus.Fields{
			"component":   "http",
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"path":        c.Request.URL.Path,
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
			"ip":          c.ClientIP(),
			"ua":          c.Request.UserAgent(),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields["query"] = q
		}
		if userID, ok := GetUserID(c); ok {
			fields["user_id"] = userID
			if email := util.GetUserEmail(GetDB(c), userID); email != "" {
				fields["email"] = email
			}
		}

		entry := util.Log().WithFields(fields)
		msg := fmt.Sprintf("%s %s -> %d", c.Request.Method, c.Request.URL.Path, status)
		switch {
		case status >= 500:
			entry.Error(msg)
		case status >= 400:
			entry.Warn(msg)
		default:
			entry.Info(msg)
		}
	}
}

// Recovery turns a panic into the standard 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Unexpected error",
			Err: fmt.Errorf("panic: %v", recovered),
		})
		c.Abort()
	})
}
