package server

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Paths never attributed to a visitor.
var untrackedPrefixes = []string{"/static/", "/favicon", "/metrics", "/healthz"}

// hashIP keys a client address with the process salt so logs never hold raw
// addresses. Truncated: it only needs to tell visitors apart.
func hashIP(ip, salt string) string {
	h := sha256.New()
	h.Write([]byte(ip + salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// visitorLogger logs each request with a hashed visitor id. Requests sent
// with DNT: 1 are logged without it.
func visitorLogger(log *zap.Logger, salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.Bool("htmx", isHTMX(c)),
		}
		if tracked(path) && c.GetHeader("DNT") != "1" {
			fields = append(fields, zap.String("visitor", hashIP(c.ClientIP(), salt)))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case !tracked(path):
			log.Debug("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

func recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Error("panic recovered", zap.Any("error", err), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

func isHistoryRestore(c *gin.Context) bool {
	return c.GetHeader("HX-History-Restore-Request") == "true"
}
