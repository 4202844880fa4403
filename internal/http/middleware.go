package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"records-api/internal/repository"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
	sessionKey   = "session"
)

// requestID reuses the caller's X-Request-ID or assigns a fresh uuid.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start),
			"request_id": c.GetString(requestIDKey),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Debug("request served")
	}
}

func recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.WithField("request_id", c.GetString(requestIDKey)).Errorf("panic: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": internalErrorDetail})
	})
}

// sessionScope opens one session for the request and closes it once the
// handler chain returns, whether it finished, aborted or panicked.
func sessionScope(sessions repository.SessionFactory, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.Begin(c.Request.Context())
		if err != nil {
			logger.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Error("open session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": internalErrorDetail})
			return
		}
		defer func() {
			if err := sess.Close(); err != nil {
				logger.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Warn("close session")
			}
		}()

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) repository.Session {
	return c.MustGet(sessionKey).(repository.Session)
}
