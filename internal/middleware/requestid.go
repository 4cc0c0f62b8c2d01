package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "ai-appointment-scheduler/pkg/log"
)

// HeaderRequestID is the request-ID header honored and echoed by the server.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns each request an ID, puts it into the request context for
// the logger, and echoes it in the response header.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := pkgLog.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}
