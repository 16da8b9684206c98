package middleware

import (
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/yungbote/athena-backend/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

type RequestIDMiddleware struct {
  log  *logger.Logger
}

func NewRequestIDMiddleware(baseLog *logger.Logger) *RequestIDMiddleware {
  return &RequestIDMiddleware{log: baseLog.With("middleware", "RequestIDMiddleware")}
}

// Attach tags every request with an id, honoring one supplied by the client.
func (rm *RequestIDMiddleware) Attach() gin.HandlerFunc {
  return func(c *gin.Context) {
    id := c.GetHeader(RequestIDHeader)
    if id == "" {
      id = uuid.NewString()
    }
    c.Set("request_id", id)
    c.Writer.Header().Set(RequestIDHeader, id)
    c.Next()
  }
}
