package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
)

type APIError struct {
  Message  string  `json:"message"`
  Code     string  `json:"code,omitempty"`
}

type ErrorEnvelope struct {
  Error  APIError  `json:"error"`
}

// RespondError writes a generic envelope. The underlying cause stays in the
// handler's log; it never reaches the client.
func RespondError(c *gin.Context, status int, code string, message string) {
  c.JSON(status, ErrorEnvelope{
    Error: APIError{
      Message: message,
      Code:    code,
    },
  })
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}
