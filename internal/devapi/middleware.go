package devapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxTraceID = "trace_id"
	ctxEmail   = "email"
)

// TraceID tags each request with a fresh id, echoed in X-Trace-ID.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		c.Set(ctxTraceID, traceID)
		c.Writer.Header().Set("X-Trace-ID", traceID)
		c.Next()
	}
}

// RequireAppID rejects requests that do not identify the client app.
func RequireAppID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("AppId") == "" {
			respondError(c, http.StatusBadRequest, "Bad Request", "AppId header is required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// JWTAuth requires a valid bearer token and stores its subject on the context.
func JWTAuth(tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respondError(c, http.StatusUnauthorized, "Unauthorized", "Authorization header missing or invalid")
			c.Abort()
			return
		}

		email, err := tokens.Validate(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Unauthorized", "Your session has expired. Please log in again.")
			c.Abort()
			return
		}

		c.Set(ctxEmail, email)
		c.Next()
	}
}
