package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quantivo/backend/internal/interfaces/http/dto"
)

// DefaultBodyLimit is the request body cap applied when none is configured.
const DefaultBodyLimit = 1 << 20 // 1 MiB

// BodyLimit returns a middleware that rejects request bodies larger than
// maxBytes. Bodies with an unknown Content-Length are still capped while
// streaming via http.MaxBytesReader.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(dto.ErrCodeInvalidRequest, "Request body exceeds maximum allowed size"))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
