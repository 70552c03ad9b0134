package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pickship/internal/domain/dto"
	"github.com/guttosm/pickship/internal/i18n"
)

// DefaultMaxBodyBytes is used when a non-positive body limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20 // 1MB

// BodyLimit caps the request body at maxBytes. Requests that declare a larger
// Content-Length are rejected up front; for the rest, reading past the limit
// fails with *http.MaxBytesError.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			AbortRequestTooLarge(c)
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// AbortRequestTooLarge answers 413 with a translated message.
func AbortRequestTooLarge(c *gin.Context) {
	message := i18n.GetTranslator().Translate(i18n.ErrKeyRequestTooLarge, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodePayloadTooLarge, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, errorResp)
}
