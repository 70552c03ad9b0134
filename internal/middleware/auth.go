package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pickship/internal/domain/dto"
	"github.com/guttosm/pickship/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
	// APIKeyContextKey holds the accepted API key in the gin context.
	APIKeyContextKey ContextKey = "api_key"
)

// APIKeyAuth returns a middleware that validates API keys.
// It checks the X-API-Key header first, then falls back to api_key query parameter.
// If validKeys is nil or empty, authentication is disabled.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}

		if !keyAllowed(validKeys, key) {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Set(string(APIKeyContextKey), key)
		c.Next()
	}
}

// GetAPIKey returns the API key accepted by APIKeyAuth, or "".
func GetAPIKey(c *gin.Context) string {
	return c.GetString(string(APIKeyContextKey))
}

// keyAllowed compares against every configured key in constant time.
func keyAllowed(validKeys map[string]bool, key string) bool {
	found := 0
	for k, enabled := range validKeys {
		if enabled && subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			found = 1
		}
	}
	return found == 1
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
