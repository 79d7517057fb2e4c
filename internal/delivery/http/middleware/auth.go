package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lunarpay/settlement-reward-service/internal/delivery/http/response"
)

// Auth checks the static service token set by the gateway. Operator identity
// travels separately in X-Operator-Id / X-Operator-Name headers.
func Auth(serviceToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header || token != serviceToken {
			response.Fail(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid service token")
			c.Abort()
			return
		}
		c.Next()
	}
}
