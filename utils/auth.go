package utils

import (
	"net/http"
	"strings"

	"masterdataapi/pkg/logger"
	"masterdataapi/pkg/principal"

	"github.com/gin-gonic/gin"
)

// PrincipalKey is the gin context key holding the resolved principal.
const PrincipalKey = "principal"

// AuthMiddleware resolves the bearer credential into a principal before the
// dispatcher runs. Requests without a valid principal are rejected with 401.
func AuthMiddleware(resolver principal.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "Authentication credentials were not provided.")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		p, err := resolver.Resolve(token)
		if err != nil {
			logger.Warnf("Rejected credential on %s: %v", c.Request.URL.Path, err)
			abortUnauthorized(c, err.Error())
			return
		}
		c.Set(PrincipalKey, p)
		c.Next()
	}
}

// CurrentPrincipal returns the principal stored by AuthMiddleware.
func CurrentPrincipal(c *gin.Context) (principal.Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return principal.Principal{}, false
	}
	p, ok := v.(principal.Principal)
	return p, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
		"data":    nil,
	})
}
