package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/yumutcodes/scanme/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// AuthMiddleware validates the bearer token and puts the subject email and
// role claim into the context. The header value is accepted with or without
// a "Bearer " prefix.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		email, role, err := utils.ParseJWT(tokenString)
		if err != nil {
			if errors.Is(err, utils.ErrMissingSecret) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
				return
			}
			// The reason stays server-side; the caller gets a generic failure.
			if errors.Is(err, jwt.ErrTokenExpired) {
				logrus.Debug("rejected expired token")
			} else {
				logrus.Debugf("rejected token: %v", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("email", email)
		c.Set("role", role)

		c.Next()
	}
}
