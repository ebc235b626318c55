package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/gridpath/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextSessionClaims is the key used to store token claims in the Gin context.
	ContextSessionClaims = "sessionClaims"
)

func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextSessionClaims, claims)
		c.Next()
	}
}

// OwnsParam rejects requests whose token claim differs from the path parameter.
// It must run after Authoriz.
func OwnsParam(param, claim string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := Claim(c, claim)
		if !ok || value != c.Param(param) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token does not grant access to this resource"})
			return
		}
		c.Next()
	}
}

// Claim returns a string claim stored by Authoriz.
func Claim(c *gin.Context, name string) (string, bool) {
	raw, ok := c.Get(ContextSessionClaims)
	if !ok {
		return "", false
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return "", false
	}
	value, ok := claims[name].(string)
	return value, ok
}
