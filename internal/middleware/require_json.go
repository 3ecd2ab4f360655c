package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireJSON rejects write requests that do not declare a JSON body with
// 415, before any handler or store code runs. POST and PUT always need
// application/json; DELETE only when a body or content type is sent.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut:
		case http.MethodDelete:
			if c.Request.ContentLength == 0 && c.GetHeader("Content-Type") == "" {
				c.Next()
				return
			}
		default:
			c.Next()
			return
		}

		if c.ContentType() != "application/json" {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
				"error": "Content-Type must be application/json",
			})
			return
		}
		c.Next()
	}
}
