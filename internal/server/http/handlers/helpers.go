package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tradsolution/storefront/internal/server/http/middleware"
)

// CurrentSubject extracts the authenticated admin login from context.
func CurrentSubject(c *gin.Context) string {
	val, ok := c.Get(middleware.SubjectContextKey)
	if !ok {
		return ""
	}
	subject, _ := val.(string)
	return subject
}
