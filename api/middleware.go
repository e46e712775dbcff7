package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// authorized guards admin routes: it requires a bearer token signed with the
// shared secret and stores the requester email in the request context.
func (s *Server) authorized() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortWithEncoding(c, http.StatusUnauthorized, errorUnauthorized)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		email, err := s.parseAdminToken(token)
		if err != nil {
			abortWithEncoding(c, http.StatusUnauthorized, errorUnauthorized, err)
			return
		}

		c.Set("requester", email)
		c.Next()
	}
}
