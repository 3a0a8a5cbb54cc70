package analytics

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin/",
	"/api/",
	"/favicon",
	"/healthz",
	"/motion.css",
}

// Middleware records successful GET page views in the background. Assets,
// admin and API paths are skipped, as are clients sending DNT: 1.
func (s *Store) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != http.MethodGet || c.Writer.Status() != http.StatusOK {
			return
		}
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			return
		}

		s.Track(c.ClientIP(), c.GetHeader("User-Agent"), path)
	}
}
