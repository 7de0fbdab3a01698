package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SimulatedLatency delays every request by d, returning early when the client goes away.
func SimulatedLatency(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d > 0 {
			timer := time.NewTimer(d)
			select {
			case <-timer.C:
			case <-c.Request.Context().Done():
				timer.Stop()
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
