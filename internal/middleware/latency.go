package middleware

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
)

// Latency delays the response by a random duration in [min, max]. The sleep
// happens after the handler ran, so mutations take effect in invocation
// order and only their observation is delayed. Bodies larger than gin's
// write buffer may start flushing before the sleep; the delay bounds when
// the final bytes arrive, not the first.
func Latency(min, max time.Duration) gin.HandlerFunc {
	if max < min {
		max = min
	}
	return func(c *gin.Context) {
		c.Next()

		delay := min
		if span := max - min; span > 0 {
			delay += time.Duration(rand.Int63n(int64(span) + 1))
		}
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-c.Request.Context().Done():
			}
		}
	}
}
