package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

type Sweeper interface {
	MaybeSweep(ctx context.Context) bool
}

// OpportunisticSweep gives the janitor a chance to run before the request is
// handled. Paths in skip never trigger it.
func OpportunisticSweep(sweeper Sweeper, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skipped[c.Request.URL.Path]; !ok {
			sweeper.MaybeSweep(context.WithoutCancel(c.Request.Context()))
		}
		c.Next()
	}
}
