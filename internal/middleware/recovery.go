package middleware

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"item-api/pkg/response"
)

// Recovery turns a handler panic into a generic 500 ErrorResp.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "panic caught: %s %s: %v\n%s",
			c.Request.Method, c.Request.URL.RequestURI(), recovered, debug.Stack())
		response.Fail(c, fmt.Errorf("panic: %v", recovered), "")
	})
}
