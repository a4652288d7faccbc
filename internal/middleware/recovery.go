package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/loanquote/internal/domain/dto"
	"github.com/guttosm/loanquote/internal/logger"
)

// RecoveryMiddleware turns a panic inside a handler into a 500.
//
// The panic value and stack go to the log under the request id; the client
// only receives the request id so it can be matched against the log.
//
// Example:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	log := logger.Component("http")
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			v, _ := c.Get(RequestIDKey)
			rid := toString(v)
			log.Error().
				Str("request_id", rid).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("panic", fmt.Sprintf("%v", r)).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse("internal server error", fmt.Errorf("request_id %s", rid)))
		}()

		c.Next()
	}
}
