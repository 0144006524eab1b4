package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bloglyapp/blogly/utils"
)

// RequestID assigns every request a uuid, echoed in the X-Request-ID header
// and picked up by the access logger.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(utils.RequestIDKey, id)
		ctx.Header("X-Request-ID", id)
		ctx.Next()
	}
}
