package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTMLError renders the shared error page with the given status.
func HTMLError(ctx *gin.Context, status int, message string) {
	ctx.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}

// NotFoundPage renders the generic not-found page.
func NotFoundPage(ctx *gin.Context) {
	HTMLError(ctx, http.StatusNotFound, "Page not found")
}
