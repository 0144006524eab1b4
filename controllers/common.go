package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bloglyapp/blogly/store"
	"github.com/bloglyapp/blogly/utils"
)

// parseID reads an integer path parameter. A value that does not parse is a
// routing-level 404, not a handler error.
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		utils.NotFoundPage(ctx)
		return 0, false
	}
	return uint(id), true
}

// failStore translates a store error into the matching HTTP response: 404 for
// a missing entity, a logged 500 page otherwise. Validation and duplicate
// errors are handled by the callers, which re-render the submitted form.
func failStore(ctx *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFoundPage(ctx)
		return
	}
	utils.Sugar.Errorf("store error on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	utils.HTMLError(ctx, http.StatusInternalServerError, "Something went wrong")
}

// isFormError reports whether err should be shown back to the submitter.
func isFormError(err error) bool {
	return errors.Is(err, store.ErrValidation) || errors.Is(err, store.ErrDuplicate)
}
