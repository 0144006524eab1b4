package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloglyapp/blogly/store"
)

// TagController serves the tag pages. Tags live independently of posts; the
// add-post flow does not attach them.
type TagController struct {
	store *store.Store
}

// NewTagController creates a new TagController instance.
func NewTagController(s *store.Store) *TagController {
	return &TagController{store: s}
}

// List renders all tags ascending by name.
func (t *TagController) List(ctx *gin.Context) {
	tags, err := t.store.ListTags()
	if err != nil {
		failStore(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, "tags_list.html", gin.H{"Tags": tags})
}

// NewForm renders the empty tag-creation form.
func (t *TagController) NewForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "tag_new.html", gin.H{"Name": ""})
}

// Create adds a tag and redirects to the tag list. A duplicate name
// re-renders the form.
func (t *TagController) Create(ctx *gin.Context) {
	name := ctx.PostForm("name")

	if _, err := t.store.CreateTag(name); err != nil {
		if isFormError(err) {
			ctx.HTML(http.StatusBadRequest, "tag_new.html", gin.H{
				"Error": err.Error(),
				"Name":  name,
			})
			return
		}
		failStore(ctx, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/tags")
}

// Delete removes the tag and redirects to the tag list.
func (t *TagController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := t.store.DeleteTag(id); err != nil {
		failStore(ctx, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/tags")
}
