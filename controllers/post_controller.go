package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloglyapp/blogly/store"
	"github.com/bloglyapp/blogly/utils"
)

// PostController serves the post pages. Every post page is reached either
// through its owner (creation) or by post id.
type PostController struct {
	store *store.Store
}

// NewPostController creates a new PostController instance.
func NewPostController(s *store.Store) *PostController {
	return &PostController{store: s}
}

// NewForm renders the post-creation form scoped to one user.
func (p *PostController) NewForm(ctx *gin.Context) {
	userID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	user, err := p.store.GetUser(userID)
	if err != nil {
		failStore(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, "post_new.html", gin.H{
		"User": user, "Title": "", "Content": "",
	})
}

// Create adds a post owned by the user in the path and redirects to that
// user's detail page.
func (p *PostController) Create(ctx *gin.Context) {
	userID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	title := ctx.PostForm("post_title")
	content := utils.Sanitize(ctx.PostForm("post_content"))

	if _, err := p.store.CreatePost(userID, title, content); err != nil {
		if isFormError(err) {
			user, uerr := p.store.GetUser(userID)
			if uerr != nil {
				failStore(ctx, uerr)
				return
			}
			ctx.HTML(http.StatusBadRequest, "post_new.html", gin.H{
				"User":    user,
				"Error":   err.Error(),
				"Title":   title,
				"Content": content,
			})
			return
		}
		failStore(ctx, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d", userID))
}

// Show renders one post with its owning user.
func (p *PostController) Show(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	post, err := p.store.GetPost(id)
	if err != nil {
		failStore(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, "post_detail.html", gin.H{"Post": post})
}

// EditForm renders the edit form pre-filled with current post data.
func (p *PostController) EditForm(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	post, err := p.store.GetPost(id)
	if err != nil {
		failStore(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, "post_edit.html", gin.H{
		"Post":    post,
		"Title":   post.Title,
		"Content": post.Content,
	})
}

// Update overwrites title and content and redirects to the post's detail page.
func (p *PostController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	title := ctx.PostForm("post_title")
	content := utils.Sanitize(ctx.PostForm("post_content"))

	post, err := p.store.UpdatePost(id, title, content)
	if err != nil {
		if isFormError(err) {
			existing, perr := p.store.GetPost(id)
			if perr != nil {
				failStore(ctx, perr)
				return
			}
			ctx.HTML(http.StatusBadRequest, "post_edit.html", gin.H{
				"Post":    existing,
				"Error":   err.Error(),
				"Title":   title,
				"Content": content,
			})
			return
		}
		failStore(ctx, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d", post.ID))
}

// Delete removes the post and redirects to the owning user's detail page.
func (p *PostController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	post, err := p.store.DeletePost(id)
	if err != nil {
		failStore(ctx, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d", post.UserID))
}
