package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bloglyapp/blogly/models"
	"github.com/bloglyapp/blogly/store"
	"github.com/bloglyapp/blogly/utils"
)

const usersCacheKey = "cache:users:list"

// UserController serves the user list, detail, and form pages.
type UserController struct {
	store *store.Store
}

// NewUserController creates a new UserController instance.
func NewUserController(s *store.Store) *UserController {
	return &UserController{store: s}
}

// List renders all users ascending by first name.
func (u *UserController) List(ctx *gin.Context) {
	var users []models.User
	if !utils.CacheGetJSON(usersCacheKey, &users) {
		var err error
		users, err = u.store.ListUsers()
		if err != nil {
			failStore(ctx, err)
			return
		}
		utils.CacheSetJSON(usersCacheKey, users, time.Hour)
	}
	ctx.HTML(http.StatusOK, "users_list.html", gin.H{"Users": users})
}

// NewForm renders the empty user-creation form.
func (u *UserController) NewForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "user_new.html", gin.H{
		"FirstName": "", "LastName": "", "ImageURL": "",
	})
}

// Create adds a user from the submitted form and redirects to its detail page.
func (u *UserController) Create(ctx *gin.Context) {
	firstName := ctx.PostForm("first_name")
	lastName := ctx.PostForm("last_name")
	imageURL := ctx.PostForm("image_url")

	user, err := u.store.CreateUser(firstName, lastName, imageURL)
	if err != nil {
		if isFormError(err) {
			ctx.HTML(http.StatusBadRequest, "user_new.html", gin.H{
				"Error":     err.Error(),
				"FirstName": firstName,
				"LastName":  lastName,
				"ImageURL":  imageURL,
			})
			return
		}
		failStore(ctx, err)
		return
	}

	utils.InvalidateByPrefix(usersCacheKey)
	ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d", user.ID))
}

// Show renders one user's detail page including their posts.
func (u *UserController) Show(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	user, err := u.store.GetUser(id)
	if err != nil {
		failStore(ctx, err)
		return
	}
	posts, err := u.store.ListUserPosts(id)
	if err != nil {
		failStore(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, "user_detail.html", gin.H{"User": user, "Posts": posts})
}

// EditForm renders the edit form pre-filled with current user data.
func (u *UserController) EditForm(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	user, err := u.store.GetUser(id)
	if err != nil {
		failStore(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, "user_edit.html", gin.H{
		"User":      user,
		"FirstName": user.FirstName,
		"LastName":  user.LastName,
		"ImageURL":  user.ImageURL,
	})
}

// Update overwrites the user's fields and redirects to the user list.
func (u *UserController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	firstName := ctx.PostForm("first_name")
	lastName := ctx.PostForm("last_name")
	imageURL := ctx.PostForm("image_url")

	if _, err := u.store.UpdateUser(id, firstName, lastName, imageURL); err != nil {
		if isFormError(err) {
			ctx.HTML(http.StatusBadRequest, "user_edit.html", gin.H{
				"User":      &models.User{ID: id},
				"Error":     err.Error(),
				"FirstName": firstName,
				"LastName":  lastName,
				"ImageURL":  imageURL,
			})
			return
		}
		failStore(ctx, err)
		return
	}

	utils.InvalidateByPrefix(usersCacheKey)
	ctx.Redirect(http.StatusSeeOther, "/users")
}

// Delete cascade-deletes the user and redirects to the user list.
func (u *UserController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := u.store.DeleteUser(id); err != nil {
		failStore(ctx, err)
		return
	}

	utils.InvalidateByPrefix(usersCacheKey)
	ctx.Redirect(http.StatusSeeOther, "/users")
}
