package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bloglyapp/blogly/config"
	"github.com/bloglyapp/blogly/controllers"
	"github.com/bloglyapp/blogly/middleware"
	"github.com/bloglyapp/blogly/store"
	"github.com/bloglyapp/blogly/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	if utils.Logger != nil {
		r.Use(utils.Ginzap(utils.Logger))
		r.Use(utils.RecoveryWithZap(utils.Logger))
	} else {
		// fallback recovery if the logger was never initialized
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.LoadHTMLGlob(cfg.TemplatesGlob)

	st := store.New(db)
	userController := controllers.NewUserController(st)
	postController := controllers.NewPostController(st)
	tagController := controllers.NewTagController(st)

	r.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/users")
	})

	r.GET("/users", userController.List)
	r.GET("/users/new", userController.NewForm)
	r.GET("/users/:id", userController.Show)
	r.GET("/users/:id/edit", userController.EditForm)
	r.GET("/users/:id/posts/new", postController.NewForm)
	r.GET("/posts/:id", postController.Show)
	r.GET("/posts/:id/edit", postController.EditForm)
	r.GET("/tags", tagController.List)
	r.GET("/tags/new", tagController.NewForm)

	// Every mutating route shares the rate limiter.
	mutate := r.Group("")
	mutate.Use(middleware.RateLimitMiddleware())
	mutate.POST("/users/new", userController.Create)
	mutate.POST("/users/:id/edit", userController.Update)
	mutate.POST("/users/:id/delete", userController.Delete)
	mutate.POST("/users/:id/posts/new", postController.Create)
	mutate.POST("/posts/:id/edit", postController.Update)
	mutate.POST("/posts/:id/delete", postController.Delete)
	mutate.POST("/tags/new", tagController.Create)
	mutate.POST("/tags/:id/delete", tagController.Delete)

	r.NoRoute(utils.NotFoundPage)

	return r
}
