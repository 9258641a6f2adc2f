package router

import (
	"fmt"
	"net/http"
	"quillblog/internal/app"
	"quillblog/internal/handlers"
	"quillblog/internal/middleware"
	"quillblog/web"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// New builds the engine with sessions, templates and every route.
func New(a *app.App) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	store := cookie.NewStore([]byte(a.Config.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(a.Config.SessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(a.Config.SessionName, store))

	render, err := web.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	r.HTMLRender = render

	r.StaticFS("/static", web.Static())

	r.Use(middleware.LoadUser(a.Users))

	RegisterRoutes(r, a)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, a *app.App) {
	authHandler := handlers.NewAuthHandler(a.Users)
	postHandler := handlers.NewPostHandler(a.Posts)
	commentHandler := handlers.NewCommentHandler(a.Comments)
	healthHandler := handlers.NewHealthHandler(a.DB)

	// Public Routes
	r.GET("/", postHandler.Home)
	r.POST("/", postHandler.Home)
	r.GET("/post/:post_id", postHandler.Show)
	r.GET("/post-category/:category", postHandler.Category)
	r.GET("/healthz", healthHandler.Check)

	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes
	r.POST("/post/:post_id/comment", middleware.AuthRequired(), commentHandler.Create)

	// Admin Routes
	r.GET("/new-post", middleware.AdminOnly(handlers.Forbidden, postHandler.ShowCreate))
	r.POST("/new-post", middleware.AdminOnly(handlers.Forbidden, postHandler.Create))
	r.GET("/delete/:post_id", middleware.AdminOnly(handlers.Forbidden, postHandler.Delete))

	r.NoRoute(handlers.NotFound)
}
