package handlers

import (
	"net/http"
	"quillblog/internal/middleware"
	"quillblog/internal/models"
	"quillblog/internal/session"
	"time"

	"github.com/gin-gonic/gin"
)

// Render injects the values every page needs (identity, flashes, footer year,
// genre menu) before handing obj to the template.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	identity := middleware.CurrentIdentity(c)
	if user, ok := identity.User(); ok {
		obj["CurrentUser"] = user
	}
	obj["LoggedIn"] = identity.IsAuthenticated()
	obj["IsAdmin"] = identity.IsAdmin()
	obj["Flashes"] = session.Flashes(c)
	obj["Genres"] = models.Genres
	obj["Year"] = time.Now().Year()
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{
		"Title": http.StatusText(code),
		"Error": message,
	})
}

// Forbidden is the fixed response for admin-only routes.
func Forbidden(c *gin.Context) {
	RenderError(c, http.StatusForbidden, "You don't have permission to access this page.")
}

func NotFound(c *gin.Context) {
	RenderError(c, http.StatusNotFound, "The page you were looking for does not exist.")
}

func InternalError(c *gin.Context) {
	RenderError(c, http.StatusInternalServerError, "Something went wrong on our side. Please try again.")
}

// redirectWithFlash queues message and sends the client to path.
func redirectWithFlash(c *gin.Context, path, message string) {
	session.AddFlash(c, message)
	c.Redirect(http.StatusFound, path)
}
