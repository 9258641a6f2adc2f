package middleware

import (
	"context"
	"net/http"
	"quillblog/internal/logger"
	"quillblog/internal/models"
	"quillblog/internal/session"

	"github.com/gin-gonic/gin"
)

// UserLoader resolves session user ids.
type UserLoader interface {
	Get(ctx context.Context, id uint) (*models.User, error)
}

// ForbiddenFunc renders the response for a rejected request.
type ForbiddenFunc func(c *gin.Context)

// LoadUser resolves the session to an Identity. Any failure leaves the
// request Anonymous.
func LoadUser(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := Anonymous
		if id, ok := session.UserID(c); ok {
			user, err := users.Get(c.Request.Context(), id)
			if err == nil {
				identity = Authenticated(user)
			} else {
				logger.Debugf("session user %d not resolved: %v", id, err)
			}
		}
		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// AuthRequired sends anonymous visitors to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).IsAuthenticated() {
			session.AddFlash(c, "Please log in first.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired lets only the administrator through; everyone else gets the
// forbidden response and the rest of the chain never runs.
func AdminRequired(forbidden ForbiddenFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		user, ok := identity.User()
		switch {
		case !ok:
			logger.Warningf("anonymous request to admin route %s", c.Request.URL.Path)
		case !user.IsAdmin():
			logger.Warningf("user %d denied admin route %s", user.ID, c.Request.URL.Path)
		default:
			c.Next()
			return
		}
		if forbidden != nil {
			forbidden(c)
		} else {
			c.Status(http.StatusForbidden)
		}
		c.Abort()
	}
}

// AdminOnly wraps a single handler with AdminRequired.
func AdminOnly(forbidden ForbiddenFunc, handler gin.HandlerFunc) gin.HandlerFunc {
	guard := AdminRequired(forbidden)
	return func(c *gin.Context) {
		guard(c)
		if c.IsAborted() {
			return
		}
		handler(c)
	}
}
