package middleware

import (
	"quillblog/internal/models"

	"github.com/gin-gonic/gin"
)

const IdentityKey = "identity"

// Identity is either Anonymous or an authenticated user.
type Identity struct {
	user *models.User
}

// Anonymous is the identity of a request without a valid session.
var Anonymous = Identity{}

func Authenticated(user *models.User) Identity {
	if user == nil {
		return Anonymous
	}
	return Identity{user: user}
}

// User returns the authenticated user, or false for Anonymous.
func (i Identity) User() (*models.User, bool) {
	return i.user, i.user != nil
}

func (i Identity) IsAuthenticated() bool {
	return i.user != nil
}

func (i Identity) IsAdmin() bool {
	return i.user.IsAdmin()
}

// CurrentIdentity returns what LoadUser resolved for this request.
func CurrentIdentity(c *gin.Context) Identity {
	if v, ok := c.Get(IdentityKey); ok {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Anonymous
}
