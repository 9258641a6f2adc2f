package session

import (
	"quillblog/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// Start binds user to the client's session.
func Start(c *gin.Context, user *models.User) error {
	s := sessions.Default(c)
	s.Clear()
	s.Set(userIDKey, user.ID)
	return s.Save()
}

// End drops the session identity together with any pending flashes.
func End(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return s.Save()
}

// UserID returns the id stored by Start, if any.
func UserID(c *gin.Context) (uint, bool) {
	switch v := sessions.Default(c).Get(userIDKey).(type) {
	case uint:
		return v, v > 0
	case int:
		return uint(v), v > 0
	case int64:
		return uint(v), v > 0
	case uint64:
		return uint(v), v > 0
	}
	return 0, false
}

// AddFlash queues a one-time message for the next rendered page.
func AddFlash(c *gin.Context, message string) {
	s := sessions.Default(c)
	s.AddFlash(message)
	_ = s.Save()
}

// Flashes pops all pending flash messages.
func Flashes(c *gin.Context) []string {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save()

	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}
