package middleware

import (
	"net/http"
	"net/http/httptest"
	"quillblog/internal/models"
	"quillblog/internal/session"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	users := fakeUsers{1: {ID: 1, Name: "Alice", Role: models.RoleAdmin}}

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("secret"))))
	r.Use(LoadUser(users))
	r.GET("/login-as/:id", func(c *gin.Context) {
		id := uint(1)
		if c.Param("id") == "9" {
			id = 9
		}
		_ = session.Start(c, &models.User{ID: id})
		c.Status(http.StatusOK)
	})
	r.GET("/me", func(c *gin.Context) {
		if u, ok := CurrentIdentity(c).User(); ok {
			c.String(http.StatusOK, u.Name)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	r.GET("/private", AuthRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "private")
	})

	get := func(path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, "anonymous", get("/me", nil).Body.String())

	w := get("/private", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	known := get("/login-as/1", nil).Result().Cookies()
	require.NotEmpty(t, known)
	assert.Equal(t, "Alice", get("/me", known).Body.String())
	assert.Equal(t, "private", get("/private", known).Body.String())

	// a session pointing at a user that no longer resolves degrades to anonymous
	unknown := get("/login-as/9", nil).Result().Cookies()
	w = get("/me", unknown)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}
