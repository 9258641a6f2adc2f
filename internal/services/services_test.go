package services

import (
	"context"
	"path/filepath"
	"quillblog/internal/db"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testIterations = 1000

type testEnv struct {
	db       *gorm.DB
	users    *UserService
	posts    *PostService
	comments *CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })

	return &testEnv{
		db:       database,
		users:    NewUserService(database, NewCredentialService(testIterations)),
		posts:    NewPostService(database),
		comments: NewCommentService(database),
	}
}

var ctx = context.Background()
