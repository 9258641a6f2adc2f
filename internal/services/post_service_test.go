package services

import (
	"fmt"
	"quillblog/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePost(title string, genre models.Genre) PostInput {
	return PostInput{
		Title:    title,
		Subtitle: "A subtitle",
		Body:     "<p>Body of " + title + "</p>",
		ImgURL:   "https://example.com/img.png",
		Genre:    genre,
	}
}

func TestCreatePostRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	env.posts.now = func() time.Time { return time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC) }

	admin, err := env.users.Register(ctx, "Alice", "a@x.com", "password1")
	require.NoError(t, err)

	in := samplePost("Hello", models.GenreEducation)
	created, err := env.posts.Create(ctx, in, admin)
	require.NoError(t, err)

	got, err := env.posts.Get(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, in.Title, got.Title)
	assert.Equal(t, in.Subtitle, got.Subtitle)
	assert.Equal(t, in.Body, got.Body)
	assert.Equal(t, in.ImgURL, got.ImgURL)
	assert.Equal(t, in.Genre, got.Genre)
	assert.Equal(t, "03/09/2024", got.Date)
	require.NotNil(t, got.Author)
	assert.Equal(t, "Alice", got.AuthorName())
	assert.Empty(t, got.Comments)
}

func TestCreatePostWithoutAuthor(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.posts.Create(ctx, samplePost("Orphan", models.GenreTech), nil)
	require.NoError(t, err)

	got, err := env.posts.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AuthorID)
	assert.Equal(t, "", got.AuthorName())
}

func TestCreatePostDuplicateTitle(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.posts.Create(ctx, samplePost("Hello", models.GenreTech), nil)
	require.NoError(t, err)

	_, err = env.posts.Create(ctx, samplePost("Hello", models.GenreEducation), nil)
	assert.ErrorIs(t, err, ErrDuplicateTitle)

	posts, err := env.posts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestCreatePostInvalidGenre(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.posts.Create(ctx, samplePost("Hello", models.Genre("Sports")), nil)
	assert.ErrorIs(t, err, ErrInvalidGenre)
}

func TestGetPostNotFound(t *testing.T) {
	env := newTestEnv(t)

	p, err := env.posts.Get(ctx, 7)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAndListByGenre(t *testing.T) {
	env := newTestEnv(t)

	for i, g := range []models.Genre{models.GenreTech, models.GenreEducation, models.GenreTech} {
		_, err := env.posts.Create(ctx, samplePost(fmt.Sprintf("post %d", i), g), nil)
		require.NoError(t, err)
	}

	all, err := env.posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "post 2", all[0].Title)

	tech, err := env.posts.ListByGenre(ctx, models.GenreTech)
	require.NoError(t, err)
	assert.Len(t, tech, 2)

	none, err := env.posts.ListByGenre(ctx, models.GenreRandomThoughts)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestDeletePostIsIdempotentAndCascades(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.users.Register(ctx, "Alice", "a@x.com", "password1")
	require.NoError(t, err)
	doomed, err := env.posts.Create(ctx, samplePost("Doomed", models.GenreTech), user)
	require.NoError(t, err)
	kept, err := env.posts.Create(ctx, samplePost("Kept", models.GenreTech), user)
	require.NoError(t, err)

	_, err = env.comments.Create(ctx, doomed.ID, user, "first")
	require.NoError(t, err)
	keptComment, err := env.comments.Create(ctx, kept.ID, user, "stays")
	require.NoError(t, err)

	deleted, err := env.posts.Delete(ctx, doomed.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = env.posts.Delete(ctx, doomed.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = env.posts.Get(ctx, doomed.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var orphans int64
	env.db.Model(&models.Comment{}).Where("post_id = ?", doomed.ID).Count(&orphans)
	assert.Zero(t, orphans)

	got, err := env.posts.Get(ctx, kept.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, keptComment.ID, got.Comments[0].ID)
}
