package services

import (
	"context"
	"errors"
	"fmt"
	"quillblog/internal/db"
	"quillblog/internal/models"
	"strings"
	"time"

	"gorm.io/gorm"
)

type PostInput struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
	Genre    models.Genre
}

type PostService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPostService(database *gorm.DB) *PostService {
	return &PostService{db: database, now: time.Now}
}

// Create stores a new post dated today. author may be nil.
func (s *PostService) Create(ctx context.Context, in PostInput, author *models.User) (*models.Post, error) {
	if !in.Genre.Valid() {
		return nil, ErrInvalidGenre
	}

	post := models.Post{
		Title:    strings.TrimSpace(in.Title),
		Subtitle: strings.TrimSpace(in.Subtitle),
		Body:     in.Body,
		ImgURL:   strings.TrimSpace(in.ImgURL),
		Genre:    in.Genre,
		Date:     s.now().Format(models.DateLayout),
	}
	if author != nil {
		id := author.ID
		post.AuthorID = &id
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Post{}).Where("title = ?", post.Title).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateTitle
		}
		return tx.Create(&post).Error
	})
	switch {
	case err == nil:
		post.Author = author
		return &post, nil
	case errors.Is(err, ErrDuplicateTitle) || db.IsDuplicate(err):
		return nil, ErrDuplicateTitle
	default:
		return nil, fmt.Errorf("create post: %w", err)
	}
}

// Get loads a post with its author and comments, oldest comment first.
func (s *PostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC, id ASC")
		}).
		Preload("Comments.Author").
		First(&post, id).Error
	if db.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return &post, nil
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	err := s.db.WithContext(ctx).Preload("Author").Order("id DESC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *PostService) ListByGenre(ctx context.Context, genre models.Genre) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("genre = ?", genre).
		Order("id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list %s posts: %w", genre, err)
	}
	return posts, nil
}

// Delete removes a post and its comments. Deleting a missing post is not an
// error; the returned flag tells whether anything was removed.
func (s *PostService) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete post %d: %w", id, err)
	}
	return deleted, nil
}
