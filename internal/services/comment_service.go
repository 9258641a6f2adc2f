package services

import (
	"context"
	"fmt"
	"quillblog/internal/db"
	"quillblog/internal/models"
	"strings"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(database *gorm.DB) *CommentService {
	return &CommentService{db: database}
}

// Create adds a comment to post postID. It fails with ErrNotFound when the
// post does not exist.
func (s *CommentService) Create(ctx context.Context, postID uint, author *models.User, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}
	if author == nil {
		return nil, ErrNoAuthor
	}

	authorID := author.ID
	comment := models.Comment{
		Text:     text,
		AuthorID: &authorID,
		PostID:   &postID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id").First(&post, postID).Error; err != nil {
			return err
		}
		return tx.Create(&comment).Error
	})
	if db.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	comment.Author = author
	return &comment, nil
}
