package services

import (
	"context"
	"errors"
	"fmt"
	"quillblog/internal/db"
	"quillblog/internal/models"
	"strings"

	"gorm.io/gorm"
)

type UserService struct {
	db    *gorm.DB
	creds *CredentialService
}

func NewUserService(database *gorm.DB, creds *CredentialService) *UserService {
	return &UserService{db: database, creds: creds}
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user. The first account ever created gets the admin
// role, every later one is a member. The users table holds at most one admin,
// so a registration that loses the race for the first account is stored as a
// member.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = NormalizeEmail(email)

	hash, err := s.creds.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.create(ctx, strings.TrimSpace(name), email, hash, true)
	if errors.Is(err, errAdminTaken) {
		user, err = s.create(ctx, strings.TrimSpace(name), email, hash, false)
	}
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, ErrDuplicateEmail) || db.IsDuplicate(err):
		return nil, ErrDuplicateEmail
	default:
		return nil, fmt.Errorf("create user: %w", err)
	}
}

// errAdminTaken means the insert as admin hit the single-admin index.
var errAdminTaken = errors.New("admin role already taken")

func (s *UserService) create(ctx context.Context, name, email, hash string, mayBeAdmin bool) (*models.User, error) {
	user := models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleMember,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateEmail
		}

		if mayBeAdmin {
			var total int64
			if err := tx.Model(&models.User{}).Count(&total).Error; err != nil {
				return err
			}
			if total == 0 {
				user.Role = models.RoleAdmin
			}
		}

		err := tx.Create(&user).Error
		if err != nil && user.Role == models.RoleAdmin && db.IsDuplicate(err) {
			return errAdminTaken
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate returns the user owning email if password matches.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUnknownEmail
	}
	if err != nil {
		return nil, err
	}

	if !s.creds.Verify(password, user.Password) {
		return nil, ErrCredentialMismatch
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if db.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if db.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
