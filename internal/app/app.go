package app

import (
	"fmt"
	"quillblog/internal/config"
	"quillblog/internal/db"
	"quillblog/internal/services"

	"gorm.io/gorm"
)

// App holds the shared state every request handler works against.
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Users    *services.UserService
	Posts    *services.PostService
	Comments *services.CommentService
}

// New opens the database, applies migrations and builds the services.
func New(cfg *config.Config) (*App, error) {
	database, err := db.Open(cfg.DatabaseURL, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	creds := services.NewCredentialService(cfg.PBKDF2Iterations)
	return &App{
		Config:   cfg,
		DB:       database,
		Users:    services.NewUserService(database, creds),
		Posts:    services.NewPostService(database),
		Comments: services.NewCommentService(database),
	}, nil
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return db.Close(a.DB)
}
