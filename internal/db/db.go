package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"quillblog/internal/logger"
	"quillblog/internal/models"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSQLitePath = "blog.db"

// At most one users row may hold the admin role.
const singleAdminIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_single_admin ON users (role) WHERE role = 'admin'`

// Dialector picks the gorm driver for dsn. Postgres URLs and key/value DSNs
// go to postgres, anything else is treated as a SQLite file path.
func Dialector(dsn string) gorm.Dialector {
	dsn = strings.TrimSpace(dsn)
	if isPostgres(dsn) {
		return postgres.Open(dsn)
	}
	return sqlite.Open(sqliteDSN(dsn))
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

func sqlitePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "sqlite:///")
	path = strings.TrimPrefix(path, "sqlite://")
	if path == "" {
		path = defaultSQLitePath
	}
	return path
}

func sqliteDSN(dsn string) string {
	path := sqlitePath(dsn)
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	// writers take the lock at BEGIN so busy_timeout applies instead of a
	// deadlock on the read-to-write upgrade
	return path + sep + "_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"
}

// Open connects to dsn and migrates the schema.
func Open(dsn string, debug bool) (*gorm.DB, error) {
	if !isPostgres(dsn) {
		if dir := filepath.Dir(sqlitePath(dsn)); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("create database folder: %w", err)
			}
		}
	}

	gormLogger := gormlogger.Discard
	if debug {
		gormLogger = gormlogger.Default
	}

	db, err := gorm.Open(Dialector(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	logger.Info("Database migration completed")

	return db, nil
}

// Migrate creates or updates the users, blog_posts and comments tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	if err := db.Exec(singleAdminIndex).Error; err != nil {
		return fmt.Errorf("create admin index: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Health pings the database and reports basic pool statistics.
func Health(ctx context.Context, db *gorm.DB) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	stats := make(map[string]string)

	sqlDB, err := db.DB()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db error: %v", err)
		return stats
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	dbStats := sqlDB.Stats()
	stats["open_connections"] = fmt.Sprintf("%d", dbStats.OpenConnections)
	stats["in_use"] = fmt.Sprintf("%d", dbStats.InUse)
	stats["idle"] = fmt.Sprintf("%d", dbStats.Idle)
	return stats
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err is a unique constraint violation.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
