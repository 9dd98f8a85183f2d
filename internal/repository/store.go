package repository

import (
	"context"
	"fmt"

	"access-log-service/internal/config"
	"access-log-service/internal/database"
	"access-log-service/internal/models"
	"access-log-service/pkg/logger"

	"gorm.io/gorm"
)

// Store bundles the repositories of the configured backend.
type Store struct {
	Logs  LogRepository
	Users UserRepository
	// Pinger is nil for backends without a connection to check.
	Pinger Pinger
	close  func() error
}

// Close releases the backend's resources
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStore selects and initializes the storage backend from cfg
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	users, err := LoadUsers(cfg.Storage.SeedUsersFile)
	if err != nil {
		return nil, err
	}

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		logger.Info().Msg("Using in-memory storage")
		return &Store{
			Logs:  NewMemoryLogRepo(),
			Users: NewMemoryUserRepo(users),
		}, nil

	case config.BackendFile:
		logger.Info().Str("path", cfg.Storage.LogFile).Msg("Using read-only file storage")
		return &Store{
			Logs:  NewFileLogRepo(cfg.Storage.LogFile),
			Users: NewMemoryUserRepo(users),
		}, nil

	case config.BackendRelational:
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("driver", cfg.Database.Driver).Str("host", cfg.Database.Host).Msg("Connected to database")
		return newRelationalStore(ctx, db, users)

	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage.Backend)
	}
}

// newRelationalStore seeds users into db and wraps it in a Store.
// db is closed if seeding fails.
func newRelationalStore(ctx context.Context, db *gorm.DB, users []models.User) (*Store, error) {
	closeDB := func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	userRepo := NewUserRepo(db)
	if err := userRepo.SeedUsers(ctx, users); err != nil {
		_ = closeDB()
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}

	logRepo := NewLogRepo(db)
	return &Store{
		Logs:   logRepo,
		Users:  userRepo,
		Pinger: logRepo,
		close:  closeDB,
	}, nil
}
