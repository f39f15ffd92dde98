package cli

import (
	"fmt"
	"time"

	"renthub-backend/internal/config"
	"renthub-backend/internal/database"
	"renthub-backend/internal/logger"
	"renthub-backend/internal/repository"
	"renthub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Env is what every command runs against: the loaded configuration and an
// open, migrated database with the role groups seeded.
type Env struct {
	Config *config.Config
	DB     *gorm.DB

	release func()
}

// NewEnv wraps a database the caller owns. Close leaves it open.
func NewEnv(cfg *config.Config, db *gorm.DB) *Env {
	return &Env{Config: cfg, DB: db}
}

// EnvLoader opens the Env a command runs against
type EnvLoader func() (*Env, error)

// LoadEnv reads .env and the configuration, sets up logging and connects to
// the database, waiting for it to accept connections.
func LoadEnv() (*Env, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	db, err := connectWithRetry(cfg, 30, time.Second)
	if err != nil {
		return nil, err
	}
	if err := database.SeedRoleGroups(db); err != nil {
		return nil, fmt.Errorf("failed to seed role groups: %w", err)
	}
	return &Env{
		Config:  cfg,
		DB:      db,
		release: func() { database.Close(db) },
	}, nil
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: gormlogger.Silent,
	}

	log := logger.For("cli")
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.WithError(err).Warnf("Database not ready (%d/%d)", attempt, maxAttempts)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// Accounts builds the account manager configured for this Env
func (e *Env) Accounts() *service.AccountManager {
	return service.NewAccountManager(
		repository.NewUserRepository(e.DB),
		validator.New(),
		service.AccountOptions{
			BcryptCost:  e.Config.BcryptCost,
			PhoneRegion: e.Config.PhoneDefaultRegion,
		},
	)
}

// Close releases the database connection opened by LoadEnv
func (e *Env) Close() {
	if e.release != nil {
		e.release()
	}
}
