package sqlite

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobmatch/internal/domain/application"
	"jobmatch/internal/domain/assessment"
	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// driverName is the database/sql name registered by modernc.org/sqlite.
const driverName = "sqlite"

// Store keeps every collection in a private in-memory SQLite database. The
// pool is pinned to one connection, so the database lives exactly as long
// as the Store and all statements are serialized.
type Store struct {
	db *gorm.DB
}

var _ repository.Store = (*Store)(nil)

func Open(ctx context.Context, logger *log.Logger) (*Store, error) {
	gl := gormlogger.Discard
	if logger != nil {
		gl = gormlogger.New(logger, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: driverName, DSN: ":memory:"}), &gorm.Config{Logger: gl})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := db.WithContext(ctx).AutoMigrate(
		&userModel{},
		&tokenModel{},
		&jobModel{},
		&candidateModel{},
		&applicationModel{},
		&definitionModel{},
		&submissionModel{},
	); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("auto migrate models: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Users() user.Repository               { return userRepository{db: s.db} }
func (s *Store) Tokens() user.TokenRepository         { return tokenRepository{db: s.db} }
func (s *Store) Jobs() job.Repository                 { return jobRepository{db: s.db} }
func (s *Store) Candidates() candidate.Repository     { return candidateRepository{db: s.db} }
func (s *Store) Applications() application.Repository { return applicationRepository{db: s.db} }
func (s *Store) Assessments() assessment.Repository   { return assessmentRepository{db: s.db} }

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}
