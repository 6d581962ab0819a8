package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// DatabaseFile is the preferences database name inside the droidsound home
const DatabaseFile = "prefs.db"

// SQLiteRepository implements ports.PreferencesRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.PreferencesRepository = (*SQLiteRepository)(nil)

// gormLogger routes GORM output through the droidsound logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(_ context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(_ context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(_ context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv(logging.EnvDebug) == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the preferences database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// a console, an ssh session and a one-shot send may share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&PreferencesModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate preferences schema: %w", err)
	}

	logging.Logger.Debug("Preferences database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForHome opens the preferences database inside a droidsound home
func NewSQLiteRepositoryForHome(home string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(home, DatabaseFile))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements PreferencesReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, profile string) (*domain.Preferences, error) {
	var model PreferencesModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("profile = ?", profile).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile %q", domain.ErrPreferencesNotFound, profile)
		}
		return nil, err
	}

	prefs := preferencesModelToDomain(model)
	return &prefs, nil
}

// List implements PreferencesReader.List, ordered by profile name
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Preferences, error) {
	var models []PreferencesModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("profile").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Preferences, len(models))
	for i, m := range models {
		result[i] = preferencesModelToDomain(m)
	}
	return result, nil
}

// Save implements PreferencesWriter.Save, inserting or replacing the profile
func (r *SQLiteRepository) Save(ctx context.Context, prefs domain.Preferences) error {
	if prefs.Profile == "" {
		prefs.Profile = domain.DefaultProfile
	}
	model := domainToPreferencesModel(prefs)

	return withRetry(func() error {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile"}},
			UpdateAll: true,
		}).Create(&model).Error
		if err != nil {
			return fmt.Errorf("failed to save preferences: %w", err)
		}
		return nil
	}, 3)
}

// Delete implements PreferencesWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, profile string) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Where("profile = ?", profile).Delete(&PreferencesModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: profile %q", domain.ErrPreferencesNotFound, profile)
		}
		return nil
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := range maxRetries {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}
		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
