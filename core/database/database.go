package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnavailable marks failures to reach the store at all: a missing sqlite
// file, a refused connection or a failed ping.
var ErrUnavailable = errors.New("store unavailable")

// Mode selects how a connection may be used.
type Mode int

const (
	// ReadWrite connections are used by the reconciler.
	ReadWrite Mode = iota
	// ReadOnly connections are used by the catalog reader.
	ReadOnly
)

// Opener opens one store connection per operation. The caller owns the
// returned connection and must release it with Close.
type Opener interface {
	Open(ctx context.Context, mode Mode) (*gorm.DB, error)
}

// ConfigOpener opens connections from a static Config.
type ConfigOpener struct {
	Config Config
}

// Open implements Opener.
func (o ConfigOpener) Open(ctx context.Context, mode Mode) (*gorm.DB, error) {
	return Connect(ctx, o.Config, mode)
}

// Connect establishes a connection to the configured database.
// A sqlite file that does not exist is reported as ErrUnavailable instead of
// being created empty.
func Connect(ctx context.Context, cfg Config, mode Mode) (*gorm.DB, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	dialector, err := dialectorFor(cfg, mode, timeout)
	if err != nil {
		return nil, err
	}

	// Suppress GORM logging; callers log failures through zap
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to database: %v", ErrUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get sql.DB: %v", ErrUnavailable, err)
	}

	if cfg.Driver == DriverSQLite {
		// One connection per invocation; an in-memory database only lives as long as it does.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetMaxOpenConns(4)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	pingCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %v", ErrUnavailable, err)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg Config, mode Mode, timeout int) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverSQLite:
		dsn, err := sqliteDSN(cfg, mode)
		if err != nil {
			return nil, err
		}
		return sqlite.Open(dsn), nil
	case DriverMySQL:
		// Special characters in the password must be URL encoded
		userInfo := url.UserPassword(cfg.User, cfg.Password).String()
		dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
			userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

func sqliteDSN(cfg Config, mode Mode) (string, error) {
	if cfg.InMemory() {
		return ":memory:", nil
	}

	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return "", fmt.Errorf("%w: invalid database path %q: %v", ErrUnavailable, cfg.Path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: database file not found at %s", ErrUnavailable, abs)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: database path %s is a directory", ErrUnavailable, abs)
	}

	// Escape the path so '?', '#' and '%' in it are not read as URI syntax.
	dsn := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=rw"}
	if mode == ReadOnly {
		dsn.RawQuery = "mode=ro"
	}
	return dsn.String(), nil
}
