// Package mysql implements the repository ports on top of MySQL via GORM.
package mysql

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config contains connection and pool settings for the MySQL store.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string

	// MaxOpenConns bounds the pool; acquisitions beyond it queue until a
	// connection is released.
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN renders the go-sql-driver DSN for this configuration.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// DB wraps the gorm handle and owns the connection pool lifecycle.
type DB struct {
	gorm   *gorm.DB
	logger *slog.Logger
}

// Open connects to MySQL and configures the bounded connection pool.
func Open(cfg Config, logger *slog.Logger) (*DB, error) {
	gormLogger := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("opening mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrapping sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	logger.Info("mysql pool opened",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
		slog.String("database", cfg.Name),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
	)

	return &DB{gorm: db, logger: logger}, nil
}

// Migrate creates or updates the q_authors and q_quotes tables.
func (d *DB) Migrate() error {
	return d.gorm.AutoMigrate(
		&authorRow{},
		&quoteRow{},
	)
}

// Close releases the underlying connection pool.
func (d *DB) Close() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Name implements ports.HealthChecker.
func (d *DB) Name() string { return "mysql" }

// Check implements ports.HealthChecker with a connection ping.
func (d *DB) Check(ctx context.Context) error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
