package database

import (
	"context"
	"fmt"

	"invest/migrations"
	"invest/src/config"
	aws_handler "invest/src/utils/aws"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
)

// SecretSource looks up database credentials stored outside the settings files.
type SecretSource interface {
	GetDatabaseCredentials(ctx context.Context, secretId string) (*aws_handler.DatabaseCredentials, error)
}

// BuildDSN prefers an explicit connection string over the discrete settings.
func BuildDSN(cfg config.SQLConfig) string {
	if cfg.ConnectionString != "" {
		return cfg.ConnectionString
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host,
		cfg.Username,
		cfg.Password,
		cfg.Database,
		cfg.Port)
}

// ResolveCredentials overlays the non-empty fields of the secret named by
// cfg.SecretID onto cfg. cfg is returned unchanged when SecretID is empty.
func ResolveCredentials(ctx context.Context, cfg config.SQLConfig, secrets SecretSource) (config.SQLConfig, error) {
	if cfg.SecretID == "" {
		return cfg, nil
	}
	creds, err := secrets.GetDatabaseCredentials(ctx, cfg.SecretID)
	if err != nil {
		return cfg, err
	}
	if creds.Username != "" {
		cfg.Username = creds.Username
	}
	if creds.Password != "" {
		cfg.Password = creds.Password
	}
	if creds.Host != "" {
		cfg.Host = creds.Host
	}
	if creds.Port != "" {
		cfg.Port = creds.Port.String()
	}
	if creds.DBName != "" {
		cfg.Database = creds.DBName
	}
	return cfg, nil
}

// ResolveSQLConfig returns the database settings with AWS-managed credentials applied.
func ResolveSQLConfig(ctx context.Context, cfg *config.Config) (config.SQLConfig, error) {
	sqlCfg := cfg.Databases.SQL
	if sqlCfg.SecretID == "" {
		return sqlCfg, nil
	}
	handler, err := aws_handler.NewAWSHandler(cfg.AWS.Region)
	if err != nil {
		return sqlCfg, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return ResolveCredentials(ctx, sqlCfg, handler.SecretManager)
}

func SetupDB(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*pgxpool.Pool, error) {
	sqlCfg, err := ResolveSQLConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(BuildDSN(sqlCfg))
	if err != nil {
		return nil, err
	}
	if sqlCfg.MaxConns > 0 {
		poolConfig.MaxConns = sqlCfg.MaxConns
	}
	if sqlCfg.MinConns > 0 {
		poolConfig.MinConns = sqlCfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %v\nPlease ensure the database is running and accessible with the provided credentials", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %v\nPlease check your database configuration and ensure it's running", err)
	}

	if sqlCfg.Migrate {
		if err := Migrate(pool); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("database migrations applied")
	}

	logger.WithFields(logrus.Fields{
		"host":     poolConfig.ConnConfig.Host,
		"database": poolConfig.ConnConfig.Database,
		"maxConns": poolConfig.MaxConns,
	}).Info("connected to database")
	return pool, nil
}

// Migrate runs the embedded goose migrations over a database/sql view of pool.
func Migrate(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return migrations.Up(db)
}
