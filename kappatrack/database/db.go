package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/kappatrack/kappatrack/kappatrack/database/models"
	"github.com/kappatrack/kappatrack/kappatrack/logger"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
)

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	// Probe reachability before handing the DSN to the pool so a down
	// database fails fast with a clear error.
	var conn net.Conn
	var err error
	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
	for i := 0; i < defaultMaxRetries; i++ {
		conn, err = net.DialTimeout("tcp", addr, defaultConnTimeout)
		if err == nil {
			break
		}
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}
	conn.Close()

	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool, bunDB: newBunDB(cfg)}, nil
}

func buildConnString(cfg DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?connect_timeout=5",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
}

func newBunDB(cfg DBConfig) *bun.DB {
	sslMode := os.Getenv("PG_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, sslMode,
	)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) Close() {
	if db.bunDB != nil {
		db.bunDB.Close()
	}
	if db.pool != nil {
		db.pool.Close()
	}
}

// InitSchema creates the progress tables and their lookup indexes. Static
// reference data (tasks, bosses, prestige tables) never touches the
// database; it ships with the binary.
func (db *DB) InitSchema(ctx context.Context) error {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.UserTaskProgress)(nil),
		(*models.UserProgress)(nil),
		(*models.UserCollectorProgress)(nil),
		(*models.UserLightkeeperProgress)(nil),
		(*models.UserNote)(nil),
	}

	for _, model := range tables {
		start := time.Now()
		_, err := db.bunDB.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		logger.LogQuery(fmt.Sprintf("create table %T", model), time.Since(start), err)
		if err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_external_id ON users(external_id);",
		"CREATE INDEX IF NOT EXISTS idx_user_task_progress_user_id ON user_task_progress(user_id);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_user_task_progress_user_task ON user_task_progress(user_id, task_key);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_user_progress_user_id ON user_progress(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_user_collector_progress_user_id ON user_collector_progress(user_id);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_user_collector_progress_user_item ON user_collector_progress(user_id, item_name);",
		"CREATE INDEX IF NOT EXISTS idx_user_lightkeeper_progress_user_id ON user_lightkeeper_progress(user_id);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_user_lightkeeper_progress_user_quest ON user_lightkeeper_progress(user_id, quest_name);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_user_notes_user_id ON user_notes(user_id);",
	}

	for _, idx := range indexes {
		start := time.Now()
		_, err := db.bunDB.ExecContext(ctx, idx)
		logger.LogQuery(idx, time.Since(start), err)
		if err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
