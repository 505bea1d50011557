package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"resort/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
}

func (e endpoint) dsn() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		e.username,
		e.password,
		net.JoinHostPort(e.host, e.port),
		e.dbName,
		e.sslMode,
	)
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}
}

// Close releases both pools. The read pool may alias the write pool.
func (c *Connection) Close() {
	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close write database")
		}
	}

	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close read database")
		}
	}
}

func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	write := config.DB.Postgres.Write

	return connect(endpoint{
		name:     "write",
		username: write.Username,
		password: write.Password,
		host:     write.Host,
		port:     write.Port,
		dbName:   getDBName(config, write.Name),
		sslMode:  write.SSLMode,
	}, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	read := config.DB.Postgres.Read

	return connect(endpoint{
		name:     "read",
		username: read.Username,
		password: read.Password,
		host:     read.Host,
		port:     read.Port,
		dbName:   getDBName(config, read.Name),
		sslMode:  read.SSLMode,
	}, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
}

func connect(target endpoint, maxRetry, waitTime int) *sqlx.DB {
	maxRetry = max(maxRetry, 1)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", target.dsn())
		if err == nil {
			log.
				Info().
				Str("name", target.name).
				Str("host", target.host).
				Str("port", target.port).
				Str("dbName", target.dbName).
				Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", target.name).
			Str("host", target.host).
			Str("dbName", target.dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", target.name).Msg("Giving up connecting to database")

	return nil
}
