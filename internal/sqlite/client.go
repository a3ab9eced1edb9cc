package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"paymulexport/internal/core"
)

type Client struct {
	db     *sql.DB
	config Config
}

// NewClient opens the database and creates the schema when it is missing.
func NewClient(ctx context.Context, config Config) (*Client, error) {
	db, err := sql.Open("sqlite3", buildDSN(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)
	db.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	client := &Client{
		db:     db,
		config: config,
	}

	if err = client.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return client, nil
}

func buildDSN(config Config) string {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d", config.DatabasePath, config.BusyTimeout.Milliseconds())

	// Sequence reads happen inside write transactions; taking the reserved
	// lock at BEGIN serializes reference issuance across connections.
	dsn += "&_txlock=immediate"

	if config.EnableWAL {
		dsn += "&_journal_mode=WAL"
	}

	return dsn
}

// SequenceStore returns a store over this client's database.
func (c *Client) SequenceStore() SequenceStore {
	return NewSequenceStore(c.db)
}

// DefaultSequence is the interchange reference sequence described by the
// client configuration.
func (c *Client) DefaultSequence(code string) core.Sequence {
	return core.Sequence{
		Code:       code,
		Prefix:     c.config.SequencePrefix,
		Padding:    c.config.SequencePadding,
		NextNumber: 1,
	}
}

func (c *Client) DB() *sql.DB {
	return c.db
}

func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
