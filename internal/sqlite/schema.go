package sqlite

import (
	"context"
	"fmt"
)

const schema = `
	CREATE TABLE IF NOT EXISTS sequences (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		code TEXT NOT NULL UNIQUE,
		prefix TEXT NOT NULL DEFAULT '',
		padding INTEGER NOT NULL DEFAULT 0,
		next_number INTEGER NOT NULL DEFAULT 1 CHECK (next_number > 0)
	);
`

func (c *Client) Migrate(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
