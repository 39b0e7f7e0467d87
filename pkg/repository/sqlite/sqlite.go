package sqlite

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/desklab/porter/pkg/domain/interfaces"
)

// Client is a SQLite-backed repository. The schema is created on open, so a
// fresh database file is usable without a separate migration step.
type Client struct {
	db     *sql.DB
	ticket *ticketRepository
}

var _ interfaces.Repository = &Client{}

const schema = `
CREATE TABLE IF NOT EXISTS tickets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_question TEXT NOT NULL,
	user_contact TEXT,
	created_at TIMESTAMP NOT NULL,
	status TEXT NOT NULL DEFAULT 'open'
);
CREATE INDEX IF NOT EXISTS idx_tickets_created_at ON tickets (created_at DESC);
`

// New opens (or creates) the SQLite database at path and prepares the schema
func New(ctx context.Context, path string) (*Client, error) {
	if path == "" {
		return nil, goerr.New("sqlite database path is required")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to create sqlite schema", goerr.V("path", path))
	}

	return &Client{
		db:     db,
		ticket: &ticketRepository{db: db},
	}, nil
}

func (c *Client) Ticket() interfaces.TicketRepository {
	return c.ticket
}

func (c *Client) Close() error {
	if err := c.db.Close(); err != nil {
		return goerr.Wrap(err, "failed to close sqlite database")
	}
	return nil
}
