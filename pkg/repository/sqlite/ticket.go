package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/desklab/porter/pkg/domain/model"
	"github.com/desklab/porter/pkg/domain/types"
	"github.com/desklab/porter/pkg/utils/safe"
)

type ticketRepository struct {
	db *sql.DB
}

func (r *ticketRepository) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	if ticket == nil {
		return nil, goerr.New("ticket is required")
	}

	created := *ticket
	created.Status = created.Status.Normalize()
	if err := created.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid ticket")
	}
	created.CreatedAt = time.Now().UTC()

	var contact sql.NullString
	if created.UserContact != "" {
		contact = sql.NullString{String: created.UserContact, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tickets (user_question, user_contact, created_at, status) VALUES (?, ?, ?, ?)`,
		created.UserQuestion, contact, created.CreatedAt, created.Status.String(),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert ticket")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inserted ticket ID")
	}
	created.ID = id

	return &created, nil
}

func (r *ticketRepository) List(ctx context.Context) ([]*model.Ticket, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_question, user_contact, created_at, status FROM tickets ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query tickets")
	}
	defer safe.Close(ctx, rows)

	var result []*model.Ticket
	for rows.Next() {
		var t model.Ticket
		var contact sql.NullString
		var status string
		if err := rows.Scan(&t.ID, &t.UserQuestion, &contact, &t.CreatedAt, &status); err != nil {
			return nil, goerr.Wrap(err, "failed to scan ticket row")
		}
		if contact.Valid {
			t.UserContact = contact.String
		}
		t.Status = types.TicketStatus(status).Normalize()
		result = append(result, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate ticket rows")
	}

	return result, nil
}
