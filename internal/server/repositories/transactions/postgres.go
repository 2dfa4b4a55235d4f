package transactions

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/ledgerkeeper/internal/dbx"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {

	query :=
		`INSERT INTO transactions (owner_id, amount, kind, counterparty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	counterparty := sql.NullString{String: t.Counterparty, Valid: t.Counterparty != ""}

	err := r.db.QueryRowContext(ctx, query,
		t.OwnerID, t.Amount, string(t.Kind), counterparty).Scan(&t.ID, &t.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Transaction, error) {

	query :=
		`SELECT id, owner_id, amount, kind, counterparty, created_at FROM transactions
		 WHERE owner_id = $1
		 ORDER BY seq
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Transaction, 0)

	for rows.Next() {
		var (
			t            models.Transaction
			kind         string
			counterparty sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Amount, &kind, &counterparty, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		t.Kind = models.Kind(kind)
		t.Counterparty = counterparty.String
		result = append(result, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
