// Package repository implements data persistence for stored cards.
// Repositories support both PostgreSQL and MySQL; owner-scoped mutations are
// single atomic statements so concurrent requests cannot interleave into a
// partial state.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	cardsDomain "github.com/allisson/cardvault/internal/cards/domain"
	"github.com/allisson/cardvault/internal/database"
	apperrors "github.com/allisson/cardvault/internal/errors"
)

// PostgreSQLCardRepository implements Card persistence for PostgreSQL databases.
type PostgreSQLCardRepository struct {
	db *sql.DB
}

// Create inserts a new card into the PostgreSQL database.
func (p *PostgreSQLCardRepository) Create(ctx context.Context, card *cardsDomain.Card) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO cards (id, owner_id, card_number, cvv, expiry_date, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		card.ID,
		card.OwnerID,
		card.CardNumber,
		card.CVV,
		card.ExpiryDate,
		card.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create card")
	}
	return nil
}

// ListByOwner retrieves all cards for an owner, newest first.
func (p *PostgreSQLCardRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]*cardsDomain.Card, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, owner_id, card_number, cvv, expiry_date, created_at
			  FROM cards
			  WHERE owner_id = $1
			  ORDER BY created_at DESC`

	rows, err := querier.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list cards")
	}
	defer rows.Close()

	var cards []*cardsDomain.Card
	for rows.Next() {
		var card cardsDomain.Card
		if err := rows.Scan(
			&card.ID,
			&card.OwnerID,
			&card.CardNumber,
			&card.CVV,
			&card.ExpiryDate,
			&card.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan card")
		}
		cards = append(cards, &card)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate cards")
	}

	return cards, nil
}

// GetByID retrieves a card by its id without an ownership filter.
// Used by the reveal path, which looks up by id alone.
func (p *PostgreSQLCardRepository) GetByID(
	ctx context.Context,
	cardID uuid.UUID,
) (*cardsDomain.Card, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, owner_id, card_number, cvv, expiry_date, created_at
			  FROM cards
			  WHERE id = $1
			  LIMIT 1`

	var card cardsDomain.Card
	err := querier.QueryRowContext(ctx, query, cardID).Scan(
		&card.ID,
		&card.OwnerID,
		&card.CardNumber,
		&card.CVV,
		&card.ExpiryDate,
		&card.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, cardsDomain.ErrCardNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get card by id")
	}

	return &card, nil
}

// UpdateExpiry replaces the expiry date of an owner-matched card in a single
// statement and returns the updated record. A miss on either id or owner is
// reported as not found; the two cases are indistinguishable to the caller.
func (p *PostgreSQLCardRepository) UpdateExpiry(
	ctx context.Context,
	cardID uuid.UUID,
	ownerID string,
	expiryDate string,
) (*cardsDomain.Card, error) {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE cards
			  SET expiry_date = $1
			  WHERE id = $2 AND owner_id = $3
			  RETURNING id, owner_id, card_number, cvv, expiry_date, created_at`

	var card cardsDomain.Card
	err := querier.QueryRowContext(ctx, query, expiryDate, cardID, ownerID).Scan(
		&card.ID,
		&card.OwnerID,
		&card.CardNumber,
		&card.CVV,
		&card.ExpiryDate,
		&card.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, cardsDomain.ErrCardNotFound
		}
		return nil, apperrors.Wrap(err, "failed to update card expiry")
	}

	return &card, nil
}

// Delete removes an owner-matched card in a single atomic statement.
func (p *PostgreSQLCardRepository) Delete(
	ctx context.Context,
	cardID uuid.UUID,
	ownerID string,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM cards WHERE id = $1 AND owner_id = $2`

	result, err := querier.ExecContext(ctx, query, cardID, ownerID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete card")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read delete result")
	}
	if affected == 0 {
		return cardsDomain.ErrCardNotFound
	}

	return nil
}

// NewPostgreSQLCardRepository creates a new PostgreSQL Card repository instance.
func NewPostgreSQLCardRepository(db *sql.DB) *PostgreSQLCardRepository {
	return &PostgreSQLCardRepository{db: db}
}
