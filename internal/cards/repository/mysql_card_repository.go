package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	cardsDomain "github.com/allisson/cardvault/internal/cards/domain"
	"github.com/allisson/cardvault/internal/database"
	apperrors "github.com/allisson/cardvault/internal/errors"
)

// MySQLCardRepository implements Card persistence for MySQL databases.
type MySQLCardRepository struct {
	db *sql.DB
}

// Create inserts a new card into the MySQL database.
func (m *MySQLCardRepository) Create(ctx context.Context, card *cardsDomain.Card) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO cards (id, owner_id, card_number, cvv, expiry_date, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	id, err := card.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal card id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLCardRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]*cardsDomain.Card, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, owner_id, card_number, cvv, expiry_date, created_at
			  FROM cards
			  WHERE owner_id = ?
			  ORDER BY created_at DESC`

	rows, err := querier.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list cards")
	}
	defer rows.Close()

	var cards []*cardsDomain.Card
	for rows.Next() {
		var card cardsDomain.Card
		var id []byte

		if err := rows.Scan(
			&id,
			&card.OwnerID,
			&card.CardNumber,
			&card.CVV,
			&card.ExpiryDate,
			&card.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan card")
		}

		if err := card.ID.UnmarshalBinary(id); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal card id")
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
func (m *MySQLCardRepository) GetByID(
	ctx context.Context,
	cardID uuid.UUID,
) (*cardsDomain.Card, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, owner_id, card_number, cvv, expiry_date, created_at
			  FROM cards
			  WHERE id = ?
			  LIMIT 1`

	binaryID, err := cardID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal card id")
	}

	var card cardsDomain.Card
	var id []byte

	err = querier.QueryRowContext(ctx, query, binaryID).Scan(
		&id,
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

	if err := card.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal card id")
	}

	return &card, nil
}

// UpdateExpiry replaces the expiry date of an owner-matched card and returns
// the updated record. MySQL has no RETURNING clause, so the row is read back
// with the same id and owner match after the update.
func (m *MySQLCardRepository) UpdateExpiry(
	ctx context.Context,
	cardID uuid.UUID,
	ownerID string,
	expiryDate string,
) (*cardsDomain.Card, error) {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE cards
			  SET expiry_date = ?
			  WHERE id = ? AND owner_id = ?`

	binaryID, err := cardID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal card id")
	}

	if _, err := querier.ExecContext(ctx, query, expiryDate, binaryID, ownerID); err != nil {
		return nil, apperrors.Wrap(err, "failed to update card expiry")
	}

	return m.getByIDAndOwner(ctx, cardID, ownerID)
}

func (m *MySQLCardRepository) getByIDAndOwner(
	ctx context.Context,
	cardID uuid.UUID,
	ownerID string,
) (*cardsDomain.Card, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, owner_id, card_number, cvv, expiry_date, created_at
			  FROM cards
			  WHERE id = ? AND owner_id = ?
			  LIMIT 1`

	binaryID, err := cardID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal card id")
	}

	var card cardsDomain.Card
	var id []byte

	err = querier.QueryRowContext(ctx, query, binaryID, ownerID).Scan(
		&id,
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
		return nil, apperrors.Wrap(err, "failed to get card by id and owner")
	}

	if err := card.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal card id")
	}

	return &card, nil
}

// Delete removes an owner-matched card in a single atomic statement.
func (m *MySQLCardRepository) Delete(
	ctx context.Context,
	cardID uuid.UUID,
	ownerID string,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM cards WHERE id = ? AND owner_id = ?`

	binaryID, err := cardID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal card id")
	}

	result, err := querier.ExecContext(ctx, query, binaryID, ownerID)
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

// NewMySQLCardRepository creates a new MySQL Card repository instance.
func NewMySQLCardRepository(db *sql.DB) *MySQLCardRepository {
	return &MySQLCardRepository{db: db}
}
