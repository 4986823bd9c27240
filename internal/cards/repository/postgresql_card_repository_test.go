package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cardsDomain "github.com/allisson/cardvault/internal/cards/domain"
	apperrors "github.com/allisson/cardvault/internal/errors"
)

var cardColumns = []string{"id", "owner_id", "card_number", "cvv", "expiry_date", "created_at"}

func newTestCard(t *testing.T) *cardsDomain.Card {
	t.Helper()

	return cardsDomain.NewCard(
		"owner-1",
		"abc123:deadbeef",
		"abc123:cafebabe",
		"12/30",
	)
}

func TestPostgreSQLCardRepository_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		card := newTestCard(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cards")).
			WithArgs(card.ID, card.OwnerID, card.CardNumber, card.CVV, card.ExpiryDate, card.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLCardRepository(db)
		err = repo.Create(context.Background(), card)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		card := newTestCard(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cards")).
			WillReturnError(assert.AnError)

		repo := NewPostgreSQLCardRepository(db)
		err = repo.Create(context.Background(), card)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLCardRepository_ListByOwner(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		first := newTestCard(t)
		second := newTestCard(t)

		rows := sqlmock.NewRows(cardColumns).
			AddRow(second.ID, second.OwnerID, second.CardNumber, second.CVV, second.ExpiryDate, second.CreatedAt).
			AddRow(first.ID, first.OwnerID, first.CardNumber, first.CVV, first.ExpiryDate, first.CreatedAt)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, card_number, cvv, expiry_date, created_at")).
			WithArgs("owner-1").
			WillReturnRows(rows)

		repo := NewPostgreSQLCardRepository(db)
		cards, err := repo.ListByOwner(context.Background(), "owner-1")

		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, second.ID, cards[0].ID)
		assert.Equal(t, first.ID, cards[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, card_number, cvv, expiry_date, created_at")).
			WithArgs("owner-without-cards").
			WillReturnRows(sqlmock.NewRows(cardColumns))

		repo := NewPostgreSQLCardRepository(db)
		cards, err := repo.ListByOwner(context.Background(), "owner-without-cards")

		assert.NoError(t, err)
		assert.Empty(t, cards)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLCardRepository_GetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		card := newTestCard(t)

		rows := sqlmock.NewRows(cardColumns).
			AddRow(card.ID, card.OwnerID, card.CardNumber, card.CVV, card.ExpiryDate, card.CreatedAt)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, card_number, cvv, expiry_date, created_at")).
			WithArgs(card.ID).
			WillReturnRows(rows)

		repo := NewPostgreSQLCardRepository(db)
		got, err := repo.GetByID(context.Background(), card.ID)

		require.NoError(t, err)
		assert.Equal(t, card.ID, got.ID)
		assert.Equal(t, card.CardNumber, got.CardNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		cardID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, card_number, cvv, expiry_date, created_at")).
			WithArgs(cardID).
			WillReturnRows(sqlmock.NewRows(cardColumns))

		repo := NewPostgreSQLCardRepository(db)
		got, err := repo.GetByID(context.Background(), cardID)

		assert.Nil(t, got)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLCardRepository_UpdateExpiry(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		card := newTestCard(t)
		newExpiry := "01/31"

		rows := sqlmock.NewRows(cardColumns).
			AddRow(card.ID, card.OwnerID, card.CardNumber, card.CVV, newExpiry, card.CreatedAt)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE cards")).
			WithArgs(newExpiry, card.ID, card.OwnerID).
			WillReturnRows(rows)

		repo := NewPostgreSQLCardRepository(db)
		got, err := repo.UpdateExpiry(context.Background(), card.ID, card.OwnerID, newExpiry)

		require.NoError(t, err)
		assert.Equal(t, newExpiry, got.ExpiryDate)
		assert.Equal(t, card.ID, got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFoundOnOwnerMismatch", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		cardID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE cards")).
			WithArgs("01/31", cardID, "other-owner").
			WillReturnRows(sqlmock.NewRows(cardColumns))

		repo := NewPostgreSQLCardRepository(db)
		got, err := repo.UpdateExpiry(context.Background(), cardID, "other-owner", "01/31")

		assert.Nil(t, got)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLCardRepository_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		cardID := uuid.Must(uuid.NewV7())

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cards")).
			WithArgs(cardID, "owner-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLCardRepository(db)
		err = repo.Delete(context.Background(), cardID, "owner-1")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		cardID := uuid.Must(uuid.NewV7())

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cards")).
			WithArgs(cardID, "owner-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLCardRepository(db)
		err = repo.Delete(context.Background(), cardID, "owner-1")

		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
