package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	credentialsDomain "github.com/allisson/cardvault/internal/credentials/domain"
	"github.com/allisson/cardvault/internal/database"
	apperrors "github.com/allisson/cardvault/internal/errors"
)

// MySQLCredentialRepository implements Credential persistence for MySQL databases.
type MySQLCredentialRepository struct {
	db *sql.DB
}

// Create inserts a new credential into the MySQL database.
func (m *MySQLCredentialRepository) Create(
	ctx context.Context,
	credential *credentialsDomain.Credential,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO credentials (id, website, username, password, phone, security_question, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := credential.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal credential id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		credential.Website,
		credential.Username,
		credential.Password,
		credential.Phone,
		credential.SecurityQuestion,
		credential.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create credential")
	}

	return nil
}

// ListByWebsite retrieves all credentials stored for a website, newest first.
func (m *MySQLCredentialRepository) ListByWebsite(
	ctx context.Context,
	website string,
) ([]*credentialsDomain.Credential, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, website, username, password, phone, security_question, created_at
			  FROM credentials
			  WHERE website = ?
			  ORDER BY created_at DESC`

	rows, err := querier.QueryContext(ctx, query, website)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list credentials")
	}
	defer rows.Close()

	var credentials []*credentialsDomain.Credential
	for rows.Next() {
		var credential credentialsDomain.Credential
		var id []byte

		if err := rows.Scan(
			&id,
			&credential.Website,
			&credential.Username,
			&credential.Password,
			&credential.Phone,
			&credential.SecurityQuestion,
			&credential.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan credential")
		}

		if err := credential.ID.UnmarshalBinary(id); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal credential id")
		}

		credentials = append(credentials, &credential)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate credentials")
	}

	return credentials, nil
}

// GetByID retrieves a credential by its id. Used by the reveal path.
func (m *MySQLCredentialRepository) GetByID(
	ctx context.Context,
	credentialID uuid.UUID,
) (*credentialsDomain.Credential, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, website, username, password, phone, security_question, created_at
			  FROM credentials
			  WHERE id = ?
			  LIMIT 1`

	binaryID, err := credentialID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal credential id")
	}

	var credential credentialsDomain.Credential
	var id []byte

	err = querier.QueryRowContext(ctx, query, binaryID).Scan(
		&id,
		&credential.Website,
		&credential.Username,
		&credential.Password,
		&credential.Phone,
		&credential.SecurityQuestion,
		&credential.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, credentialsDomain.ErrCredentialNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get credential by id")
	}

	if err := credential.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal credential id")
	}

	return &credential, nil
}

// NewMySQLCredentialRepository creates a new MySQL Credential repository instance.
func NewMySQLCredentialRepository(db *sql.DB) *MySQLCredentialRepository {
	return &MySQLCredentialRepository{db: db}
}
