// Package repository implements data persistence for stored credentials.
// Repositories support both PostgreSQL and MySQL. Credential rows have no
// owner column; lookups are by website or bare id.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	credentialsDomain "github.com/allisson/cardvault/internal/credentials/domain"
	"github.com/allisson/cardvault/internal/database"
	apperrors "github.com/allisson/cardvault/internal/errors"
)

// PostgreSQLCredentialRepository implements Credential persistence for PostgreSQL databases.
type PostgreSQLCredentialRepository struct {
	db *sql.DB
}

// Create inserts a new credential into the PostgreSQL database.
func (p *PostgreSQLCredentialRepository) Create(
	ctx context.Context,
	credential *credentialsDomain.Credential,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO credentials (id, website, username, password, phone, security_question, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(
		ctx,
		query,
		credential.ID,
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
func (p *PostgreSQLCredentialRepository) ListByWebsite(
	ctx context.Context,
	website string,
) ([]*credentialsDomain.Credential, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, website, username, password, phone, security_question, created_at
			  FROM credentials
			  WHERE website = $1
			  ORDER BY created_at DESC`

	rows, err := querier.QueryContext(ctx, query, website)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list credentials")
	}
	defer rows.Close()

	var credentials []*credentialsDomain.Credential
	for rows.Next() {
		var credential credentialsDomain.Credential
		if err := rows.Scan(
			&credential.ID,
			&credential.Website,
			&credential.Username,
			&credential.Password,
			&credential.Phone,
			&credential.SecurityQuestion,
			&credential.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan credential")
		}
		credentials = append(credentials, &credential)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate credentials")
	}

	return credentials, nil
}

// GetByID retrieves a credential by its id. Used by the reveal path.
func (p *PostgreSQLCredentialRepository) GetByID(
	ctx context.Context,
	credentialID uuid.UUID,
) (*credentialsDomain.Credential, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, website, username, password, phone, security_question, created_at
			  FROM credentials
			  WHERE id = $1
			  LIMIT 1`

	var credential credentialsDomain.Credential
	err := querier.QueryRowContext(ctx, query, credentialID).Scan(
		&credential.ID,
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

	return &credential, nil
}

// NewPostgreSQLCredentialRepository creates a new PostgreSQL Credential repository instance.
func NewPostgreSQLCredentialRepository(db *sql.DB) *PostgreSQLCredentialRepository {
	return &PostgreSQLCredentialRepository{db: db}
}
