package usecase

import (
	"context"

	credentialsDomain "github.com/allisson/cardvault/internal/credentials/domain"
	cryptoService "github.com/allisson/cardvault/internal/crypto/service"
	"github.com/allisson/cardvault/internal/database"
)

// credentialUseCase implements the CredentialUseCase interface for managing stored credentials.
type credentialUseCase struct {
	txManager      database.TxManager
	credentialRepo CredentialRepository
	cipher         cryptoService.FieldCipher
}

// Create encrypts the password and phone and persists the new record.
// Each field is encrypted independently, so the two envelopes never share
// an initialization vector.
func (c *credentialUseCase) Create(
	ctx context.Context,
	website, username, password, phone, securityQuestion string,
) (*credentialsDomain.Credential, error) {
	encryptedPassword, err := c.cipher.Encrypt(password)
	if err != nil {
		return nil, err
	}

	encryptedPhone, err := c.cipher.Encrypt(phone)
	if err != nil {
		return nil, err
	}

	credential := credentialsDomain.NewCredential(
		website,
		username,
		encryptedPassword,
		encryptedPhone,
		securityQuestion,
	)

	err = c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return c.credentialRepo.Create(txCtx, credential)
	})
	if err != nil {
		return nil, err
	}

	return credential, nil
}

// ListByWebsite retrieves all credentials stored for a website. Password and
// phone remain cipher envelopes; nothing is decrypted or masked here.
func (c *credentialUseCase) ListByWebsite(
	ctx context.Context,
	website string,
) ([]*credentialsDomain.Credential, error) {
	return c.credentialRepo.ListByWebsite(ctx, website)
}

// NewCredentialUseCase creates a new credential use case instance with the provided dependencies.
func NewCredentialUseCase(
	txManager database.TxManager,
	credentialRepo CredentialRepository,
	cipher cryptoService.FieldCipher,
) CredentialUseCase {
	return &credentialUseCase{
		txManager:      txManager,
		credentialRepo: credentialRepo,
		cipher:         cipher,
	}
}
