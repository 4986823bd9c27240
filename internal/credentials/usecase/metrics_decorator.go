package usecase

import (
	"context"
	"time"

	credentialsDomain "github.com/allisson/cardvault/internal/credentials/domain"
	"github.com/allisson/cardvault/internal/metrics"
)

// credentialUseCaseWithMetrics decorates CredentialUseCase with metrics instrumentation.
type credentialUseCaseWithMetrics struct {
	next    CredentialUseCase
	metrics metrics.BusinessMetrics
}

// NewCredentialUseCaseWithMetrics wraps a CredentialUseCase with metrics recording.
func NewCredentialUseCaseWithMetrics(useCase CredentialUseCase, m metrics.BusinessMetrics) CredentialUseCase {
	return &credentialUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for credential creation operations.
func (c *credentialUseCaseWithMetrics) Create(
	ctx context.Context,
	website, username, password, phone, securityQuestion string,
) (*credentialsDomain.Credential, error) {
	start := time.Now()
	credential, err := c.next.Create(ctx, website, username, password, phone, securityQuestion)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credentials", "credential_create", status)
	c.metrics.RecordDuration(ctx, "credentials", "credential_create", time.Since(start), status)

	return credential, err
}

// ListByWebsite records metrics for credential listing operations.
func (c *credentialUseCaseWithMetrics) ListByWebsite(
	ctx context.Context,
	website string,
) ([]*credentialsDomain.Credential, error) {
	start := time.Now()
	credentials, err := c.next.ListByWebsite(ctx, website)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credentials", "credential_list", status)
	c.metrics.RecordDuration(ctx, "credentials", "credential_list", time.Since(start), status)

	return credentials, err
}
