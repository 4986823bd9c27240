// Package http provides HTTP handlers for stored credential operations.
// Passwords and phone numbers are encrypted at rest; list views return the
// stored envelopes and the reveal endpoint is the only path returning plaintext.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cardvault/internal/credentials/http/dto"
	credentialsUseCase "github.com/allisson/cardvault/internal/credentials/usecase"
	"github.com/allisson/cardvault/internal/httputil"
	"github.com/allisson/cardvault/internal/reveal"
	customValidation "github.com/allisson/cardvault/internal/validation"
)

// CredentialHandler handles HTTP requests for stored credential operations.
type CredentialHandler struct {
	credentialUseCase credentialsUseCase.CredentialUseCase
	revealer          reveal.CredentialRevealer
	logger            *slog.Logger
}

// NewCredentialHandler creates a new credential handler with required dependencies.
func NewCredentialHandler(
	credentialUseCase credentialsUseCase.CredentialUseCase,
	revealer reveal.CredentialRevealer,
	logger *slog.Logger,
) *CredentialHandler {
	return &CredentialHandler{
		credentialUseCase: credentialUseCase,
		revealer:          revealer,
		logger:            logger,
	}
}

// CreateHandler stores a new credential with encrypted password and phone.
// POST /v1/credentials
// Returns 201 Created with the record id and a masked tail of the submitted password.
func (h *CredentialHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCredentialRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	credential, err := h.credentialUseCase.Create(
		c.Request.Context(),
		req.Website,
		req.Username,
		req.Password,
		req.Phone,
		req.SecurityQuestion,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Acknowledge with a mask over the submitted password tail
	response := dto.MapCredentialToCreateResponse(credential, req.Password)
	c.JSON(http.StatusCreated, response)
}

// ListHandler retrieves all credentials stored for a website, newest first.
// GET /v1/credentials?website=...
// Returns 200 OK with the stored records; password and phone fields carry the
// cipher envelopes as persisted.
func (h *CredentialHandler) ListHandler(c *gin.Context) {
	website := c.Query("website")
	if website == "" {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("website query parameter is required"),
			h.logger,
		)
		return
	}

	// Call use case
	credentials, err := h.credentialUseCase.ListByWebsite(c.Request.Context(), website)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Map to response; envelopes pass through untouched
	response := dto.MapCredentialsToListResponse(credentials)
	c.JSON(http.StatusOK, response)
}

// RevealHandler returns the decrypted password for the identified credential.
// GET /v1/credentials/:credentialId/reveal
// Returns 200 OK with the plaintext password; the phone field is never revealed.
func (h *CredentialHandler) RevealHandler(c *gin.Context) {
	password, err := h.revealer.CredentialPassword(c.Request.Context(), c.Param("credentialId"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.RevealCredentialResponse{Password: password})
}
