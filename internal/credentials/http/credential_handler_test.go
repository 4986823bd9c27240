package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	credentialsDomain "github.com/allisson/cardvault/internal/credentials/domain"
	"github.com/allisson/cardvault/internal/credentials/http/dto"
	credentialsUsecaseMocks "github.com/allisson/cardvault/internal/credentials/usecase/mocks"
	apperrors "github.com/allisson/cardvault/internal/errors"
	revealMocks "github.com/allisson/cardvault/internal/reveal/mocks"
)

// setupTestHandler creates a test handler with mocked dependencies.
func setupTestHandler(t *testing.T) (*CredentialHandler, *credentialsUsecaseMocks.MockCredentialUseCase, *revealMocks.MockCredentialRevealer) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockCredentialUseCase := new(credentialsUsecaseMocks.MockCredentialUseCase)
	mockRevealer := new(revealMocks.MockCredentialRevealer)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewCredentialHandler(mockCredentialUseCase, mockRevealer, logger)

	return handler, mockCredentialUseCase, mockRevealer
}

func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func TestCredentialHandler_CreateHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase, _ := setupTestHandler(t)

		request := dto.CreateCredentialRequest{
			Website:          "example.com",
			Username:         "alice",
			Password:         "hunter2pass",
			Phone:            "+15551230000",
			SecurityQuestion: "first pet",
		}

		credential := credentialsDomain.NewCredential(
			"example.com", "alice", "ee55:ff66", "1122:3344", "first pet",
		)

		mockUseCase.On("Create", mock.Anything, "example.com", "alice", "hunter2pass", "+15551230000", "first pet").
			Return(credential, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/credentials", request)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.CreateCredentialResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, credential.ID.String(), response.ID)
		// Masked ack over the submitted password tail
		assert.Equal(t, "**** **** **** pass", response.Password)
		assert.NotContains(t, w.Body.String(), "hunter2pass")
	})

	t.Run("Error_MissingFields", func(t *testing.T) {
		base := dto.CreateCredentialRequest{
			Website:          "example.com",
			Username:         "alice",
			Password:         "hunter2pass",
			Phone:            "+15551230000",
			SecurityQuestion: "first pet",
		}

		tests := []struct {
			name   string
			mutate func(r *dto.CreateCredentialRequest)
		}{
			{"MissingWebsite", func(r *dto.CreateCredentialRequest) { r.Website = "" }},
			{"MissingUsername", func(r *dto.CreateCredentialRequest) { r.Username = "" }},
			{"MissingPassword", func(r *dto.CreateCredentialRequest) { r.Password = "" }},
			{"MissingPhone", func(r *dto.CreateCredentialRequest) { r.Phone = "" }},
			{"MissingSecurityQuestion", func(r *dto.CreateCredentialRequest) { r.SecurityQuestion = "" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				handler, mockUseCase, _ := setupTestHandler(t)

				request := base
				tt.mutate(&request)

				c, w := createTestContext(http.MethodPost, "/v1/credentials", request)
				handler.CreateHandler(c)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				mockUseCase.AssertNotCalled(t, "Create")
			})
		}
	})

	t.Run("Error_UseCaseFailure_GenericMessage", func(t *testing.T) {
		handler, mockUseCase, _ := setupTestHandler(t)

		request := dto.CreateCredentialRequest{
			Website:          "example.com",
			Username:         "alice",
			Password:         "hunter2pass",
			Phone:            "+15551230000",
			SecurityQuestion: "first pet",
		}

		mockUseCase.On("Create", mock.Anything, "example.com", "alice", "hunter2pass", "+15551230000", "first pet").
			Return(nil, assert.AnError).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/credentials", request)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestCredentialHandler_ListHandler(t *testing.T) {
	t.Run("Success_ReturnsStoredEnvelopes", func(t *testing.T) {
		handler, mockUseCase, _ := setupTestHandler(t)

		credentials := []*credentialsDomain.Credential{
			credentialsDomain.NewCredential("example.com", "alice", "ee55:ff66", "1122:3344", "first pet"),
		}

		mockUseCase.On("ListByWebsite", mock.Anything, "example.com").Return(credentials, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/credentials?website=example.com", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListCredentialsResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Len(t, response.Data, 1)
		// List views return the stored envelopes as-is for this family
		assert.Equal(t, "ee55:ff66", response.Data[0].Password)
		assert.Equal(t, "1122:3344", response.Data[0].Phone)
		assert.Equal(t, "alice", response.Data[0].Username)
	})

	t.Run("Error_MissingWebsite", func(t *testing.T) {
		handler, mockUseCase, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/credentials", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "ListByWebsite")
	})
}

func TestCredentialHandler_RevealHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, _, mockRevealer := setupTestHandler(t)

		credentialID := uuid.Must(uuid.NewV7())

		mockRevealer.On("CredentialPassword", mock.Anything, credentialID.String()).
			Return("hunter2pass", nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/credentials/"+credentialID.String()+"/reveal", nil)
		c.Params = gin.Params{{Key: "credentialId", Value: credentialID.String()}}
		handler.RevealHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.RevealCredentialResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "hunter2pass", response.Password)
		// Only the password is revealed
		assert.NotContains(t, w.Body.String(), "phone")
	})

	t.Run("Error_MalformedID", func(t *testing.T) {
		handler, _, mockRevealer := setupTestHandler(t)

		mockRevealer.On("CredentialPassword", mock.Anything, "not-a-uuid").
			Return("", apperrors.ErrInvalidIdentifier).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/credentials/not-a-uuid/reveal", nil)
		c.Params = gin.Params{{Key: "credentialId", Value: "not-a-uuid"}}
		handler.RevealHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, _, mockRevealer := setupTestHandler(t)

		credentialID := uuid.Must(uuid.NewV7())

		mockRevealer.On("CredentialPassword", mock.Anything, credentialID.String()).
			Return("", credentialsDomain.ErrCredentialNotFound).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/credentials/"+credentialID.String()+"/reveal", nil)
		c.Params = gin.Params{{Key: "credentialId", Value: credentialID.String()}}
		handler.RevealHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
