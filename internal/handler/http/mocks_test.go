// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

const (
	goodToken    = "good-token"
	testUserID   = "0192a7c4-8f5e-7b3a-9c1d-2e4f6a8b0c1d"
	testWalletID = "0192a7c4-8f5e-7b3a-9c1d-2e4f6a8b0c2e"
	testTxID     = "0192a7c4-8f5e-7b3a-9c1d-2e4f6a8b0c3f"
)

// mockTokenService accepts only goodToken, issued to testUserID.
type mockTokenService struct{}

func (mockTokenService) Sign(models.TokenPayload, ...service.SignOption) (string, error) {
	return goodToken, nil
}

func (mockTokenService) Verify(token string) (models.TokenPayload, bool) {
	if token != goodToken {
		return models.TokenPayload{}, false
	}
	return models.TokenPayload{Subject: testUserID, Name: "alice"}, true
}

type mockUserService struct {
	registerFn func(ctx context.Context, fields validators.Fields) (models.User, error)
	loginFn    func(ctx context.Context, credentials models.Credentials) (models.LoginResult, error)
}

func (m *mockUserService) Register(ctx context.Context, fields validators.Fields) (models.User, error) {
	return m.registerFn(ctx, fields)
}

func (m *mockUserService) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error) {
	return m.loginFn(ctx, credentials)
}

type mockTransactionService struct {
	createFn func(ctx context.Context, identity models.Identity, fields validators.Fields) (models.Transaction, error)
	listFn   func(ctx context.Context, identity models.Identity, page models.PageRequest) ([]models.Transaction, models.PageMeta, error)
	getFn    func(ctx context.Context, identity models.Identity, id string) (models.Transaction, error)
	updateFn func(ctx context.Context, identity models.Identity, id string, fields validators.Fields) (models.TransactionUpdate, error)
	deleteFn func(ctx context.Context, identity models.Identity, id string) error
}

func (m *mockTransactionService) Create(ctx context.Context, identity models.Identity, fields validators.Fields) (models.Transaction, error) {
	return m.createFn(ctx, identity, fields)
}

func (m *mockTransactionService) List(ctx context.Context, identity models.Identity, page models.PageRequest) ([]models.Transaction, models.PageMeta, error) {
	return m.listFn(ctx, identity, page)
}

func (m *mockTransactionService) Get(ctx context.Context, identity models.Identity, id string) (models.Transaction, error) {
	return m.getFn(ctx, identity, id)
}

func (m *mockTransactionService) Update(ctx context.Context, identity models.Identity, id string, fields validators.Fields) (models.TransactionUpdate, error) {
	return m.updateFn(ctx, identity, id, fields)
}

func (m *mockTransactionService) Delete(ctx context.Context, identity models.Identity, id string) error {
	return m.deleteFn(ctx, identity, id)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestServices() *service.Services {
	return &service.Services{
		TokenService:       mockTokenService{},
		UserService:        &mockUserService{},
		TransactionService: &mockTransactionService{},
		AppInfoService:     &mockAppInfoService{version: "test-version"},
	}
}

func newTestRouter(t *testing.T, svcs *service.Services, settings Settings) http.Handler {
	t.Helper()
	return NewHandler(svcs, settings, logger.Nop()).Init()
}

// envelope is the decoded shape of models.Response used in assertions.
type envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Error   json.RawMessage  `json:"error"`
	Meta    *models.PageMeta `json:"meta"`
}

func doRequest(t *testing.T, h http.Handler, method, path, body string, authorized bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+goodToken)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}
