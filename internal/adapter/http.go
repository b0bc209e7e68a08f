// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// Register implements [ServerAdapter]. It POSTs req to /users and returns the
// created user.
func (h *httpServerAdapter) Register(ctx context.Context, req RegisterRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/users")

	env, err := decode[models.User](resp, err, "register")
	if err != nil {
		return models.User{}, err
	}
	return env.Data, nil
}

// Login implements [ServerAdapter]. It POSTs credentials to /login and
// stores the returned access token via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		Post("/login")

	env, err := decode[models.LoginResult](resp, err, "login")
	if err != nil {
		return models.LoginResult{}, err
	}
	if env.Data.Access == "" {
		return models.LoginResult{}, fmt.Errorf("login: %w: empty access token", ErrUnexpectedResponse)
	}

	h.SetToken(env.Data.Access)
	h.logger.Debug().Str("user", env.Data.Auth.UUID).Msg("logged in")
	return env.Data, nil
}

// CreateTransaction implements [ServerAdapter].
func (h *httpServerAdapter) CreateTransaction(ctx context.Context, req TransactionRequest) (models.Transaction, error) {
	resp, err := h.authorized().
		SetContext(ctx).
		SetBody(req).
		Post("/transactions")

	env, err := decode[models.Transaction](resp, err, "create transaction")
	if err != nil {
		return models.Transaction{}, err
	}
	return env.Data, nil
}

// ListTransactions implements [ServerAdapter]. Zero page values are left to
// the server defaults.
func (h *httpServerAdapter) ListTransactions(ctx context.Context, page models.PageRequest) ([]models.Transaction, models.PageMeta, error) {
	req := h.authorized().SetContext(ctx)
	if page.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(page.Page))
	}
	if page.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(page.Limit))
	}
	resp, err := req.Get("/transactions")

	env, err := decode[[]models.Transaction](resp, err, "list transactions")
	if err != nil {
		return nil, models.PageMeta{}, err
	}

	var meta models.PageMeta
	if env.Meta != nil {
		meta = *env.Meta
	}
	return env.Data, meta, nil
}

// GetTransaction implements [ServerAdapter].
func (h *httpServerAdapter) GetTransaction(ctx context.Context, id string) (models.Transaction, error) {
	resp, err := h.authorized().
		SetContext(ctx).
		Get("/transactions/" + url.PathEscape(id))

	env, err := decode[models.Transaction](resp, err, "get transaction")
	if err != nil {
		return models.Transaction{}, err
	}
	return env.Data, nil
}

// UpdateTransaction implements [ServerAdapter].
func (h *httpServerAdapter) UpdateTransaction(ctx context.Context, id string, fields map[string]any) (models.TransactionUpdate, error) {
	if fields == nil {
		fields = map[string]any{}
	}

	resp, err := h.authorized().
		SetContext(ctx).
		SetBody(fields).
		Patch("/transactions/" + url.PathEscape(id))

	env, err := decode[models.TransactionUpdate](resp, err, "update transaction")
	if err != nil {
		return models.TransactionUpdate{}, err
	}
	return env.Data, nil
}

// DeleteTransaction implements [ServerAdapter].
func (h *httpServerAdapter) DeleteTransaction(ctx context.Context, id string) error {
	resp, err := h.authorized().
		SetContext(ctx).
		Delete("/transactions/" + url.PathEscape(id))

	_, err = decode[any](resp, err, "delete transaction")
	return err
}

// Version implements [ServerAdapter]. GET /version answers plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("version: %w", err)
	}
	return resp.String(), nil
}
