// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/go-resty/resty/v2"
)

// envelope mirrors [models.Response] with a typed data member.
type envelope[T any] struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    T                `json:"data"`
	Error   json.RawMessage  `json:"error"`
	Meta    *models.PageMeta `json:"meta"`
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] talking to address. An address without a scheme is
// treated as http. A zero timeout disables the client timeout.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The token is stored whitespace-trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authorized starts a request carrying the stored bearer token.
func (h *httpServerAdapter) authorized() *resty.Request {
	req := h.client.R()
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// decode maps failures and returns the envelope of a successful response.
func decode[T any](resp *resty.Response, err error, op string) (envelope[T], error) {
	var env envelope[T]
	if err != nil {
		return env, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return env, fmt.Errorf("%s: %w", op, err)
	}
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return env, fmt.Errorf("%s: %w: %w", op, ErrUnexpectedResponse, err)
	}
	if !env.Success {
		return env, fmt.Errorf("%s: %w: %s", op, ErrUnexpectedResponse, env.Message)
	}
	return env, nil
}
