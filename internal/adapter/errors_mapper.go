// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses. Otherwise it returns the
// sentinel for the status wrapped with the envelope message, and the
// envelope "error" member when present.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	detail := failureDetail(resp)

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
}

func failureDetail(resp *resty.Response) string {
	var env envelope[json.RawMessage]
	if err := json.Unmarshal(resp.Body(), &env); err != nil || env.Message == "" {
		if body := strings.TrimSpace(string(resp.Body())); body != "" {
			return body
		}
		return http.StatusText(resp.StatusCode())
	}

	if len(env.Error) == 0 || string(env.Error) == "null" {
		return env.Message
	}
	return env.Message + " " + string(env.Error)
}
