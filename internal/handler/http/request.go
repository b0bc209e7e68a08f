// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
)

// maxBodySize caps request bodies accepted by the JSON handlers.
const maxBodySize = 1 << 20

// decodeFields reads the request body as a JSON object.
func decodeFields(w http.ResponseWriter, r *http.Request) (validators.Fields, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", validators.ErrInvalidJSON, err)
	}
	return validators.DecodeFields(body)
}

// queryInt returns the integer query parameter key, or 0 when it is absent
// or not a number.
func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}
