// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"math"
)

// Response is the uniform JSON envelope returned by every HTTP endpoint.
//
// Data is written only when HasData is set, which allows an explicit
// "data": null (for example after a delete) while omitting the key on
// error responses.
type Response struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    any       `json:"-"`
	HasData bool      `json:"-"`
	Error   any       `json:"error,omitempty"`
	Meta    *PageMeta `json:"meta,omitempty"`
}

// MarshalJSON implements [json.Marshaler].
func (r Response) MarshalJSON() ([]byte, error) {
	type envelope Response

	out := struct {
		envelope
		Data *any `json:"data,omitempty"`
	}{envelope: envelope(r)}

	if r.HasData {
		out.Data = &r.Data
	}

	return json.Marshal(out)
}

// PageMeta describes the position of a page inside a paginated list.
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPageMeta computes page metadata for total items split into pages of
// limit items. TotalPages is the ceiling of total/limit.
func NewPageMeta(page, limit int, total int64) PageMeta {
	var totalPages int64
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}

	return PageMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// PageRequest is a 1-based page selection.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of items to skip for the requested page,
// saturating at math.MaxInt.
func (p PageRequest) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}
