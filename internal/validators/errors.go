// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrInvalidJSON = errors.New("invalid JSON")
	ErrNotAnObject = errors.New("request body must be a JSON object")
)

// Messages reported in FieldError.Message.
const (
	MsgRequired          = "Required"
	MsgExpectedString    = "Expected string"
	MsgExpectedNumber    = "Expected number"
	MsgInvalidUUID       = "Invalid UUID"
	MsgInvalidDate       = "Invalid date"
	MsgNameRequired      = "Name is required"
	MsgFirstNameRequired = "First name is required"
	MsgLastNameRequired  = "Last name is required"
	MsgPasswordTooShort  = "Password must be at least 6 characters"
	MsgAmountNegative    = "Amount must be non-negative"
	MsgInvalidType       = "Type must be -1 or 1"
)

// FieldError describes why a single field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the list of field problems found by a Schema.
// It is serialized as-is into the "error" member of the response envelope.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// add appends a field error, keeping only the first problem per field.
func (v *ValidationErrors) add(field, message string) {
	for _, fe := range *v {
		if fe.Field == field {
			return
		}
	}
	*v = append(*v, FieldError{Field: field, Message: message})
}

// err returns v as an error, or nil when v is empty.
func (v ValidationErrors) err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
