// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// UserSchema validates registration bodies.
//
// The returned user still carries the plaintext password; hashing is left to
// the caller.
type UserSchema struct {
	ids IDGenerator
	now func() time.Time
}

func NewUserSchema(ids IDGenerator, now func() time.Time) *UserSchema {
	return &UserSchema{ids: ids, now: now}
}

func (s *UserSchema) Parse(ctx context.Context, fields Fields) (models.User, error) {
	var errs ValidationErrors
	now := s.now()

	user := models.User{
		UUID: fields.uuid(&errs, FieldUUID, false, s.ids),
	}
	user.Name, _ = fields.str(&errs, FieldName, true, MsgNameRequired)
	user.FirstName, _ = fields.str(&errs, FieldFirstName, true, MsgFirstNameRequired)
	user.LastName, _ = fields.str(&errs, FieldLastName, true, MsgLastNameRequired)

	if password, ok := fields.str(&errs, FieldPassword, true, MsgRequired); ok {
		if len([]rune(password)) < minPasswordLength {
			errs.add(FieldPassword, MsgPasswordTooShort)
		}
		user.Password = password
	}

	user.CreatedAt = fields.dateOr(&errs, FieldCreatedAt, now)
	user.UpdatedAt = fields.dateOr(&errs, FieldUpdatedAt, now)

	if err := errs.err(); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CredentialsSchema type-checks login bodies. Absent or empty members are
// passed through; rejecting them is left to the login flow.
type CredentialsSchema struct{}

func NewCredentialsSchema() *CredentialsSchema {
	return &CredentialsSchema{}
}

func (s *CredentialsSchema) Parse(_ context.Context, fields Fields) (models.Credentials, error) {
	var errs ValidationErrors

	var credentials models.Credentials
	credentials.Name, _ = fields.str(&errs, FieldName, false, "")
	credentials.Password, _ = fields.str(&errs, FieldPassword, false, "")

	if err := errs.err(); err != nil {
		return models.Credentials{}, err
	}
	return credentials, nil
}
