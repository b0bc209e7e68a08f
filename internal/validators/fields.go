// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/shopspring/decimal"
)

// Field names shared by the schemas.
const (
	FieldUUID      = "uuid"
	FieldName      = "name"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPassword  = "password"
	FieldOwner     = "owner"
	FieldWallet    = "wallet"
	FieldDesc      = "desc"
	FieldAmount    = "amount"
	FieldType      = "type"
	FieldDate      = "date"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

const minPasswordLength = 6

// Numeric dates are Unix milliseconds. Values outside this range cannot be
// stored as TIMESTAMPTZ.
var (
	minDateMillis = decimal.NewFromInt(-210_866_803_200_000) // 4714-11-24 BC
	maxDateMillis = decimal.NewFromInt(8_640_000_000_000_000)
)

// dateLayouts are tried in order for string dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// Fields is a decoded JSON object whose values have not been interpreted yet.
type Fields map[string]json.RawMessage

// DecodeFields decodes a JSON object body into Fields.
// Anything other than an object (array, string, null) yields ErrNotAnObject.
func DecodeFields(body []byte) (Fields, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		if json.Valid(trimmed) {
			return nil, ErrNotAnObject
		}
		return nil, ErrInvalidJSON
	}

	var fields Fields
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return fields, nil
}

// With returns a copy of f where key holds the JSON encoding of value.
// It panics if value cannot be encoded as JSON.
func (f Fields) With(key string, value any) Fields {
	raw, err := json.Marshal(value)
	if err != nil {
		panic(fmt.Sprintf("validators: encoding field %q: %v", key, err))
	}

	out := make(Fields, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	out[key] = raw
	return out
}

// lookup returns the raw value for key. A JSON null counts as absent.
func (f Fields) lookup(key string) (json.RawMessage, bool) {
	raw, ok := f[key]
	if !ok {
		return nil, false
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	return raw, true
}

func isJSONNumber(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	c := raw[0]
	return c == '-' || (c >= '0' && c <= '9')
}

// str decodes a string field. ok is false when the field is absent or a
// problem has been recorded.
func (f Fields) str(errs *ValidationErrors, key string, required bool, emptyMessage string) (string, bool) {
	raw, present := f.lookup(key)
	if !present {
		if required {
			errs.add(key, emptyMessage)
		}
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		errs.add(key, MsgExpectedString)
		return "", false
	}
	if required && s == "" {
		errs.add(key, emptyMessage)
		return "", false
	}
	return s, true
}

// optionalStr decodes an optional string field into a pointer.
func (f Fields) optionalStr(errs *ValidationErrors, key string) *string {
	s, ok := f.str(errs, key, false, "")
	if !ok {
		return nil
	}
	return &s
}

// uuid decodes a UUID field. When absent and not required, a fresh id from
// gen is returned.
func (f Fields) uuid(errs *ValidationErrors, key string, required bool, gen IDGenerator) string {
	raw, present := f.lookup(key)
	if !present {
		if required {
			errs.add(key, MsgRequired)
			return ""
		}
		return gen.Generate()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		errs.add(key, MsgExpectedString)
		return ""
	}
	if !utils.IsUUID(s) {
		errs.add(key, MsgInvalidUUID)
		return ""
	}
	return s
}

// date decodes a coerced date. Strings are tried against dateLayouts and
// numbers are read as Unix milliseconds.
func (f Fields) date(errs *ValidationErrors, key string) (time.Time, bool) {
	raw, present := f.lookup(key)
	if !present {
		return time.Time{}, false
	}

	if isJSONNumber(raw) {
		ms, err := decimal.NewFromString(string(bytes.TrimSpace(raw)))
		if err != nil || ms.LessThan(minDateMillis) || ms.GreaterThan(maxDateMillis) {
			errs.add(key, MsgInvalidDate)
			return time.Time{}, false
		}
		return time.UnixMilli(ms.IntPart()).UTC(), true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		errs.add(key, MsgInvalidDate)
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	errs.add(key, MsgInvalidDate)
	return time.Time{}, false
}

// dateOr returns the coerced date under key or def when absent.
func (f Fields) dateOr(errs *ValidationErrors, key string, def time.Time) time.Time {
	if t, ok := f.date(errs, key); ok {
		return t
	}
	return def
}

// optionalDate returns the coerced date under key as a pointer, nil when absent.
func (f Fields) optionalDate(errs *ValidationErrors, key string) *time.Time {
	t, ok := f.date(errs, key)
	if !ok {
		return nil
	}
	return &t
}

// number decodes a JSON number field as a decimal.
func (f Fields) number(errs *ValidationErrors, key string, required bool) (decimal.Decimal, bool) {
	raw, present := f.lookup(key)
	if !present {
		if required {
			errs.add(key, MsgRequired)
		}
		return decimal.Decimal{}, false
	}
	if !isJSONNumber(raw) {
		errs.add(key, MsgExpectedNumber)
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(string(bytes.TrimSpace(raw)))
	if err != nil {
		errs.add(key, MsgExpectedNumber)
		return decimal.Decimal{}, false
	}
	return d, true
}

// amount decodes a non-negative amount.
func (f Fields) amount(errs *ValidationErrors, required bool) (decimal.Decimal, bool) {
	d, ok := f.number(errs, FieldAmount, required)
	if !ok {
		return decimal.Decimal{}, false
	}
	if d.IsNegative() {
		errs.add(FieldAmount, MsgAmountNegative)
		return decimal.Decimal{}, false
	}
	return d, true
}

// transactionType decodes a type that must be exactly -1 or 1.
func (f Fields) transactionType(errs *ValidationErrors, required bool) (int8, bool) {
	d, ok := f.number(errs, FieldType, required)
	if !ok {
		return 0, false
	}

	switch {
	case d.Equal(decimal.NewFromInt(-1)):
		return -1, true
	case d.Equal(decimal.NewFromInt(1)):
		return 1, true
	default:
		errs.add(FieldType, MsgInvalidType)
		return 0, false
	}
}
