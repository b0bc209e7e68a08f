package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionType_Valid(t *testing.T) {
	assert.True(t, Debit.Valid())
	assert.True(t, Credit.Valid())
	assert.False(t, TransactionType(0).Valid())
	assert.False(t, TransactionType(2).Valid())
}

func TestTransaction_AmountIsJSONNumber(t *testing.T) {
	out, err := json.Marshal(Transaction{Amount: decimal.RequireFromString("12.50"), Type: Credit})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, 12.5, m["amount"])
	assert.Equal(t, float64(1), m["type"])
	assert.NotContains(t, m, "desc")
	assert.NotContains(t, m, "date")
}

func TestTokenPayload_Identity(t *testing.T) {
	p := TokenPayload{Subject: "u-1", Name: "alice"}
	assert.Equal(t, Identity{ID: "u-1", Name: "alice"}, p.Identity())
}

func TestNewAppBuildInfo(t *testing.T) {
	assert.Equal(t, AppBuildInfo{Version: "1.0.0", Date: "N/A", Commit: "N/A"}, NewAppBuildInfo("1.0.0", "", ""))
}
