package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey  = "test-sign-key"
	testUserID   = "0192a7c4-8f5e-7b3a-9c1d-2e4f6a8b0c1d"
	testWalletID = "0192a7c4-8f5e-7b3a-9c1d-2e4f6a8b0c2e"
	testTxID     = "0192a7c4-8f5e-7b3a-9c1d-2e4f6a8b0c3f"
)

// sequenceIDs hands out the given ids in order.
type sequenceIDs struct {
	ids []string
}

func (s *sequenceIDs) Generate() string {
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}

func newTestTokenService(t *testing.T) TokenService {
	t.Helper()
	svc, err := NewTokenService(config.App{TokenSignKey: testSignKey, TokenDuration: time.Hour})
	require.NoError(t, err)
	return svc
}
