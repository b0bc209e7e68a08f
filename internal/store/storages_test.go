package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPingableStorages(t *testing.T) (*Storages, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	return newStoragesFromDB(newDB(conn, logger.Nop()), logger.Nop()), mock
}

func TestStorages_Wiring(t *testing.T) {
	s, _ := newPingableStorages(t)

	assert.NotNil(t, s.UserRepository)
	assert.NotNil(t, s.WalletRepository)
	assert.NotNil(t, s.TransactionRepository)
}

func TestStorages_PingContext(t *testing.T) {
	s, mock := newPingableStorages(t)
	mock.ExpectPing()

	require.NoError(t, s.PingContext(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorages_PingContextFails(t *testing.T) {
	s, mock := newPingableStorages(t)
	mock.ExpectPing().WillReturnError(errors.New("db down"))

	err := s.PingContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestStorages_Close(t *testing.T) {
	s, mock := newPingableStorages(t)
	mock.ExpectClose()

	require.NoError(t, s.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
