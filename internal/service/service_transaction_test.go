// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/mock"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testIdentity = models.Identity{ID: testUserID, Name: "alice"}

func testWallet() models.Wallet {
	return models.Wallet{UUID: testWalletID, Owner: testUserID, Name: models.DefaultWalletName}
}

func newTestTransactionSvc(t *testing.T, ctrl *gomock.Controller) (TransactionService, *mock.MockWalletRepository, *mock.MockTransactionRepository) {
	t.Helper()
	wallets := mock.NewMockWalletRepository(ctrl)
	transactions := mock.NewMockTransactionRepository(ctrl)
	ids := &sequenceIDs{ids: []string{testTxID}}

	return NewTransactionService(wallets, transactions, ids, logger.Nop()), wallets, transactions
}

func expectWallet(wallets *mock.MockWalletRepository) {
	wallets.EXPECT().FindWalletByOwner(gomock.Any(), testUserID).Return(testWallet(), nil)
}

// ── wallet resolution ────────────────────────────────────────────────────────

func TestTransactionService_NoIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestTransactionSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Identity{}, validators.Fields{})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, _, err = svc.List(ctx, models.Identity{}, models.PageRequest{})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Get(ctx, models.Identity{}, testTxID)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Update(ctx, models.Identity{}, testTxID, validators.Fields{})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.ErrorIs(t, svc.Delete(ctx, models.Identity{}, testTxID), ErrUnauthenticated)
}

func TestTransactionService_WalletNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, _ := newTestTransactionSvc(t, ctrl)
	wallets.EXPECT().FindWalletByOwner(gomock.Any(), testUserID).Return(models.Wallet{}, store.ErrWalletNotFound).Times(5)
	ctx := context.Background()

	_, err := svc.Create(ctx, testIdentity, validators.Fields{})
	assert.ErrorIs(t, err, store.ErrWalletNotFound)

	_, _, err = svc.List(ctx, testIdentity, models.PageRequest{})
	assert.ErrorIs(t, err, store.ErrWalletNotFound)

	_, err = svc.Get(ctx, testIdentity, testTxID)
	assert.ErrorIs(t, err, store.ErrWalletNotFound)

	_, err = svc.Update(ctx, testIdentity, testTxID, validators.Fields{})
	assert.ErrorIs(t, err, store.ErrWalletNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, testIdentity, testTxID), store.ErrWalletNotFound)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestTransactionService_Create_ForcesCallerWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, transactions := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)

	var stored models.Transaction
	transactions.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx models.Transaction) error {
			stored = tx
			return nil
		},
	)

	fields := validators.Fields{}.
		With("wallet", "0192a7c4-0000-7000-8000-0000000000ff").
		With("name", "coffee").
		With("amount", 3.5).
		With("type", -1)

	tx, err := svc.Create(context.Background(), testIdentity, fields)
	require.NoError(t, err)

	assert.Equal(t, testWalletID, tx.Wallet, "client-supplied wallet must be overridden")
	assert.Equal(t, testTxID, tx.UUID)
	assert.Equal(t, models.Debit, tx.Type)
	assert.True(t, decimal.RequireFromString("3.5").Equal(tx.Amount))
	assert.Equal(t, tx, stored)
}

func TestTransactionService_Create_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, _ := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)

	fields := validators.Fields{}.
		With("name", "refund").
		With("amount", -10).
		With("type", 2)

	_, err := svc.Create(context.Background(), testIdentity, fields)

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestTransactionService_Create_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, transactions := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)
	transactions.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(store.ErrTransactionConflict)

	fields := validators.Fields{}.With("name", "coffee").With("amount", 1).With("type", 1)

	_, err := svc.Create(context.Background(), testIdentity, fields)
	assert.ErrorIs(t, err, store.ErrTransactionConflict)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name string
		in   models.PageRequest
		want models.PageRequest
	}{
		{name: "zero values", in: models.PageRequest{}, want: models.PageRequest{Page: 1, Limit: 10}},
		{name: "negative", in: models.PageRequest{Page: -3, Limit: -1}, want: models.PageRequest{Page: 1, Limit: 10}},
		{name: "valid", in: models.PageRequest{Page: 4, Limit: 25}, want: models.PageRequest{Page: 4, Limit: 25}},
		{name: "limit capped", in: models.PageRequest{Page: 2, Limit: 1000}, want: models.PageRequest{Page: 2, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePage(tt.in))
		})
	}
}

func TestTransactionService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, transactions := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)

	page := []models.Transaction{{UUID: testTxID, Wallet: testWalletID}}
	transactions.EXPECT().CountTransactions(gomock.Any(), testWalletID).Return(int64(23), nil)
	transactions.EXPECT().ListTransactions(gomock.Any(), testWalletID, 10, 10).Return(page, nil)

	list, meta, err := svc.List(context.Background(), testIdentity, models.PageRequest{Page: 2, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, page, list)
	assert.Equal(t, models.PageMeta{Page: 2, Limit: 10, Total: 23, TotalPages: 3}, meta)
}

func TestTransactionService_List_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, transactions := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)

	transactions.EXPECT().CountTransactions(gomock.Any(), testWalletID).Return(int64(0), nil)
	transactions.EXPECT().ListTransactions(gomock.Any(), testWalletID, 0, DefaultLimit).Return([]models.Transaction{}, nil)

	list, meta, err := svc.List(context.Background(), testIdentity, models.PageRequest{})
	require.NoError(t, err)

	assert.Empty(t, list)
	assert.Equal(t, models.PageMeta{Page: 1, Limit: 10, Total: 0, TotalPages: 0}, meta)
}

func TestTransactionService_List_PastLastPage(t *testing.T) {
	tests := []struct {
		name string
		page int
	}{
		{name: "next after last", page: 4},
		{name: "max int", page: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, wallets, transactions := newTestTransactionSvc(t, ctrl)
			expectWallet(wallets)
			transactions.EXPECT().CountTransactions(gomock.Any(), testWalletID).Return(int64(23), nil)

			list, meta, err := svc.List(context.Background(), testIdentity, models.PageRequest{Page: tt.page, Limit: MaxLimit})
			require.NoError(t, err)

			assert.NotNil(t, list)
			assert.Empty(t, list)
			assert.Equal(t, models.PageMeta{Page: tt.page, Limit: MaxLimit, Total: 23, TotalPages: 1}, meta)
		})
	}
}

func TestTransactionService_List_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, transactions := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)
	transactions.EXPECT().CountTransactions(gomock.Any(), testWalletID).Return(int64(0), errors.New("db down"))

	_, _, err := svc.List(context.Background(), testIdentity, models.PageRequest{})
	require.Error(t, err)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestTransactionService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, transactions := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)

	want := models.Transaction{UUID: testTxID, Wallet: testWalletID, Name: "coffee"}
	transactions.EXPECT().FindTransaction(gomock.Any(), testTxID, testWalletID).Return(want, nil)

	got, err := svc.Get(context.Background(), testIdentity, testTxID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTransactionService_Get_NotAUUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, _ := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)

	_, err := svc.Get(context.Background(), testIdentity, "42")
	assert.ErrorIs(t, err, store.ErrTransactionNotFound)
}

func TestTransactionService_Get_OtherWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, transactions := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)
	transactions.EXPECT().FindTransaction(gomock.Any(), testTxID, testWalletID).Return(models.Transaction{}, store.ErrTransactionNotFound)

	_, err := svc.Get(context.Background(), testIdentity, testTxID)
	assert.ErrorIs(t, err, store.ErrTransactionNotFound)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestTransactionService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, transactions := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)

	gomock.InOrder(
		transactions.EXPECT().FindTransaction(gomock.Any(), testTxID, testWalletID).Return(models.Transaction{UUID: testTxID}, nil),
		transactions.EXPECT().UpdateTransaction(gomock.Any(), testTxID, testWalletID, gomock.Any()).Return(nil),
	)

	update, err := svc.Update(context.Background(), testIdentity, testTxID, validators.Fields{}.With("name", "tea").With("type", 1))
	require.NoError(t, err)

	require.NotNil(t, update.Name)
	assert.Equal(t, "tea", *update.Name)
	require.NotNil(t, update.Type)
	assert.Equal(t, models.Credit, *update.Type)
	assert.Nil(t, update.Amount)
	assert.WithinDuration(t, time.Now(), update.UpdatedAt, time.Minute)
}

func TestTransactionService_Update_EmptyBodyTouchesOnlyUpdatedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, transactions := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)

	transactions.EXPECT().FindTransaction(gomock.Any(), testTxID, testWalletID).Return(models.Transaction{UUID: testTxID}, nil)
	transactions.EXPECT().UpdateTransaction(gomock.Any(), testTxID, testWalletID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, u models.TransactionUpdate) error {
			assert.Nil(t, u.Name)
			assert.Nil(t, u.Desc)
			assert.Nil(t, u.Amount)
			assert.Nil(t, u.Type)
			assert.Nil(t, u.Date)
			assert.False(t, u.UpdatedAt.IsZero())
			return nil
		},
	)

	_, err := svc.Update(context.Background(), testIdentity, testTxID, validators.Fields{})
	require.NoError(t, err)
}

func TestTransactionService_Update_OtherWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, transactions := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)

	// the lookup is wallet-scoped, so a foreign transaction is never updated
	transactions.EXPECT().FindTransaction(gomock.Any(), testTxID, testWalletID).Return(models.Transaction{}, store.ErrTransactionNotFound)

	_, err := svc.Update(context.Background(), testIdentity, testTxID, validators.Fields{}.With("name", "tea"))
	assert.ErrorIs(t, err, store.ErrTransactionNotFound)
}

func TestTransactionService_Update_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, transactions := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)
	transactions.EXPECT().FindTransaction(gomock.Any(), testTxID, testWalletID).Return(models.Transaction{UUID: testTxID}, nil)

	_, err := svc.Update(context.Background(), testIdentity, testTxID, validators.Fields{}.With("amount", -1))

	var verrs validators.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestTransactionService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, transactions := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)
	transactions.EXPECT().DeleteTransaction(gomock.Any(), testTxID, testWalletID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), testIdentity, testTxID))
}

func TestTransactionService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, wallets, transactions := newTestTransactionSvc(t, ctrl)
	expectWallet(wallets)
	transactions.EXPECT().DeleteTransaction(gomock.Any(), testTxID, testWalletID).Return(store.ErrTransactionNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), testIdentity, testTxID), store.ErrTransactionNotFound)
}
