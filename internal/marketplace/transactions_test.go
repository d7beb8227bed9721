package marketplace_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"agenthub/internal/marketplace"
	"agenthub/pkg/domain"
	"agenthub/pkg/serrors"
	"agenthub/pkg/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pendingPayment() *domain.Transaction {
	return &domain.Transaction{
		ID:         domain.NewTransactionID(),
		TxHash:     "deadbeef",
		FromWallet: buyerWallet,
		ToWallet:   creatorWallet,
		Amount:     5_000_000,
		Status:     domain.TransactionStatusPending,
	}
}

func TestTransaction_Visibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	payment := pendingPayment()
	env.storage.EXPECT().TransactionByID(gomock.Any(), payment.ID).Return(payment, nil).Times(4)

	for _, caller := range []marketplace.Caller{
		{Wallet: buyerWallet},
		{Wallet: creatorWallet},
		{Wallet: "someone", Admin: true},
	} {
		got, err := env.service.Transaction(ctx, caller, payment.ID)
		require.NoError(t, err)
		require.Equal(t, payment.TxHash, got.TxHash)
	}

	_, err := env.service.Transaction(ctx, marketplace.Caller{Wallet: "someone"}, payment.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestTransactions_ScopedToCaller(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.service.Transactions(ctx, marketplace.Caller{}, storage.TransactionFilter{})
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	env.storage.EXPECT().Transactions(gomock.Any(), storage.TransactionFilter{Wallet: buyerWallet, Limit: 10}).
		Return(nil, nil)
	_, err = env.service.Transactions(ctx, marketplace.Caller{Wallet: buyerWallet},
		storage.TransactionFilter{Wallet: creatorWallet})
	require.NoError(t, err)

	env.storage.EXPECT().Transactions(gomock.Any(), storage.TransactionFilter{Wallet: creatorWallet, Limit: 10}).
		Return(nil, nil)
	_, err = env.service.Transactions(ctx, marketplace.Caller{Wallet: "admin", Admin: true},
		storage.TransactionFilter{Wallet: creatorWallet})
	require.NoError(t, err)

	_, err = env.service.Transactions(ctx, marketplace.Caller{Wallet: buyerWallet},
		storage.TransactionFilter{Status: "bogus"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestVerifyTransaction_Confirms(t *testing.T) {
	env := newTestEnv(t)
	payment := pendingPayment()
	blockTime := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	env.storage.EXPECT().TransactionByID(gomock.Any(), payment.ID).Return(payment, nil)
	env.explorer.EXPECT().Transaction(gomock.Any(), payment.TxHash).
		Return(&domain.ChainTx{Hash: payment.TxHash, BlockHeight: 42, BlockTime: blockTime}, nil)
	env.storage.EXPECT().UpdateTransactionStatus(gomock.Any(), payment.ID,
		domain.TransactionStatusConfirmed, blockTime, int64(42)).
		Return(&domain.Transaction{ID: payment.ID, Status: domain.TransactionStatusConfirmed, BlockHeight: 42}, nil)

	got, err := env.service.VerifyTransaction(context.Background(), marketplace.Caller{Wallet: buyerWallet}, payment.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TransactionStatusConfirmed, got.Status)
}

func TestVerifyTransaction_NotOnChainYet(t *testing.T) {
	env := newTestEnv(t)
	payment := pendingPayment()

	env.storage.EXPECT().TransactionByID(gomock.Any(), payment.ID).Return(payment, nil)
	env.explorer.EXPECT().Transaction(gomock.Any(), payment.TxHash).
		Return(nil, serrors.With(serrors.ErrNotFound, "not found"))

	got, err := env.service.VerifyTransaction(context.Background(), marketplace.Caller{Wallet: buyerWallet}, payment.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TransactionStatusPending, got.Status)
}

func TestVerifyTransaction_ExplorerError(t *testing.T) {
	env := newTestEnv(t)
	payment := pendingPayment()
	boom := errors.New("boom")

	env.storage.EXPECT().TransactionByID(gomock.Any(), payment.ID).Return(payment, nil)
	env.explorer.EXPECT().Transaction(gomock.Any(), payment.TxHash).Return(nil, boom)

	_, err := env.service.VerifyTransaction(context.Background(), marketplace.Caller{Wallet: buyerWallet}, payment.ID)
	require.ErrorIs(t, err, boom)
}

func TestVerifyTransaction_NoExplorer(t *testing.T) {
	env := newTestEnv(t)
	svc, err := marketplace.New(marketplace.Deps{Storage: env.storage}, marketplace.Options{})
	require.NoError(t, err)
	payment := pendingPayment()

	env.storage.EXPECT().TransactionByID(gomock.Any(), payment.ID).Return(payment, nil)

	_, err = svc.VerifyTransaction(context.Background(), marketplace.Caller{Wallet: buyerWallet}, payment.ID)
	require.ErrorIs(t, err, serrors.ErrUnavailable)

	_, err = svc.WalletBalance(context.Background(), buyerWallet)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestEarnings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	agent := availableAgent()

	env.storage.EXPECT().TotalEarnings(gomock.Any(), creatorWallet).Return(int64(7_000_000), nil)
	total, err := env.service.Earnings(ctx, creatorWallet)
	require.NoError(t, err)
	require.Equal(t, int64(7_000_000), total)

	env.storage.EXPECT().AgentByID(gomock.Any(), agent.ID).Return(agent, nil)
	env.storage.EXPECT().AgentEarnings(gomock.Any(), agent.ID).Return(int64(5_000_000), nil)
	total, err = env.service.AgentEarnings(ctx, agent.ID)
	require.NoError(t, err)
	require.Equal(t, int64(5_000_000), total)
}

func TestWalletBalance(t *testing.T) {
	env := newTestEnv(t)

	env.explorer.EXPECT().Address(gomock.Any(), buyerWallet).
		Return(&domain.AddressInfo{Address: buyerWallet, Lovelace: 12}, nil)

	info, err := env.service.WalletBalance(context.Background(), buyerWallet)
	require.NoError(t, err)
	require.Equal(t, int64(12), info.Lovelace)
}
