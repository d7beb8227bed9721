package marketplace

import (
	"context"
	"errors"
	"fmt"

	"agenthub/pkg/domain"
	"agenthub/pkg/logger"
	"agenthub/pkg/serrors"
	"agenthub/pkg/storage"

	"go.uber.org/zap"
)

func (m *marketplace) Transaction(ctx context.Context,
	caller Caller,
	id domain.TransactionID) (*domain.Transaction, error) {
	tx, err := m.storage.TransactionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get transaction: %w", err)
	}
	if tx == nil {
		return nil, serrors.With(serrors.ErrNotFound, "transaction not found")
	}
	if !caller.owns(tx.FromWallet) && !caller.owns(tx.ToWallet) {
		// not revealing whether the id exists
		return nil, serrors.With(serrors.ErrNotFound, "transaction not found")
	}

	return tx, nil
}

// Transactions lists payments. Callers other than administrators are limited
// to payments they sent or received.
func (m *marketplace) Transactions(ctx context.Context,
	caller Caller,
	filter storage.TransactionFilter) ([]domain.Transaction, error) {
	if caller.Anonymous() {
		return nil, serrors.With(serrors.ErrUnauthorized, "authentication required")
	}
	if !caller.Admin {
		filter.Wallet = caller.Wallet
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid transaction status %q", filter.Status)
	}
	limit, offset, err := m.page(int(filter.Limit), int(filter.Offset)) //nolint: gosec
	if err != nil {
		return nil, err
	}
	filter.Limit, filter.Offset = limit, offset

	txs, err := m.storage.Transactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list transactions: %w", err)
	}

	return txs, nil
}

// VerifyTransaction confirms a pending payment once the explorer reports it
// in a block. A transaction the explorer does not know yet stays pending.
func (m *marketplace) VerifyTransaction(ctx context.Context,
	caller Caller,
	id domain.TransactionID) (*domain.Transaction, error) {
	tx, err := m.Transaction(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if tx.Status == domain.TransactionStatusConfirmed {
		return tx, nil
	}
	if m.explorer == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "chain explorer is not configured")
	}

	chainTx, err := m.explorer.Transaction(ctx, tx.TxHash)
	if errors.Is(err, serrors.ErrNotFound) {
		logger.Info(ctx, "transaction not on chain yet", zap.String("txHash", tx.TxHash))

		return tx, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not look up transaction on chain: %w", err)
	}
	if chainTx.BlockHeight <= 0 {
		return tx, nil
	}

	updated, err := m.storage.UpdateTransactionStatus(ctx, id,
		domain.TransactionStatusConfirmed, chainTx.BlockTime, chainTx.BlockHeight)
	if err != nil {
		return nil, fmt.Errorf("could not confirm transaction: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "transaction not found")
	}
	logger.Info(ctx, "transaction confirmed",
		zap.String("txHash", tx.TxHash),
		zap.Int64("blockHeight", chainTx.BlockHeight))

	return updated, nil
}

// Earnings sums the confirmed payments received by wallet.
func (m *marketplace) Earnings(ctx context.Context, wallet string) (int64, error) {
	total, err := m.storage.TotalEarnings(ctx, wallet)
	if err != nil {
		return 0, fmt.Errorf("could not get earnings: %w", err)
	}

	return total, nil
}

func (m *marketplace) AgentEarnings(ctx context.Context, agentID domain.AgentID) (int64, error) {
	if _, err := m.Agent(ctx, agentID); err != nil {
		return 0, err
	}
	total, err := m.storage.AgentEarnings(ctx, agentID)
	if err != nil {
		return 0, fmt.Errorf("could not get agent earnings: %w", err)
	}

	return total, nil
}

func (m *marketplace) WalletBalance(ctx context.Context, address string) (*domain.AddressInfo, error) {
	if m.explorer == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "chain explorer is not configured")
	}
	info, err := m.explorer.Address(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("could not get wallet balance: %w", err)
	}

	return info, nil
}
