package marketplace

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"agenthub/pkg/domain"
	"agenthub/pkg/logger"
	"agenthub/pkg/serrors"
	"agenthub/pkg/storage"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Purchase records the buyer's payment, grants access to the agent and queues
// a full run with the provided input. Everything happens in one transaction,
// including the river job insert, so a failed purchase leaves nothing behind.
func (m *marketplace) Purchase(ctx context.Context,
	caller Caller,
	id domain.AgentID,
	req PurchaseRequest) (*PurchaseResult, error) {
	if caller.Anonymous() {
		return nil, serrors.With(serrors.ErrUnauthorized, "authentication required")
	}
	req.TxHash = strings.TrimSpace(req.TxHash)
	if req.TxHash == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "tx_hash is required")
	}
	ctx = logger.WithFields(ctx, zap.Stringer("agentID", id), zap.String("buyer", caller.Wallet))

	var result PurchaseResult
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		agent, err := tx.AgentByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get agent: %w", err)
		}
		if agent == nil || !agent.Available() {
			return serrors.With(serrors.ErrNotFound, "agent not found or not available")
		}
		if agent.CreatorWallet == caller.Wallet {
			return serrors.With(serrors.ErrBadRequest, "creators cannot purchase their own agent")
		}

		existing, err := tx.TransactionByHash(ctx, req.TxHash)
		if err != nil {
			return fmt.Errorf("could not look up transaction: %w", err)
		}
		if existing != nil {
			return serrors.With(serrors.ErrConflict, "transaction %s was already used", req.TxHash)
		}

		payment, err := tx.StoreTransaction(ctx, domain.Transaction{
			TxHash:     req.TxHash,
			FromWallet: caller.Wallet,
			ToWallet:   agent.CreatorWallet,
			Amount:     agent.Price,
			AgentID:    agent.ID,
			Status:     domain.TransactionStatusPending,
		})
		if errors.Is(err, storage.ErrDuplicate) {
			return serrors.Wrap(serrors.ErrConflict, err, "transaction %s was already used", req.TxHash)
		}
		if err != nil {
			return fmt.Errorf("could not store transaction: %w", err)
		}

		buyer, err := ensureUser(ctx, tx, caller.Wallet)
		if err != nil {
			return err
		}
		if err := tx.AddPurchasedAgent(ctx, buyer.ID, agent.ID); err != nil {
			return fmt.Errorf("could not grant agent access: %w", err)
		}

		job, err := tx.StoreJob(ctx, domain.AgentJob{
			AgentID:    agent.ID,
			UserWallet: caller.Wallet,
			Status:     domain.JobStatusQueued,
			Input:      nonNilMap(req.Input),
		})
		if err != nil {
			return fmt.Errorf("could not store job: %w", err)
		}

		if _, err := tx.AddJob(ctx, AgentRunJobArgs{
			JobID:       job.ID.String(),
			maxAttempts: m.options.JobMaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not enqueue job: %w", err)
		}

		result = PurchaseResult{Transaction: *payment, Job: *job}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not purchase agent: %w", err)
	}

	m.metrics.purchases.Add(ctx, 1, metric.WithAttributes(attribute.String("agent_id", id.String())))
	logger.Info(ctx, "agent purchased",
		zap.Stringer("jobID", result.Job.ID),
		zap.String("txHash", result.Transaction.TxHash))

	return &result, nil
}
