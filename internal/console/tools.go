package console

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"agenthub/pkg/cardano"
	"agenthub/pkg/domain"
	"agenthub/pkg/serrors"
)

const (
	defaultTxLimit = 5
	maxTxLimit     = 100
)

type toolFunc func(ctx context.Context, args map[string]string) (any, error)

type tool struct {
	name     string
	help     string
	required []string
	// markdown marks string results that are rendered as documents
	markdown bool
	fn       toolFunc
}

func (c *Console) registry() []tool {
	return []tool{
		{
			name:     "draft_cip",
			help:     `draft_cip topic="..." -> Generate a CIP draft scaffold for topic`,
			required: []string{"topic"},
			markdown: true,
			fn: func(ctx context.Context, args map[string]string) (any, error) {
				return c.DraftCIP(ctx, args["topic"])
			},
		},
		{
			name:     "get_balance",
			help:     `get_balance address="addr_test..." -> Show ADA balance`,
			required: []string{"address"},
			fn: func(ctx context.Context, args map[string]string) (any, error) {
				return c.Balance(ctx, args["address"])
			},
		},
		{
			name:     "get_utxos",
			help:     `get_utxos address="addr_test..." -> List UTXOs summary`,
			required: []string{"address"},
			fn: func(ctx context.Context, args map[string]string) (any, error) {
				return c.UTXOs(ctx, args["address"])
			},
		},
		{
			name:     "get_txs",
			help:     `get_txs address="addr_test..." [limit=5] -> Recent transactions`,
			required: []string{"address"},
			fn: func(ctx context.Context, args map[string]string) (any, error) {
				limit := defaultTxLimit
				if raw, ok := args["limit"]; ok {
					n, err := strconv.Atoi(raw)
					if err != nil || n < 1 || n > maxTxLimit {
						return nil, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", maxTxLimit)
					}
					limit = n
				}

				return c.Transactions(ctx, args["address"], limit)
			},
		},
		{
			name:     "send_ada",
			help:     `send_ada to="addr_test..." amount=1.5 -> Send ADA (testnet only)`,
			required: []string{"to", "amount"},
			fn: func(ctx context.Context, args map[string]string) (any, error) {
				lovelace, err := cardano.ParseADA(args["amount"])
				if err != nil {
					return nil, err
				}

				return c.SendADA(ctx, args["to"], lovelace)
			},
		},
		{
			name: "masumi_status",
			help: "masumi_status -> Show Masumi registry & payment service health",
			fn: func(ctx context.Context, _ map[string]string) (any, error) {
				if c.deps.Payment == nil {
					return nil, errPaymentUnavailable()
				}

				return c.deps.Payment.Status(ctx), nil
			},
		},
		{
			name: "masumi_list",
			help: "masumi_list -> List Masumi agents/services (best-effort)",
			fn: func(ctx context.Context, _ map[string]string) (any, error) {
				if c.deps.Payment == nil {
					return nil, errPaymentUnavailable()
				}

				return c.deps.Payment.Agents(ctx)
			},
		},
		{
			name: "list_agents",
			help: "list_agents -> Show registered AI agents",
			fn: func(context.Context, map[string]string) (any, error) {
				return c.Agents(), nil
			},
		},
		{
			name:     "run_agent",
			help:     `run_agent name="CIPResearcher" goal="Draft CIP for light wallet UX" [context="..."]`,
			required: []string{"name", "goal"},
			fn: func(ctx context.Context, args map[string]string) (any, error) {
				return c.RunAgent(ctx, args["name"], Task{Goal: args["goal"], Context: args["context"]})
			},
		},
		{
			name: "show_memory",
			help: "show_memory -> Display stored agent memory entries",
			fn: func(ctx context.Context, _ map[string]string) (any, error) {
				return c.Memory(ctx)
			},
		},
		{
			name: "clear_memory",
			help: "clear_memory -> Wipe agent memory log",
			fn: func(ctx context.Context, _ map[string]string) (any, error) {
				if c.deps.Memory == nil {
					return nil, errMemoryUnavailable()
				}
				if err := c.deps.Memory.ClearMemories(ctx); err != nil {
					return nil, err
				}

				return "Memory cleared.", nil
			},
		},
	}
}

// SendResult reports a submitted payment.
type SendResult struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	AmountADA float64 `json:"amount_ada"`
	TxHash    string  `json:"tx_hash"`
}

// DraftCIP asks the text generator for a CIP scaffold on topic.
func (c *Console) DraftCIP(ctx context.Context, topic string) (string, error) {
	if c.deps.Generator == nil {
		return "", serrors.With(serrors.ErrUnavailable, "GEMINI_API_KEY is not set")
	}

	text, err := c.deps.Generator.Generate(ctx, cipSystemPrompt(time.Now()), "Topic: "+topic)
	if err != nil {
		return "", fmt.Errorf("CIP drafting failed: %w", err)
	}

	return text, nil
}

// Balance renders the ADA balance of address, e.g. "12.5 ADA ( 12500000 lovelace )".
func (c *Console) Balance(ctx context.Context, address string) (string, error) {
	if c.deps.Explorer == nil {
		return "", errExplorerUnavailable()
	}

	info, err := c.deps.Explorer.Address(ctx, address)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s ADA ( %d lovelace )", adaString(info.Lovelace), info.Lovelace), nil
}

func (c *Console) UTXOs(ctx context.Context, address string) ([]domain.UTXO, error) {
	if c.deps.Explorer == nil {
		return nil, errExplorerUnavailable()
	}

	return c.deps.Explorer.UTXOs(ctx, address)
}

func (c *Console) Transactions(ctx context.Context, address string, limit int) ([]domain.AddressTx, error) {
	if c.deps.Explorer == nil {
		return nil, errExplorerUnavailable()
	}

	return c.deps.Explorer.AddressTransactions(ctx, address, limit)
}

// SendADA transfers lovelace from the payment service wallet to a Preprod
// address after checking the wallet can cover it.
func (c *Console) SendADA(ctx context.Context, to string, lovelace int64) (*SendResult, error) {
	if lovelace <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Amount must be > 0")
	}
	if !cardano.IsTestnetAddress(to) {
		return nil, serrors.With(serrors.ErrBadRequest, "recipient must be a Preprod address (addr_test1...)")
	}
	if c.deps.Payment == nil {
		return nil, errPaymentUnavailable()
	}
	if c.deps.Explorer == nil {
		return nil, errExplorerUnavailable()
	}

	from, err := c.deps.Payment.Wallet(ctx)
	if err != nil {
		return nil, err
	}
	if from == to {
		return nil, serrors.With(serrors.ErrBadRequest, "Refusing to send to same address")
	}

	info, err := c.deps.Explorer.Address(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("could not check wallet balance: %w", err)
	}
	if info.Lovelace < lovelace {
		return nil, serrors.With(serrors.ErrBadRequest, "Insufficient balance")
	}

	transfer, err := c.deps.Payment.Transfer(ctx, to, lovelace)
	if err != nil {
		return nil, err
	}

	return &SendResult{
		From:      transfer.From,
		To:        transfer.To,
		AmountADA: float64(lovelace) / cardano.LovelacePerADA,
		TxHash:    transfer.TxHash,
	}, nil
}

// Memory returns every stored memory item, oldest first.
func (c *Console) Memory(ctx context.Context) ([]domain.MemoryItem, error) {
	if c.deps.Memory == nil {
		return nil, errMemoryUnavailable()
	}

	items, err := c.deps.Memory.Memories(ctx, 0)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.MemoryItem{}
	}

	return items, nil
}

func adaString(lovelace int64) string {
	return strconv.FormatFloat(float64(lovelace)/cardano.LovelacePerADA, 'f', -1, 64)
}

func errExplorerUnavailable() error {
	return serrors.With(serrors.ErrUnavailable, "BLOCKFROST_API_KEY is not set")
}

func errPaymentUnavailable() error {
	return serrors.With(serrors.ErrUnavailable, "payment service is not configured")
}

func errMemoryUnavailable() error {
	return serrors.With(serrors.ErrUnavailable, "agent memory is not available")
}
