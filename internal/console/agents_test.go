package console_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"agenthub/internal/console"
	"agenthub/pkg/domain"
	"agenthub/pkg/payment"
	"agenthub/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunAgent_recordsMemory(t *testing.T) {
	env := newTestEnv(t)
	long := strings.Repeat("é", 2500)
	env.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), "Topic: Draft CIP for light wallet UX").Return(long, nil)

	var stored domain.MemoryItem
	env.memory.EXPECT().StoreMemory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item domain.MemoryItem) error {
			stored = item

			return nil
		})

	// names match case-insensitively
	res, err := env.console.RunAgent(context.Background(), "cipresearcher", console.Task{Goal: "Draft CIP for light wallet UX"})
	require.NoError(t, err)
	require.Equal(t, long, res)

	require.Equal(t, "CIPResearcher", stored.Agent)
	require.Equal(t, "Draft CIP for light wallet UX", stored.Goal)
	require.Equal(t, 2000, utf8.RuneCountInString(stored.Result))
	require.Equal(t, []string{"cip"}, stored.Tags)
	require.False(t, stored.Timestamp.IsZero())
}

func TestRunAgent_balanceChecker(t *testing.T) {
	env := newTestEnv(t)
	env.explorer.EXPECT().Address(gomock.Any(), walletAddr).Return(&domain.AddressInfo{Lovelace: 3_000_000}, nil)
	env.memory.EXPECT().StoreMemory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item domain.MemoryItem) error {
			require.Equal(t, []string{"balance"}, item.Tags)

			return nil
		})

	res, err := env.console.RunAgent(context.Background(), "BalanceChecker",
		console.Task{Goal: "check balance", Context: "wallet " + walletAddr})
	require.NoError(t, err)
	require.Equal(t, "3 ADA ( 3000000 lovelace )", res)
}

func TestRunAgent_balanceCheckerWithoutAddress(t *testing.T) {
	env := newTestEnv(t)
	env.memory.EXPECT().StoreMemory(gomock.Any(), gomock.Any()).Return(nil)

	res, err := env.console.RunAgent(context.Background(), "BalanceChecker", console.Task{Goal: "what is my balance"})
	require.NoError(t, err)
	require.Equal(t, "No testnet address found in goal/context.", res)
}

func TestRunAgent_txSender(t *testing.T) {
	env := newTestEnv(t)
	env.payment.EXPECT().Wallet(gomock.Any()).Return(walletAddr, nil)
	env.explorer.EXPECT().Address(gomock.Any(), walletAddr).Return(&domain.AddressInfo{Lovelace: 50_000_000}, nil)
	env.payment.EXPECT().Transfer(gomock.Any(), recipientAddr, int64(2_000_000)).
		Return(&payment.Transfer{From: walletAddr, To: recipientAddr, Lovelace: 2_000_000, TxHash: "cafe"}, nil)
	env.memory.EXPECT().StoreMemory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item domain.MemoryItem) error {
			require.Equal(t, []string{"transaction"}, item.Tags)

			return nil
		})

	res, err := env.console.RunAgent(context.Background(), "TxSender",
		console.Task{Goal: "send amount = 2 to " + recipientAddr})
	require.NoError(t, err)
	require.JSONEq(t, `{"from":"`+walletAddr+`","to":"`+recipientAddr+`","amount_ada":2,"tx_hash":"cafe"}`, res)
}

func TestRunAgent_txSenderNeedsAmount(t *testing.T) {
	env := newTestEnv(t)
	env.memory.EXPECT().StoreMemory(gomock.Any(), gomock.Any()).Return(nil)

	res, err := env.console.RunAgent(context.Background(), "txsender", console.Task{Goal: "pay " + recipientAddr})
	require.NoError(t, err)
	require.Equal(t, "Need addr_test... and amount=number in goal.", res)
}

func TestRunAgent_errorTag(t *testing.T) {
	env := newTestEnv(t)
	env.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("Error handling section", nil)
	env.memory.EXPECT().StoreMemory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item domain.MemoryItem) error {
			require.Equal(t, []string{"cip", "balance", "error"}, item.Tags)

			return nil
		})

	_, err := env.console.RunAgent(context.Background(), "CIPResearcher", console.Task{Goal: "CIP about balance queries"})
	require.NoError(t, err)
}

func TestRunAgent_failureNotRecorded(t *testing.T) {
	env := newTestEnv(t)
	env.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", serrors.With(serrors.ErrRateLimited, "quota exceeded"))

	_, err := env.console.RunAgent(context.Background(), "CIPResearcher", console.Task{Goal: "x"})
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestRunAgent_memoryFailureIgnored(t *testing.T) {
	env := newTestEnv(t)
	env.memory.EXPECT().StoreMemory(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	res, err := env.console.RunAgent(context.Background(), "BalanceChecker", console.Task{Goal: "nothing here"})
	require.NoError(t, err)
	require.NotEmpty(t, res)
}

func TestRunAgent_unknown(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.console.RunAgent(context.Background(), "Oracle", console.Task{Goal: "x"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.EqualError(t, err, "Agent not found: Oracle")
}

func TestExec_runAgentRequiresGoal(t *testing.T) {
	env := newTestEnv(t)

	err := env.console.Exec(context.Background(), `run_agent name="CIPResearcher"`)
	require.Error(t, err)
	require.Contains(t, env.out.String(), "Missing required arg goal.")
}
