package console_test

import (
	"testing"

	"agenthub/internal/console"

	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		cmd  string
		args map[string]string
		ok   bool
	}{
		{name: "blank", line: "   ", ok: false},
		{name: "bare command", line: "masumi_status", cmd: "masumi_status", args: map[string]string{}, ok: true},
		{
			name: "quoted value",
			line: `draft_cip topic="light wallet sync"`,
			cmd:  "draft_cip",
			args: map[string]string{"topic": "light wallet sync"},
			ok:   true,
		},
		{
			name: "mixed",
			line: `  get_txs address="addr_test1abc"   limit=3 `,
			cmd:  "get_txs",
			args: map[string]string{"address": "addr_test1abc", "limit": "3"},
			ok:   true,
		},
		{
			name: "stray tokens ignored",
			line: `send_ada please to=addr_test1xyz amount=1.5 now`,
			cmd:  "send_ada",
			args: map[string]string{"to": "addr_test1xyz", "amount": "1.5"},
			ok:   true,
		},
		{
			name: "later value wins",
			line: `get_balance address=a address=b`,
			cmd:  "get_balance",
			args: map[string]string{"address": "b"},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, ok := console.ParseLine(tt.line)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.cmd, cmd)
			require.Equal(t, tt.args, args)
		})
	}
}
