package cardano_test

import (
	"math"
	"testing"

	"agenthub/pkg/cardano"
	"agenthub/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestRequirePreprod(t *testing.T) {
	require.NoError(t, cardano.RequirePreprod("Preprod"))

	for _, n := range []string{"", "preprod", "Mainnet", "Preview"} {
		err := cardano.RequirePreprod(n)
		require.ErrorIs(t, err, serrors.ErrBadRequest, n)
		require.Contains(t, err.Error(), "CARDANO_NETWORK must be Preprod")
	}
}

func TestToLovelace(t *testing.T) {
	tests := []struct {
		ada  float64
		want int64
	}{
		{1, 1_000_000},
		{1.5, 1_500_000},
		{0.000001, 1},
		{2.0000004, 2_000_000},
		{2.0000006, 2_000_001},
	}
	for _, tt := range tests {
		got, err := cardano.ToLovelace(tt.ada)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, tt.ada)
	}

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1), 1e20} {
		_, err := cardano.ToLovelace(bad)
		require.ErrorIs(t, err, serrors.ErrBadRequest, bad)
	}

	// rounds to exactly 2^63 lovelace
	_, err := cardano.ToLovelace(float64(math.MaxInt64) / cardano.LovelacePerADA)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.EqualError(t, err, "amount is too large")
}

func TestParseADA(t *testing.T) {
	got, err := cardano.ParseADA("12.5")
	require.NoError(t, err)
	require.Equal(t, int64(12_500_000), got)

	_, err = cardano.ParseADA("ten")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestFormatADA(t *testing.T) {
	require.Equal(t, "12.500000", cardano.FormatADA(12_500_000))
	require.Equal(t, "0.000001", cardano.FormatADA(1))
	require.Equal(t, "-1.000000", cardano.FormatADA(-1_000_000))
}

func TestIsTestnetAddress(t *testing.T) {
	require.True(t, cardano.IsTestnetAddress(
		"addr_test1qz2fxv2umyhttkxyxp8x0dlpdt3k6cwng5pxj3jhsydzer3jcu5d8ps7zex2k2xt3uqxgjqnnj0vs2f"))
	require.False(t, cardano.IsTestnetAddress("addr1qz2fxv2umyhttkxyxp8x0dlpdt3k6cwng5pxj3jhsydzer3"))
	require.False(t, cardano.IsTestnetAddress("addr_test1short"))
	require.False(t, cardano.IsTestnetAddress("addr_test1"+"bbbbbbbbbbbbbbbbbbbbbbbb"))
}
