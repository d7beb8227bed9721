// Package cardano holds the small amount of chain knowledge shared by the
// marketplace and the console: the network guard, ADA units and address
// shape checks.
package cardano

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"agenthub/pkg/serrors"
)

const (
	// Preprod is the only network the tooling is allowed to touch.
	Preprod = "Preprod"

	// LovelacePerADA is the number of lovelace in one ADA.
	LovelacePerADA = 1_000_000
)

var testnetAddress = regexp.MustCompile(`^addr_test1[02-9ac-hj-np-z]{20,}$`) //nolint: gochecknoglobals

// RequirePreprod fails unless network is exactly Preprod.
func RequirePreprod(network string) error {
	if network != Preprod {
		return serrors.With(serrors.ErrBadRequest, "CARDANO_NETWORK must be Preprod. Current: %s", network)
	}

	return nil
}

// ToLovelace converts a decimal ADA amount, rounding to the nearest lovelace.
func ToLovelace(ada float64) (int64, error) {
	if math.IsNaN(ada) || math.IsInf(ada, 0) || ada <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "Amount must be > 0")
	}
	lovelace := math.Round(ada * LovelacePerADA)
	// float64(math.MaxInt64) is 2^63, which int64 cannot hold
	if lovelace >= math.MaxInt64 {
		return 0, serrors.With(serrors.ErrBadRequest, "amount is too large")
	}

	return int64(lovelace), nil
}

// ParseADA parses a decimal ADA amount such as "1.5".
func ParseADA(s string) (int64, error) {
	ada, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "invalid amount %q", s)
	}

	return ToLovelace(ada)
}

// FormatADA renders lovelace as ADA with six decimals, e.g. "12.500000".
func FormatADA(lovelace int64) string {
	sign := ""
	if lovelace < 0 {
		sign = "-"
		lovelace = -lovelace
	}

	return fmt.Sprintf("%s%d.%06d", sign, lovelace/LovelacePerADA, lovelace%LovelacePerADA)
}

// IsTestnetAddress reports whether addr looks like a bech32 testnet payment address.
func IsTestnetAddress(addr string) bool {
	return testnetAddress.MatchString(addr)
}
