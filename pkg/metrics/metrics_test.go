package metrics_test

import (
	"errors"
	"testing"
	"time"

	"agenthub/pkg/metrics"
	"agenthub/pkg/serrors"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	require.Equal(t, "ok", metrics.Outcome(nil))
	require.Equal(t, "not_found", metrics.Outcome(serrors.With(serrors.ErrNotFound, "gone")))
	require.Equal(t, "rate_limited", metrics.Outcome(serrors.KindOnly(serrors.ErrRateLimited)))
	require.Equal(t, "error", metrics.Outcome(errors.New("boom")))
}

func TestObserveOutbound(t *testing.T) {
	before := testutil.CollectAndCount(metrics.OutboundDuration)
	metrics.ObserveOutbound("test", "op", time.Now(), nil)
	require.Equal(t, before+1, testutil.CollectAndCount(metrics.OutboundDuration))
}

func TestObserveHTTP(t *testing.T) {
	before := testutil.CollectAndCount(metrics.HTTPDuration)
	metrics.ObserveHTTP("PURGE", 418, 5*time.Millisecond)
	require.Equal(t, before+1, testutil.CollectAndCount(metrics.HTTPDuration))
}
