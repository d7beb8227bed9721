package marketplace_test

import (
	"context"
	"sync"
	"testing"

	"agenthub/internal/marketplace"
	"agenthub/pkg/domain"
	mockstorage "agenthub/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/mock/gomock"
)

// the global meter provider can only take over earlier instruments once
var installReader = sync.OnceValue(func() *sdkmetric.ManualReader { //nolint: gochecknoglobals
	reader := sdkmetric.NewManualReader()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

	return reader
})

func TestDemo_CountedByProviderInstalledLater(t *testing.T) {
	// the service is built before the provider exists, as in the serve command
	env := newTestEnv(t)
	reader := installReader()
	agent := availableAgent()

	env.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AgentByID(gomock.Any(), agent.ID).Return(agent, nil)
		tx.EXPECT().StoreJob(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job domain.AgentJob) (*domain.AgentJob, error) {
				return &job, nil
			})
	})

	_, err := env.service.Demo(context.Background(), agent.ID, marketplace.DemoRequest{})
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var count int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "agenthub.marketplace.demos" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value(attribute.Key("agent_id")); ok && v.AsString() == agent.ID.String() {
					count += dp.Value
				}
			}
		}
	}
	require.Equal(t, int64(1), count)
}
