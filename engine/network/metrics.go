package network

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/1siamBot/stellar-armada/engine/network"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics counts commands and observes open rooms. Instruments come from
// the global provider, which is a no-op until one is installed.
type Metrics struct {
	applied  metric.Int64Counter
	rejected metric.Int64Counter
	rooms    metric.Int64ObservableGauge
}

func NewMetrics(activeRooms func() int) (*Metrics, error) {
	m := meter()
	out := &Metrics{}

	var err error
	out.applied, err = m.Int64Counter(
		"armada.commands.applied",
		metric.WithDescription("Commands accepted from clients"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating applied counter: %w", err)
	}

	out.rejected, err = m.Int64Counter(
		"armada.commands.rejected",
		metric.WithDescription("Commands refused before reaching the engine"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rejected counter: %w", err)
	}

	out.rooms, err = m.Int64ObservableGauge(
		"armada.rooms.active",
		metric.WithDescription("Rooms currently open"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rooms gauge: %w", err)
	}
	_, err = m.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			o.ObserveInt64(out.rooms, int64(activeRooms()))
			return nil
		},
		out.rooms,
	)
	if err != nil {
		return nil, fmt.Errorf("registering rooms callback: %w", err)
	}
	return out, nil
}

func (m *Metrics) Applied(kind string) {
	if m == nil {
		return
	}
	m.applied.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *Metrics) Rejected(kind string) {
	if m == nil {
		return
	}
	m.rejected.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind)))
}
