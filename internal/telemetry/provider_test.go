package telemetry

import (
	"context"
	"testing"

	"github.com/rpgo/fire-planner/internal/calculation"
	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetupDisabled(t *testing.T) {
	tests := []Config{
		{Enabled: false, Endpoint: "http://localhost:4318"},
		{Enabled: true, Endpoint: ""},
	}
	for _, cfg := range tests {
		shutdown, err := Setup(context.Background(), "fireplan", cfg)
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	}
}

func TestSetupEnabled(t *testing.T) {
	// The exporter connects lazily, so no collector is needed to set up.
	shutdown, err := Setup(context.Background(), "fireplan", Config{Enabled: true, Endpoint: "http://127.0.0.1:4318"})
	require.NoError(t, err)
	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}

func TestRunPlanEmitsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	pa := domain.PlanAssumptions{
		CurrentAge:      30,
		RetirementAge:   40,
		MortalityAge:    50,
		MonthlyExpenses: decimal.NewFromInt(10000),
		ExpectedReturn:  decimal.RequireFromString("0.10"),
		PortfolioReturn: decimal.RequireFromString("0.06"),
		InflationRate:   decimal.RequireFromString("0.05"),
	}
	_, err := calculation.NewPlanEngine().RunPlan(context.Background(), "traced", pa)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "PlanEngine.RunPlan", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("plan.name", "traced"))
}
