package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/campus/internal/errors"
)

// assertBizMetricLine matches a sample by name, a partial label pattern and value.
// The exporter adds otel_scope labels, so labels are matched loosely.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: StatusSuccess},
		{err: apperrors.WithMessage(apperrors.ErrConflict, "event is full"), want: StatusRejected},
		{err: apperrors.ErrForbidden, want: StatusRejected},
		{err: apperrors.Wrap(apperrors.ErrNotFound, "club"), want: StatusRejected},
		{err: errors.New("connection refused"), want: StatusError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.err), "%v", tt.err)
	}
}

func TestBusinessMetrics_Observe(t *testing.T) {
	provider, err := NewProvider("campus_biz")
	require.NoError(t, err)
	defer func() { assert.NoError(t, provider.Shutdown(context.Background())) }()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "campus_biz")
	require.NoError(t, err)

	ctx := context.Background()
	start := time.Now().Add(-20 * time.Millisecond)

	Observe(ctx, bm, "session", "login", start, nil)
	Observe(ctx, bm, "session", "login", start, nil)
	Observe(ctx, bm, "session", "login", start, apperrors.ErrUnauthorized)
	Observe(ctx, bm, "events", "event_register", start, apperrors.WithMessage(apperrors.ErrConflict, "event is full"))
	Observe(ctx, bm, "request", "approve", start, errors.New("deadlock"))

	output := scrape(t, provider)

	assertBizMetricLine(t, output, `campus_biz_operations_total`,
		`domain="session".*operation="login".*status="success"`, `2`)
	assertBizMetricLine(t, output, `campus_biz_operations_total`,
		`domain="session".*operation="login".*status="rejected"`, `1`)
	assertBizMetricLine(t, output, `campus_biz_operations_total`,
		`domain="events".*operation="event_register".*status="rejected"`, `1`)
	assertBizMetricLine(t, output, `campus_biz_operations_total`,
		`domain="request".*operation="approve".*status="error"`, `1`)
	assertBizMetricLine(t, output, `campus_biz_operation_duration_seconds_count`,
		`domain="session".*operation="login".*status="success"`, `2`)
	assertBizMetricLine(t, output, `campus_biz_operation_duration_seconds_bucket`,
		`domain="session".*operation="login".*status="success".*le="0.05"`, `2`)
}

func TestBusinessMetrics_RecordDirect(t *testing.T) {
	provider, err := NewProvider("campus_direct")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "campus_direct")
	require.NoError(t, err)

	bm.RecordOperation(context.Background(), "clubs", "club_join", StatusSuccess)
	bm.RecordDuration(context.Background(), "clubs", "club_join", 300*time.Millisecond, StatusSuccess)

	output := scrape(t, provider)
	assertBizMetricLine(t, output, `campus_direct_operations_total`, `domain="clubs".*operation="club_join"`, `1`)
	assertBizMetricLine(t, output, `campus_direct_operation_duration_seconds_sum`, `domain="clubs"`, `0.3`)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	noOp := NewNoOpBusinessMetrics()
	assert.IsType(t, &NoOpBusinessMetrics{}, noOp)

	assert.NotPanics(t, func() {
		Observe(context.Background(), noOp, "feedback", "feedback_submit", time.Now(), errors.New("x"))
	})
}
