// Package mocks provides mock implementations of metrics interfaces for testing.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockBusinessMetrics is a mock implementation of metrics.BusinessMetrics.
type MockBusinessMetrics struct {
	mock.Mock
}

// RecordOperation mocks the RecordOperation method.
func (m *MockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

// RecordDuration mocks the RecordDuration method.
func (m *MockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// ExpectOperation registers one RecordOperation and one RecordDuration call for
// the given domain, operation and status.
func (m *MockBusinessMetrics) ExpectOperation(ctx any, domain, operation, status string) {
	m.On("RecordOperation", ctx, domain, operation, status).Return().Once()
	m.On("RecordDuration", ctx, domain, operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}
