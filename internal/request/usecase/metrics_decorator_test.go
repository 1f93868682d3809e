package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	metricsMocks "github.com/allisson/campus/internal/metrics/mocks"
	"github.com/allisson/campus/internal/request/domain"
	"github.com/allisson/campus/internal/request/usecase"
	usecaseMocks "github.com/allisson/campus/internal/request/usecase/mocks"
)

func TestRequestUseCaseWithMetrics_Decide(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())

	tests := []struct {
		name      string
		decision  domain.Decision
		operation string
	}{
		{name: "Approve", decision: domain.Approve, operation: "request_approved"},
		{name: "Reject", decision: domain.Reject, operation: "request_rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &usecaseMocks.MockUseCase{}
			m := &metricsMocks.MockBusinessMetrics{}
			uc := usecase.NewRequestUseCaseWithMetrics(next, m)

			next.On("Decide", ctx, id, tt.decision).Return(&domain.Request{ID: id}, nil).Once()
			m.ExpectOperation(ctx, "requests", tt.operation, "success")

			_, err := uc.Decide(ctx, id, tt.decision)
			assert.NoError(t, err)
			m.AssertExpectations(t)
		})
	}
}
