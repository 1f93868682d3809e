package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/campus/internal/feedback/domain"
	"github.com/allisson/campus/internal/feedback/usecase"
	usecaseMocks "github.com/allisson/campus/internal/feedback/usecase/mocks"
	metricsMocks "github.com/allisson/campus/internal/metrics/mocks"
)

func TestFeedbackUseCaseWithMetrics_List(t *testing.T) {
	ctx := context.Background()
	next := &usecaseMocks.MockUseCase{}
	m := &metricsMocks.MockBusinessMetrics{}
	uc := usecase.NewFeedbackUseCaseWithMetrics(next, m)

	next.On("List", ctx).Return([]*domain.Feedback{}, nil).Once()
	m.ExpectOperation(ctx, "feedback", "feedback_list", "success")

	_, err := uc.List(ctx)
	assert.NoError(t, err)
	m.AssertExpectations(t)
}
