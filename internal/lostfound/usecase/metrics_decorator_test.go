package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/campus/internal/lostfound/domain"
	"github.com/allisson/campus/internal/lostfound/usecase"
	usecaseMocks "github.com/allisson/campus/internal/lostfound/usecase/mocks"
	metricsMocks "github.com/allisson/campus/internal/metrics/mocks"
)

func TestLostItemUseCaseWithMetrics_Report(t *testing.T) {
	ctx := context.Background()
	next := &usecaseMocks.MockUseCase{}
	m := &metricsMocks.MockBusinessMetrics{}
	uc := usecase.NewLostItemUseCaseWithMetrics(next, m)
	input := &domain.ReportInput{Item: "Keys", Location: "Gym"}

	next.On("Report", ctx, input).Return(nil, domain.ErrReporterEmailRequired).Once()
	m.ExpectOperation(ctx, "lostfound", "lost_item_report", "rejected")

	_, err := uc.Report(ctx, input)
	assert.ErrorIs(t, err, domain.ErrReporterEmailRequired)
	m.AssertExpectations(t)
}
