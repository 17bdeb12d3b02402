package mocks

import (
	"context"

	"github.com/shipflow/ordergateway/internal/service"
	"github.com/stretchr/testify/mock"
)

type LabelService struct {
	mock.Mock
}

func (m *LabelService) GenerateLabel(ctx context.Context, referenceNo string) (service.LabelView, error) {
	args := m.Called(ctx, referenceNo)
	return args.Get(0).(service.LabelView), args.Error(1)
}

func (m *LabelService) ListLabels(ctx context.Context, query service.ListLabelsQuery) (service.ListLabelsResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(service.ListLabelsResponse), args.Error(1)
}
