package mocks

import (
	"context"

	"github.com/shipflow/ordergateway/internal/model"
	"github.com/stretchr/testify/mock"
)

type LabelRepository struct {
	mock.Mock
}

func (m *LabelRepository) Create(ctx context.Context, label *model.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *LabelRepository) GetLatestByOrderID(ctx context.Context, orderID string) (*model.Label, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Label), args.Error(1)
}

func (m *LabelRepository) List(ctx context.Context, query string, limit, offset int) ([]model.Label, error) {
	args := m.Called(ctx, query, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Label), args.Error(1)
}

func (m *LabelRepository) Count(ctx context.Context, query string) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}
