package mocks

import (
	"context"

	"github.com/shipflow/ordergateway/internal/service"
	"github.com/stretchr/testify/mock"
)

type OrderService struct {
	mock.Mock
}

func (m *OrderService) CreateOrder(ctx context.Context, cmd service.CreateOrderCommand) (service.CreateOrderResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.CreateOrderResponse), args.Error(1)
}

func (m *OrderService) GetOrder(ctx context.Context, referenceNo string) (service.OrderView, error) {
	args := m.Called(ctx, referenceNo)
	return args.Get(0).(service.OrderView), args.Error(1)
}

func (m *OrderService) ResolvePendingTracking(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
