package mocks

import (
	"context"

	"github.com/shipflow/ordergateway/pkg/eccang"
	"github.com/stretchr/testify/mock"
)

type CarrierGateway struct {
	mock.Mock
}

func (g *CarrierGateway) CreateOrder(ctx context.Context, request eccang.CreateOrderRequest) (eccang.CreateOrderResponse, error) {
	args := g.Called(ctx, request)
	return args.Get(0).(eccang.CreateOrderResponse), args.Error(1)
}

func (g *CarrierGateway) GetTrackNumber(ctx context.Context, request eccang.GetTrackNumberRequest) (eccang.GetTrackNumberResponse, error) {
	args := g.Called(ctx, request)
	return args.Get(0).(eccang.GetTrackNumberResponse), args.Error(1)
}

func (g *CarrierGateway) GetLabelURL(ctx context.Context, request eccang.GetLabelURLRequest) (eccang.GetLabelURLResponse, error) {
	args := g.Called(ctx, request)
	return args.Get(0).(eccang.GetLabelURLResponse), args.Error(1)
}
