package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shipflow/ordergateway/internal/config"
	"github.com/shipflow/ordergateway/internal/constants"
	"github.com/shipflow/ordergateway/internal/model"
	"github.com/shipflow/ordergateway/internal/repository"
	"github.com/shipflow/ordergateway/pkg/eccang"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type OrderService interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResponse, error)
	GetOrder(ctx context.Context, referenceNo string) (OrderView, error)
	ResolvePendingTracking(ctx context.Context) error
}

type order struct {
	orders           repository.OrderRepository
	labels           repository.LabelRepository
	gateway          eccang.Gateway
	pollAttempts     int
	pollInterval     time.Duration
	resolveBatchSize int
	logger           *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, labels repository.LabelRepository,
	gateway eccang.Gateway, cfg *config.Config, logger *zap.Logger) OrderService {
	return &order{
		orders:           orders,
		labels:           labels,
		gateway:          gateway,
		pollAttempts:     cfg.Tracking.PollAttempts,
		pollInterval:     cfg.Tracking.PollInterval,
		resolveBatchSize: cfg.Tracking.ResolveBatchSize,
		logger:           logger,
	}
}

// CreateOrder submits the order to the carrier, polls for tracking numbers
// while the carrier reports the pending status, and upserts the outcome keyed
// by reference. Polling exhaustion is a soft outcome: the order is persisted
// with its creation-time tracking and resolved by a later call.
func (s *order) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResponse, error) {
	// The reconciliation outcome must be persisted even when the caller
	// abandons the request mid-poll.
	ctx = context.WithoutCancel(ctx)

	request := cmd.Order
	request.ApplyDefaults()

	carrierResp, err := s.gateway.CreateOrder(ctx, request)
	if err != nil {
		s.logger.Error("Carrier order creation failed",
			zap.String("referenceNo", request.ReferenceNo),
			zap.Error(err))
		return CreateOrderResponse{}, NewServiceError(carrierErrorCode(err), err)
	}

	tracking := SummarizeCreateOrder(carrierResp)

	if carrierResp.TrackStatus != nil && *carrierResp.TrackStatus == eccang.TrackStatusPending {
		polled, resolved, err := s.pollTrackingNumbers(ctx, request.ReferenceNo)
		if err != nil {
			return CreateOrderResponse{}, NewServiceError(carrierErrorCode(err), err)
		}
		if resolved {
			tracking = polled
		}
	}

	record := s.buildOrder(request, carrierResp, tracking)
	if err := s.orders.Upsert(ctx, record); err != nil {
		s.logger.Error("Failed to persist order",
			zap.String("referenceNo", request.ReferenceNo),
			zap.Error(err))
		return CreateOrderResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	view, err := s.loadOrderView(ctx, request.ReferenceNo)
	if err != nil {
		return CreateOrderResponse{}, err
	}

	s.logger.Info("Order reconciled",
		zap.String("referenceNo", request.ReferenceNo),
		zap.String("primaryTracking", tracking.Primary),
		zap.Int("trackingNumbers", len(tracking.TrackingNumbers)))

	return CreateOrderResponse{Order: view, Tracking: tracking, Carrier: carrierResp}, nil
}

func (s *order) GetOrder(ctx context.Context, referenceNo string) (OrderView, error) {
	return s.loadOrderView(ctx, referenceNo)
}

// ResolvePendingTracking looks up tracking numbers for orders still in the
// pending status, one carrier call per order. Used by the background worker.
func (s *order) ResolvePendingTracking(ctx context.Context) error {
	pending, err := s.orders.FindByTrackStatus(ctx, eccang.TrackStatusPending, s.resolveBatchSize)
	if err != nil {
		return NewServiceError(constants.ErrCodeDatabase, err)
	}

	for _, ord := range pending {
		request := eccang.GetTrackNumberRequest{ReferenceNo: []string{ord.ReferenceNo}}

		response, err := s.gateway.GetTrackNumber(ctx, request)
		if err != nil {
			s.logger.Warn("Pending tracking lookup failed",
				zap.String("referenceNo", ord.ReferenceNo),
				zap.Error(err))
			continue
		}

		summary, resolved := SummarizeTrackNumber(response)
		if !resolved {
			continue
		}

		update := model.Order{
			ID:                 ord.ID,
			TrackStatus:        summary.Status,
			TrackingNumberList: marshalTrackingList(summary),
			UpdatedAt:          time.Now(),
		}
		if err := s.orders.Update(ctx, &update); err != nil {
			s.logger.Error("Failed to update resolved tracking",
				zap.String("referenceNo", ord.ReferenceNo),
				zap.Error(err))
			continue
		}

		s.logger.Info("Pending tracking resolved",
			zap.String("referenceNo", ord.ReferenceNo),
			zap.String("primaryTracking", summary.Primary))
	}

	return nil
}

// pollTrackingNumbers asks for tracking numbers up to pollAttempts times,
// sleeping pollInterval between attempts but not after the last one. The
// second return reports whether a tracking number was resolved; running out
// of attempts is not an error.
func (s *order) pollTrackingNumbers(ctx context.Context, referenceNo string) (model.TrackingSummary, bool, error) {
	request := eccang.GetTrackNumberRequest{ReferenceNo: []string{referenceNo}}

	for attempt := 1; attempt <= s.pollAttempts; attempt++ {
		response, err := s.gateway.GetTrackNumber(ctx, request)
		if err != nil {
			s.logger.Error("Tracking number poll failed",
				zap.String("referenceNo", referenceNo),
				zap.Int("attempt", attempt),
				zap.Error(err))
			return model.TrackingSummary{}, false, err
		}

		if summary, resolved := SummarizeTrackNumber(response); resolved {
			s.logger.Info("Tracking number resolved",
				zap.String("referenceNo", referenceNo),
				zap.Int("attempt", attempt),
				zap.String("primaryTracking", summary.Primary))
			return summary, true, nil
		}

		if attempt < s.pollAttempts {
			time.Sleep(s.pollInterval)
		}
	}

	s.logger.Warn("Tracking number polling exhausted, proceeding with creation-time tracking",
		zap.String("referenceNo", referenceNo),
		zap.Int("attempts", s.pollAttempts))

	return model.TrackingSummary{}, false, nil
}

func (s *order) buildOrder(request eccang.CreateOrderRequest, response eccang.CreateOrderResponse,
	tracking model.TrackingSummary) *model.Order {

	now := time.Now()
	record := &model.Order{
		ID:             uuid.NewString(),
		ReferenceNo:    request.ReferenceNo,
		CountryCode:    request.CountryCode,
		ShippingMethod: request.ShippingMethod,
		OrderWeightKg:  request.OrderWeight,
		OrderPieces:    request.OrderPieces,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if response.OrderCode != "" {
		record.OrderCode = &response.OrderCode
	}
	if response.ShippingMethodNo != "" {
		record.ShippingMethodNo = &response.ShippingMethodNo
	}

	// The polled status takes precedence over the creation-time status.
	if tracking.Status != nil {
		record.TrackStatus = tracking.Status
	} else if response.TrackStatus != nil {
		record.TrackStatus = response.TrackStatus
	}

	record.TrackingNumberList = marshalTrackingList(tracking)

	return record
}

// marshalTrackingList persists the pair list when present, the flat number
// sequence otherwise, and leaves the column unset when neither exists.
func marshalTrackingList(tracking model.TrackingSummary) datatypes.JSON {
	if len(tracking.List) > 0 {
		data, _ := json.Marshal(tracking.List)
		return datatypes.JSON(data)
	}
	if len(tracking.TrackingNumbers) > 0 {
		data, _ := json.Marshal(tracking.TrackingNumbers)
		return datatypes.JSON(data)
	}
	return nil
}

func (s *order) loadOrderView(ctx context.Context, referenceNo string) (OrderView, error) {
	ord, err := s.orders.GetByReference(ctx, referenceNo)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return OrderView{}, NewServiceError(constants.ErrCodeOrderNotFound, ErrOrderNotFound)
		}
		return OrderView{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	view := newOrderView(ord)

	label, err := s.labels.GetLatestByOrderID(ctx, ord.ID)
	if err != nil {
		if errors.Is(err, repository.ErrLabelNotFound) {
			return view, nil
		}
		return OrderView{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	labelView := newLabelView(label)
	view.LatestLabel = &labelView

	return view, nil
}
