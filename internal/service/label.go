package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shipflow/ordergateway/internal/constants"
	"github.com/shipflow/ordergateway/internal/model"
	"github.com/shipflow/ordergateway/internal/repository"
	"github.com/shipflow/ordergateway/pkg/eccang"
	"go.uber.org/zap"
)

const defaultLabelType = "PDF"

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type LabelService interface {
	GenerateLabel(ctx context.Context, referenceNo string) (LabelView, error)
	ListLabels(ctx context.Context, query ListLabelsQuery) (ListLabelsResponse, error)
}

type label struct {
	orders    repository.OrderRepository
	labels    repository.LabelRepository
	txManager repository.TxManager
	gateway   eccang.Gateway
	logger    *zap.Logger
}

func NewLabelService(orders repository.OrderRepository, labels repository.LabelRepository,
	txManager repository.TxManager, gateway eccang.Gateway, logger *zap.Logger) LabelService {
	return &label{orders: orders, labels: labels, txManager: txManager, gateway: gateway, logger: logger}
}

// GenerateLabel fetches the label URL for an existing order and records a new
// label row. An answer without a URL means the carrier has not generated the
// label yet; the caller may retry later.
func (s *label) GenerateLabel(ctx context.Context, referenceNo string) (LabelView, error) {
	ord, err := s.orders.GetByReference(ctx, referenceNo)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return LabelView{}, NewServiceError(constants.ErrCodeOrderNotFound, ErrOrderNotFound)
		}
		return LabelView{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	response, err := s.gateway.GetLabelURL(ctx, eccang.GetLabelURLRequest{ReferenceNo: referenceNo})
	if err != nil {
		s.logger.Error("Carrier label lookup failed",
			zap.String("referenceNo", referenceNo),
			zap.Error(err))
		return LabelView{}, NewServiceError(carrierErrorCode(err), err)
	}

	if len(response.Datas) == 0 || response.Datas[0].URL == "" {
		s.logger.Info("Label not generated by carrier yet",
			zap.String("referenceNo", referenceNo))
		return LabelView{}, NewServiceError(constants.ErrCodeLabelNotReady, ErrLabelNotReady)
	}

	labelData := response.Datas[0]
	labelType := labelData.LabelType
	if labelType == "" {
		labelType = defaultLabelType
	}

	now := time.Now()
	record := &model.Label{
		ID:        uuid.NewString(),
		OrderID:   ord.ID,
		URL:       labelData.URL,
		Type:      labelType,
		CreatedAt: now,
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.labels.Create(ctx, record); err != nil {
			return err
		}

		update := model.Order{ID: ord.ID, LastLabelAt: &now, UpdatedAt: now}
		return s.orders.Update(ctx, &update)
	})
	if err != nil {
		s.logger.Error("Failed to record label",
			zap.String("referenceNo", referenceNo),
			zap.Error(err))
		return LabelView{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	s.logger.Info("Label recorded",
		zap.String("referenceNo", referenceNo),
		zap.String("labelID", record.ID),
		zap.String("type", labelType))

	return newLabelView(record), nil
}

func (s *label) ListLabels(ctx context.Context, query ListLabelsQuery) (ListLabelsResponse, error) {
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	labels, err := s.labels.List(ctx, query.Query, pageSize, offset)
	if err != nil {
		return ListLabelsResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	total, err := s.labels.Count(ctx, query.Query)
	if err != nil {
		return ListLabelsResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	items := make([]LabelView, 0, len(labels))
	for i := range labels {
		items = append(items, newLabelView(&labels[i]))
	}

	return ListLabelsResponse{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}
