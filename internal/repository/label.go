package repository

import (
	"context"
	"errors"

	"github.com/shipflow/ordergateway/internal/model"
	"gorm.io/gorm"
)

var ErrLabelNotFound = errors.New("LABEL_NOT_FOUND")

type LabelRepository interface {
	Create(ctx context.Context, label *model.Label) error
	GetLatestByOrderID(ctx context.Context, orderID string) (*model.Label, error)
	List(ctx context.Context, query string, limit, offset int) ([]model.Label, error)
	Count(ctx context.Context, query string) (int64, error)
}

type Label struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &Label{db: db}
}

func (l *Label) Create(ctx context.Context, label *model.Label) error {
	db := GetTx(ctx, l.db)
	return db.Create(label).Error
}

func (l *Label) GetLatestByOrderID(ctx context.Context, orderID string) (*model.Label, error) {
	var label model.Label

	err := GetTx(ctx, l.db).Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&label).Error
	if err == nil {
		return &label, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLabelNotFound
	}

	return nil, err
}

func (l *Label) List(ctx context.Context, query string, limit, offset int) ([]model.Label, error) {
	var labels []model.Label

	err := l.scopeQuery(GetTx(ctx, l.db), query).
		Preload("Order").
		Order("labels.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&labels).Error
	if err != nil {
		return nil, err
	}

	return labels, nil
}

func (l *Label) Count(ctx context.Context, query string) (int64, error) {
	var count int64

	err := l.scopeQuery(GetTx(ctx, l.db).Model(&model.Label{}), query).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (l *Label) scopeQuery(db *gorm.DB, query string) *gorm.DB {
	if query == "" {
		return db
	}

	pattern := "%" + query + "%"
	return db.Joins("JOIN orders ON orders.id = labels.order_id").
		Where("orders.reference_no LIKE ? OR orders.order_code LIKE ? OR orders.shipping_method_no LIKE ?",
			pattern, pattern, pattern)
}
