package repository

import (
	"context"
	"errors"

	"github.com/shipflow/ordergateway/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrOrderNotFound = errors.New("ORDER_NOT_FOUND")

type OrderRepository interface {
	Upsert(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, order *model.Order) error
	GetByReference(ctx context.Context, referenceNo string) (*model.Order, error)
	FindByTrackStatus(ctx context.Context, trackStatus int, limit int) ([]model.Order, error)
}

type Order struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &Order{db: db}
}

// Upsert converges concurrent creates for one reference onto a single row.
// The tracking list column is only rewritten when the caller computed one, so
// a re-create without tracking data keeps the previously resolved numbers.
func (o *Order) Upsert(ctx context.Context, order *model.Order) error {
	db := GetTx(ctx, o.db)

	assignments := []string{"order_code", "shipping_method_no", "country_code", "shipping_method",
		"order_weight_kg", "order_pieces", "track_status", "updated_at"}
	if order.TrackingNumberList != nil {
		assignments = append(assignments, "tracking_number_list")
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "reference_no"}},
		DoUpdates: clause.AssignmentColumns(assignments),
	}).Create(order).Error
}

func (o *Order) Update(ctx context.Context, order *model.Order) error {
	db := GetTx(ctx, o.db)
	return db.Model(order).Where("id = ?", order.ID).Updates(order).Error
}

func (o *Order) GetByReference(ctx context.Context, referenceNo string) (*model.Order, error) {
	var order model.Order

	err := GetTx(ctx, o.db).Where("reference_no = ?", referenceNo).First(&order).Error
	if err == nil {
		return &order, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}

	return nil, err
}

func (o *Order) FindByTrackStatus(ctx context.Context, trackStatus int, limit int) ([]model.Order, error) {
	var orders []model.Order

	err := GetTx(ctx, o.db).Where("track_status = ?", trackStatus).
		Order("updated_at ASC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}
