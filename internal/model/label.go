package model

import "time"

// Label records one label retrieval. Append-only: a new row is created on
// each successful fetch, existing rows are never mutated.
type Label struct {
	ID        string    `gorm:"primaryKey;column:id;<-:create"`
	OrderID   string    `gorm:"column:order_id;index:idx_labels_order_id"`
	URL       string    `gorm:"column:url"`
	Type      string    `gorm:"column:type"`
	CreatedAt time.Time `gorm:"column:created_at"`

	Order *Order `gorm:"foreignKey:OrderID"`
}
