package service

import "github.com/shipflow/ordergateway/pkg/eccang"

type CreateOrderCommand struct {
	Order eccang.CreateOrderRequest
}

type ListLabelsQuery struct {
	Query    string
	Page     int
	PageSize int
}
