package dto

import "github.com/shopspring/decimal"

type ServiceResponse struct {
	ServiceID   uint            `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}
