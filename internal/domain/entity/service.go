package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service represents a bookable clinic service (e.g. consultation, lab panel).
type Service struct {
	ServiceID   uint            `gorm:"primaryKey;autoIncrement" json:"service_id"`
	ServiceName string          `gorm:"type:varchar(200);not null" json:"service_name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:ServiceID" json:"appointments,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
