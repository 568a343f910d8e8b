package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	Base
	ProviderID  uuid.UUID       `db:"provider_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	Price       decimal.Decimal `db:"price"` // per hour
	Location    *string         `db:"location"`
	IsActive    bool            `db:"is_active"`
}
