package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusRented    PropertyStatus = "rented"
)

func ParsePropertyStatus(s string) (PropertyStatus, bool) {
	switch PropertyStatus(s) {
	case PropertyStatusAvailable, PropertyStatusSold, PropertyStatusRented:
		return PropertyStatus(s), true
	default:
		return "", false
	}
}

type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

type Property struct {
	Base
	OwnerID     uuid.UUID       `db:"owner_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Type        PropertyType    `db:"property_type"`
	Status      PropertyStatus  `db:"status"`
	Price       decimal.Decimal `db:"price"`
	Address     string          `db:"address"`
	Bedrooms    int             `db:"bedrooms"`
	Bathrooms   int             `db:"bathrooms"`
	AreaSqm     float64         `db:"area_sqm"`
}
