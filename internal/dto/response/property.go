package response

import (
	"time"

	"estate-marketplace/internal/data/entity"
)

type PropertyResponse struct {
	ID          string                `json:"id"`
	OwnerID     string                `json:"owner_id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Type        entity.PropertyType   `json:"type"`
	Status      entity.PropertyStatus `json:"status"`
	Price       string                `json:"price"`
	Address     string                `json:"address"`
	Bedrooms    int                   `json:"bedrooms"`
	Bathrooms   int                   `json:"bathrooms"`
	AreaSqm     float64               `json:"area_sqm"`
	CreatedAt   time.Time             `json:"created_at"`
}

func PropertyToResponse(p *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID.String(),
		OwnerID:     p.OwnerID.String(),
		Title:       p.Title,
		Description: p.Description,
		Type:        p.Type,
		Status:      p.Status,
		Price:       p.Price.StringFixed(2),
		Address:     p.Address,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		AreaSqm:     p.AreaSqm,
		CreatedAt:   p.CreatedAt,
	}
}
