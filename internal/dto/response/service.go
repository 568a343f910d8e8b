package response

import (
	"time"

	"estate-marketplace/internal/data/entity"
)

type ServiceResponse struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"provider_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       string    `json:"price"`
	Location    *string   `json:"location,omitempty"`
	IsActive    bool      `json:"is_active"`
	AvgRating   float64   `json:"avg_rating"`
	ReviewCount int       `json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func ServiceToResponse(s *entity.Service, avgRating float64, reviewCount int) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID.String(),
		ProviderID:  s.ProviderID.String(),
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		Price:       s.Price.StringFixed(2),
		Location:    s.Location,
		IsActive:    s.IsActive,
		AvgRating:   avgRating,
		ReviewCount: reviewCount,
		CreatedAt:   s.CreatedAt,
	}
}
