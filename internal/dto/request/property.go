package request

type PropertyRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=150"`
	Description string  `json:"description" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=house apartment land commercial"`
	Price       string  `json:"price" validate:"required"` // decimal string
	Address     string  `json:"address" validate:"required"`
	Bedrooms    int     `json:"bedrooms" validate:"min=0"`
	Bathrooms   int     `json:"bathrooms" validate:"min=0"`
	AreaSqm     float64 `json:"area_sqm" validate:"gt=0"`
}

type PropertyUpdateRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description *string  `json:"description,omitempty"`
	Price       *string  `json:"price,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Bedrooms    *int     `json:"bedrooms,omitempty" validate:"omitempty,min=0"`
	Bathrooms   *int     `json:"bathrooms,omitempty" validate:"omitempty,min=0"`
	AreaSqm     *float64 `json:"area_sqm,omitempty" validate:"omitempty,gt=0"`
}

type PropertyStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available sold rented"`
}
