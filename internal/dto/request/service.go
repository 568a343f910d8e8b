package request

type ServiceRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=150"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required,max=50"`
	Price       string  `json:"price" validate:"required"` // decimal string, per hour
	Location    *string `json:"location,omitempty"`
}

type ServiceUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=50"`
	Price       *string `json:"price,omitempty"`
	Location    *string `json:"location,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
