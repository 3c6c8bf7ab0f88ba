package catalog

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateServiceRequest struct {
	CategoryID      int64   `json:"category_id" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"required,gte=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Title           *string  `json:"title,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	IsAvailable     *bool    `json:"is_available,omitempty"`
}

type UpdateProviderProfileRequest struct {
	Phone     *string  `json:"phone,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}
