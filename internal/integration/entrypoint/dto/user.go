package dto

// UpdateProfileRequest represents the request body for profile updates.
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Image *string `json:"image,omitempty"`
}
