package complaint

import (
	"github.com/frahmantamala/complaint-redressal/internal"
	"github.com/frahmantamala/complaint-redressal/internal/core/common/validation"
)

// CreateComplaintDTO is the draft a citizen submits. Status is accepted for
// compatibility with older clients and always ignored.
type CreateComplaintDTO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Address     *string  `json:"address,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Status      string   `json:"status,omitempty"`
}

func (dto CreateComplaintDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("title", dto.Title).
		Required().
		MaxLength(200)
	v.Field("category", dto.Category).
		Required().
		OneOf(categoryNames(), internal.ErrCodeInvalidCategory)
	v.Field("latitude", dto.Latitude).
		FloatRange(-90, 90, internal.ErrCodeInvalidCoordinates)
	v.Field("longitude", dto.Longitude).
		FloatRange(-180, 180, internal.ErrCodeInvalidCoordinates)
	v.Field("address", dto.Address).
		MaxLength(500)
	return v.Err()
}

type UpdateStatusDTO struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks,omitempty"`
}
