package user

import (
	"github.com/frahmantamala/complaint-redressal/internal/core/common/validation"
)

// RegisterDTO is the sign-up payload for citizen accounts.
type RegisterDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (d RegisterDTO) Validate() error {
	if err := validation.ValidateCredentials(d.Username, d.Password); err != nil {
		return err
	}
	return nil
}

// CreateAdminDTO provisions a staff account from the seed command.
type CreateAdminDTO struct {
	Username     string
	Password     string
	DepartmentID *int64
}

func (d CreateAdminDTO) Validate() error {
	if err := validation.ValidateCredentials(d.Username, d.Password); err != nil {
		return err
	}
	return nil
}
