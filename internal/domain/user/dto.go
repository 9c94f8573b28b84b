package user

import (
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/validator"
)

type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs.Add("name", "name must not be empty")
		} else if len(*r.Name) > 255 {
			errs.Add("name", "name must not exceed 255 characters")
		}
	}

	if r.Phone != nil && !validator.IsEmpty(*r.Phone) {
		if !validator.IsValidPhoneNumber(*r.Phone) {
			errs.Add("phone", "phone must be a valid phone number")
		}
	}

	if r.Address != nil && len(*r.Address) > 500 {
		errs.Add("address", "address must not exceed 500 characters")
	}

	return errs.Err()
}

type ProfileResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	JoinDate   string  `json:"join_date"`
	Salary     float64 `json:"salary"`
	PhotoURL   *string `json:"photo_url,omitempty"`
}

// ToProfileResponse maps a user to its API shape; photoURL is the resolved
// public URL of the stored photo, if any.
func ToProfileResponse(u User, photoURL *string) ProfileResponse {
	return ProfileResponse{
		ID:         u.ID,
		EmployeeID: u.EmployeeID,
		Email:      u.Email,
		Role:       string(u.Role),
		Name:       u.Name,
		Department: u.Department,
		Position:   u.Position,
		Phone:      u.Phone,
		Address:    u.Address,
		JoinDate:   u.JoinDate.Format(validator.DateLayout),
		Salary:     u.Salary,
		PhotoURL:   photoURL,
	}
}
