package auth

import (
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if len(r.Email) > 254 {
		errs.Add("email", "email must not exceed 254 characters")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}

	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	}

	if validator.IsEmpty(r.Role) {
		errs.Add("role", "role is required")
	} else if !user.Role(r.Role).IsValid() {
		errs.Add("role", "role must be employee or admin")
	}

	return errs.Err()
}

type TokenResponse struct {
	AccessToken          string               `json:"access_token"`
	AccessTokenExpiresIn int64                `json:"access_token_expires_in"`
	User                 user.ProfileResponse `json:"user"`
}
