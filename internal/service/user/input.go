package user

import (
	"net/mail"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

// RegisterInput holds parameters for user registration.
type RegisterInput struct {
	TenantID uuid.UUID
	Email    string
	Password string
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.TenantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tenant_id", Message: "required"})
	}

	errs = append(errs, validateEmail(i.Email)...)

	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > 72 {
		// bcrypt truncates beyond 72 bytes.
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for user profile update.
// All fields are optional (nil = don't change).
type UpdateInput struct {
	Email *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "at least one field required"})
	} else {
		errs = append(errs, validateEmail(*i.Email)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	var errs []domain.FieldError
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > 255:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	default:
		if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
		}
	}
	return errs
}
