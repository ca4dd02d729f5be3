package shortlink

import (
	"net/url"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

// CreateInput holds parameters for short-link creation.
type CreateInput struct {
	TargetURL string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	if errs := validateTargetURL(i.TargetURL); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for short-link update.
type UpdateInput struct {
	TargetURL string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	if errs := validateTargetURL(i.TargetURL); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTargetURL(raw string) []domain.FieldError {
	var errs []domain.FieldError
	switch {
	case raw == "":
		errs = append(errs, domain.FieldError{Field: "target_url", Message: "required"})
	case len(raw) > 2048:
		errs = append(errs, domain.FieldError{Field: "target_url", Message: "too long"})
	default:
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, domain.FieldError{Field: "target_url", Message: "must be an absolute http(s) URL"})
		}
	}
	return errs
}
