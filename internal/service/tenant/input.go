package tenant

import (
	"regexp"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

var subdomainRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// CreateInput holds parameters for tenant creation.
type CreateInput struct {
	Name      string
	Subdomain string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	errs = append(errs, validateSubdomain(i.Subdomain)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for tenant update.
// All fields are optional (nil = don't change).
type UpdateInput struct {
	Name      *string
	Subdomain *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.Subdomain == nil {
		errs = append(errs, domain.FieldError{Field: "name", Message: "at least one field required"})
	}

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(*i.Name) > 255 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Subdomain != nil {
		errs = append(errs, validateSubdomain(*i.Subdomain)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateSubdomain(subdomain string) []domain.FieldError {
	var errs []domain.FieldError
	switch {
	case subdomain == "":
		errs = append(errs, domain.FieldError{Field: "subdomain", Message: "required"})
	case len(subdomain) > 63:
		errs = append(errs, domain.FieldError{Field: "subdomain", Message: "too long"})
	case !subdomainRe.MatchString(subdomain):
		errs = append(errs, domain.FieldError{Field: "subdomain", Message: "must be lowercase letters, digits and hyphens"})
	}
	return errs
}
