// Package submitting validates the host submission form and turns it into
// a listing.
package submitting

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/topraklif/deals-api/infrastructure/repository"
	"github.com/topraklif/deals-api/internal/domain"
	"github.com/topraklif/deals-api/pkg/utils"
)

const defaultListingLifetime = 7 * 24 * time.Hour

// Form is the multi-step submission payload. Field order matters: the
// validator reports failures in declaration order and the user sees only
// the first one.
type Form struct {
	Title           string          `json:"title" validate:"required"`
	Description     string          `json:"description" validate:"required"`
	Category        domain.Category `json:"category" validate:"required,oneof=products real-estate courses"`
	OriginalPrice   float64         `json:"original_price" validate:"required,gt=0"`
	DiscountedPrice float64         `json:"discounted_price" validate:"required,gt=0,ltfield=OriginalPrice"`
	Address         string          `json:"address" validate:"required"`
	District        string          `json:"district" validate:"required,district"`
	SourcePlatform  domain.Platform `json:"source_platform" validate:"omitempty,oneof=telegram instagram facebook twitter"`
	Image           string          `json:"image"`
	ExpiresAt       *time.Time      `json:"expires_at"`
	Tags            []string        `json:"tags"`
}

// ValidationError carries the single user-visible message for a rejected
// attempt.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type Submitter interface {
	Submit(form Form, submitter *domain.User) (*domain.Deal, error)
}

type Service struct {
	repo     repository.DealRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo repository.DealRepository) *Service {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// oneof cannot express district names containing spaces.
	_ = validate.RegisterValidation("district", func(fl validator.FieldLevel) bool {
		return domain.IsKnownDistrict(fl.Field().String())
	})

	return &Service{
		repo:     repo,
		validate: validate,
		now:      time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Submit rejects the whole attempt on the first failed rule; no partial
// record is ever created.
func (s *Service) Submit(form Form, submitter *domain.User) (*domain.Deal, error) {
	form.Title = strings.TrimSpace(form.Title)
	form.Description = strings.TrimSpace(form.Description)
	form.Address = strings.TrimSpace(form.Address)
	form.District = strings.TrimSpace(form.District)

	if err := s.validate.Struct(form); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			return nil, &ValidationError{Message: messageFor(fieldErrors[0])}
		}
		return nil, errors.Wrap(err, "validate submission")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "generate deal id")
	}

	now := s.now()

	expiresAt := now.Add(defaultListingLifetime)
	if form.ExpiresAt != nil {
		expiresAt = *form.ExpiresAt
	}

	platform := form.SourcePlatform
	if platform == "" {
		platform = domain.PlatformTelegram
	}

	username := ""
	if submitter != nil {
		username = submitter.DisplayName
		if username == "" {
			username = submitter.Email
		}
	}

	deal := domain.Deal{
		ID:                 id,
		Title:              form.Title,
		Description:        form.Description,
		Category:           form.Category,
		OriginalPrice:      form.OriginalPrice,
		DiscountedPrice:    form.DiscountedPrice,
		DiscountPercentage: domain.ComputeDiscountPercent(form.OriginalPrice, form.DiscountedPrice),
		Location: domain.Location{
			// No geocoding here: the map collaborator re-pins by
			// address. City center until then.
			Lat:      41.2995,
			Lng:      69.2401,
			Address:  form.Address,
			District: form.District,
		},
		Source: domain.Source{
			Platform:  platform,
			Username:  username,
			Timestamp: now,
		},
		Image:      form.Image,
		ExpiresAt:  expiresAt,
		IsVerified: false,
		Tags:       form.Tags,
	}

	if err := s.repo.Append(deal); err != nil {
		return nil, errors.Wrap(err, "store submitted deal")
	}

	return &deal, nil
}

// messageFor maps the first failed rule to the message the form shows.
func messageFor(fieldError validator.FieldError) string {
	switch fieldError.Field() {
	case "Title":
		return "Title is required"
	case "Description":
		return "Description is required"
	case "Category":
		return "Invalid category"
	case "OriginalPrice":
		return "Original price must be greater than 0"
	case "DiscountedPrice":
		if fieldError.Tag() == "ltfield" {
			return "Discounted price must be less than original price"
		}
		return "Discounted price must be greater than 0"
	case "Address":
		return "Address is required"
	case "District":
		if fieldError.Tag() == "district" {
			return "Unknown district"
		}
		return "District is required"
	case "SourcePlatform":
		return "Invalid source platform"
	}
	return "Invalid submission"
}
