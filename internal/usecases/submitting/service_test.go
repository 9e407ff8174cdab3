package submitting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/topraklif/deals-api/infrastructure/repository/mocks"
	"github.com/topraklif/deals-api/internal/domain"
)

func validForm() Form {
	return Form{
		Title:           "Plov Masterclass",
		Description:     "Learn to cook real Tashkent plov.",
		Category:        domain.CategoryCourses,
		OriginalPrice:   500000,
		DiscountedPrice: 350000,
		Address:         "Navoi Street 10, Tashkent",
		District:        "Chilanzar",
		Tags:            []string{"cooking", "course"},
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Form)
		wantMessage string
	}{
		{
			name:        "missing title",
			mutate:      func(f *Form) { f.Title = "   " },
			wantMessage: "Title is required",
		},
		{
			name:        "missing description",
			mutate:      func(f *Form) { f.Description = "" },
			wantMessage: "Description is required",
		},
		{
			name:        "unknown category",
			mutate:      func(f *Form) { f.Category = "vehicles" },
			wantMessage: "Invalid category",
		},
		{
			name:        "zero original price",
			mutate:      func(f *Form) { f.OriginalPrice = 0 },
			wantMessage: "Original price must be greater than 0",
		},
		{
			name:        "zero discounted price",
			mutate:      func(f *Form) { f.DiscountedPrice = 0 },
			wantMessage: "Discounted price must be greater than 0",
		},
		{
			name:        "discount not below original",
			mutate:      func(f *Form) { f.DiscountedPrice = 500000 },
			wantMessage: "Discounted price must be less than original price",
		},
		{
			name:        "missing address",
			mutate:      func(f *Form) { f.Address = "" },
			wantMessage: "Address is required",
		},
		{
			name:        "missing district",
			mutate:      func(f *Form) { f.District = "" },
			wantMessage: "District is required",
		},
		{
			name:        "unknown district",
			mutate:      func(f *Form) { f.District = "Samarkand" },
			wantMessage: "Unknown district",
		},
		{
			name: "first failure wins",
			mutate: func(f *Form) {
				f.Title = ""
				f.District = "Samarkand"
			},
			wantMessage: "Title is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Append must never be reached on a rejected form.
			mockRepo := mocks.NewMockDealRepository(ctrl)

			form := validForm()
			tt.mutate(&form)

			deal, err := NewService(mockRepo).Submit(form, nil)
			require.Nil(t, deal)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantMessage, validationErr.Message)
		})
	}
}

func TestSubmitSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)

	var stored domain.Deal
	mockRepo := mocks.NewMockDealRepository(ctrl)
	mockRepo.EXPECT().Append(gomock.Any()).DoAndReturn(func(deal domain.Deal) error {
		stored = deal
		return nil
	})

	service := NewService(mockRepo).WithClock(func() time.Time { return now })

	submitter := &domain.User{ID: "u1", DisplayName: "Aziz", Email: "aziz@example.com"}
	deal, err := service.Submit(validForm(), submitter)
	require.NoError(t, err)
	require.NotNil(t, deal)

	assert.Equal(t, *deal, stored)
	assert.NotEmpty(t, deal.ID)
	assert.Equal(t, 30, deal.DiscountPercentage)
	assert.Equal(t, "Chilanzar", deal.Location.District)
	assert.Equal(t, "Aziz", deal.Source.Username)
	assert.Equal(t, domain.PlatformTelegram, deal.Source.Platform)
	assert.Equal(t, now, deal.Source.Timestamp)
	assert.Equal(t, now.Add(defaultListingLifetime), deal.ExpiresAt)
	assert.False(t, deal.IsVerified)
}

func TestSubmitTrimsWhitespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDealRepository(ctrl)
	mockRepo.EXPECT().Append(gomock.Any()).Return(nil)

	form := validForm()
	form.Title = "  Plov Masterclass  "
	form.District = " Chilanzar "

	deal, err := NewService(mockRepo).Submit(form, nil)
	require.NoError(t, err)

	assert.Equal(t, "Plov Masterclass", deal.Title)
	assert.Equal(t, "Chilanzar", deal.Location.District)
}

func TestSubmitHonorsExplicitExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDealRepository(ctrl)
	mockRepo.EXPECT().Append(gomock.Any()).Return(nil)

	expiry := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	form := validForm()
	form.ExpiresAt = &expiry

	deal, err := NewService(mockRepo).Submit(form, nil)
	require.NoError(t, err)

	assert.Equal(t, expiry, deal.ExpiresAt)
}
