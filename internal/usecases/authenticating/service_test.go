package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topraklif/deals-api/infrastructure/repository"
)

const testSecret = "test-secret"

func testProfile() ProviderProfile {
	return ProviderProfile{
		Provider:    "telegram",
		Subject:     "12345",
		Email:       "aziz@example.com",
		DisplayName: "Aziz",
	}
}

func TestEstablishAndValidateRoundtrip(t *testing.T) {
	service := NewService(repository.NewUserRepository(), testSecret, time.Hour)

	token, user, err := service.Establish(testProfile())
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "aziz@example.com", claims.UserEmail)
	assert.Equal(t, "Aziz", claims.UserName)
	assert.Equal(t, "telegram", claims.UserProvider)
}

func TestEstablishIsIdempotentPerProviderSubject(t *testing.T) {
	service := NewService(repository.NewUserRepository(), testSecret, time.Hour)

	_, first, err := service.Establish(testProfile())
	require.NoError(t, err)

	profile := testProfile()
	profile.DisplayName = "Aziz Karimov"
	_, second, err := service.Establish(profile)
	require.NoError(t, err)

	// Same identity, refreshed profile.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Aziz Karimov", second.DisplayName)
}

func TestEstablishRejectsUnknownProvider(t *testing.T) {
	service := NewService(repository.NewUserRepository(), testSecret, time.Hour)

	profile := testProfile()
	profile.Provider = "myspace"

	_, _, err := service.Establish(profile)

	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestValidateTokenExpired(t *testing.T) {
	issuedAt := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)

	service := NewService(repository.NewUserRepository(), testSecret, time.Hour).
		WithClock(func() time.Time { return issuedAt })

	token, _, err := service.Establish(testProfile())
	require.NoError(t, err)

	service.WithClock(func() time.Time { return issuedAt.Add(2 * time.Hour) })

	_, err = service.ValidateToken(token)

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenTampered(t *testing.T) {
	service := NewService(repository.NewUserRepository(), testSecret, time.Hour)

	token, _, err := service.Establish(testProfile())
	require.NoError(t, err)

	other := NewService(repository.NewUserRepository(), "other-secret", time.Hour)

	_, err = other.ValidateToken(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	service := NewService(repository.NewUserRepository(), testSecret, time.Hour)

	_, err := service.ValidateToken("not-a-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetUser(t *testing.T) {
	repo := repository.NewUserRepository()
	service := NewService(repo, testSecret, time.Hour)

	_, user, err := service.Establish(testProfile())
	require.NoError(t, err)

	got, err := service.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = service.GetUser("missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
