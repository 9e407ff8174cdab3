package locating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/topraklif/deals-api/internal/domain"
)

type providerFunc func(ctx context.Context) (domain.UserLocation, error)

func (f providerFunc) CurrentLocation(ctx context.Context) (domain.UserLocation, error) {
	return f(ctx)
}

func TestResolveSuccess(t *testing.T) {
	want := domain.UserLocation{Lat: 41.31, Lng: 69.25, Address: "Mirzo Ulugbek, Tashkent"}

	service := NewService(providerFunc(func(context.Context) (domain.UserLocation, error) {
		return want, nil
	}), time.Second)

	assert.Equal(t, want, service.Resolve(context.Background()))
}

func TestResolveProviderErrorFallsBack(t *testing.T) {
	service := NewService(UnavailableProvider{}, time.Second)

	assert.Equal(t, FallbackLocation, service.Resolve(context.Background()))
}

func TestResolveTimeoutFallsBack(t *testing.T) {
	service := NewService(providerFunc(func(ctx context.Context) (domain.UserLocation, error) {
		time.Sleep(500 * time.Millisecond)
		return domain.UserLocation{Lat: 1, Lng: 1}, nil
	}), 20*time.Millisecond)

	got := service.Resolve(context.Background())

	assert.Equal(t, FallbackLocation, got)
}

func TestResolveCachesSuccess(t *testing.T) {
	calls := 0
	service := NewService(providerFunc(func(context.Context) (domain.UserLocation, error) {
		calls++
		return domain.UserLocation{Lat: 41.31, Lng: 69.25}, nil
	}), time.Second)

	service.Resolve(context.Background())
	service.Resolve(context.Background())

	assert.Equal(t, 1, calls)
}

func TestResolveDoesNotCacheFallback(t *testing.T) {
	calls := 0
	service := NewService(providerFunc(func(context.Context) (domain.UserLocation, error) {
		calls++
		return domain.UserLocation{}, ErrUnavailable
	}), time.Second)

	service.Resolve(context.Background())
	service.Resolve(context.Background())

	// A failed lookup is retried on the next request.
	assert.Equal(t, 2, calls)
}
