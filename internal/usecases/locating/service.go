// Package locating resolves the requester's position, falling back to the
// Tashkent city center when the provider fails or stalls.
package locating

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/topraklif/deals-api/internal/domain"
	"github.com/topraklif/deals-api/pkg/log"
)

const (
	defaultTimeout  = 10 * time.Second
	cacheExpiration = 5 * time.Minute
	cacheKey        = "current"
)

// FallbackLocation is the Tashkent city center, served whenever a real
// position cannot be resolved.
var FallbackLocation = domain.UserLocation{
	Lat:     41.2995,
	Lng:     69.2401,
	Address: "Tashkent, Uzbekistan",
}

// Provider resolves a position from some external source (browser
// geolocation relayed by the client, an IP lookup, a carrier API).
type Provider interface {
	CurrentLocation(ctx context.Context) (domain.UserLocation, error)
}

type Locator interface {
	Resolve(ctx context.Context) domain.UserLocation
}

type Service struct {
	provider Provider
	timeout  time.Duration
	memo     *cache.Cache
}

func NewService(provider Provider, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{
		provider: provider,
		timeout:  timeout,
		memo:     cache.New(cacheExpiration, 2*cacheExpiration),
	}
}

// Resolve never fails: any provider error or timeout degrades to the
// fallback. Successful positions are reused for a few minutes.
func (s *Service) Resolve(ctx context.Context) domain.UserLocation {
	if cached, ok := s.memo.Get(cacheKey); ok {
		return cached.(domain.UserLocation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		location domain.UserLocation
		err      error
	}

	resultCh := make(chan result, 1)
	go func() {
		location, err := s.provider.CurrentLocation(ctx)
		resultCh <- result{location: location, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			log.ForContext(ctx).WithError(res.err).Warn("location provider failed, using fallback")
			return FallbackLocation
		}
		s.memo.Set(cacheKey, res.location, cache.DefaultExpiration)
		return res.location
	case <-ctx.Done():
		// A late provider answer is discarded; the buffered channel
		// lets the goroutine finish anyway.
		log.ForContext(ctx).Warn("location provider timed out, using fallback")
		return FallbackLocation
	}
}

var ErrUnavailable = errors.New("location provider unavailable")

// UnavailableProvider always errors. It stands in until a real
// geolocation relay is wired up.
type UnavailableProvider struct{}

func (UnavailableProvider) CurrentLocation(context.Context) (domain.UserLocation, error) {
	return domain.UserLocation{}, ErrUnavailable
}
