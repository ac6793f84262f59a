package marketdata

import (
	"context"
	"errors"
	"strings"

	"depotlens/internal/logger"
)

// FallbackProvider asks its providers in order and returns the first success.
type FallbackProvider struct {
	providers []Provider
}

// NewFallbackProvider creates a provider chain. The first provider is the primary.
func NewFallbackProvider(providers ...Provider) *FallbackProvider {
	return &FallbackProvider{providers: providers}
}

// Name lists the chained providers.
func (f *FallbackProvider) Name() string {
	names := make([]string, len(f.providers))
	for i, p := range f.providers {
		names[i] = p.Name()
	}
	return strings.Join(names, " > ")
}

func (f *FallbackProvider) Quote(ctx context.Context, symbol string) (*Quote, error) {
	return firstOf(ctx, f.providers, "quote", symbol, func(p Provider) (*Quote, error) {
		return p.Quote(ctx, symbol)
	})
}

func (f *FallbackProvider) History(ctx context.Context, symbol string, days int) ([]Candle, error) {
	return firstOf(ctx, f.providers, "history", symbol, func(p Provider) ([]Candle, error) {
		return p.History(ctx, symbol, days)
	})
}

func (f *FallbackProvider) Search(ctx context.Context, query string) ([]SearchResult, error) {
	return firstOf(ctx, f.providers, "search", query, func(p Provider) ([]SearchResult, error) {
		return p.Search(ctx, query)
	})
}

func (f *FallbackProvider) Profile(ctx context.Context, symbol string) (*Profile, error) {
	return firstOf(ctx, f.providers, "profile", symbol, func(p Provider) (*Profile, error) {
		return p.Profile(ctx, symbol)
	})
}

// firstOf returns the first successful result. When all providers fail the
// errors are joined, so errors.Is(err, ErrNotFound) holds if any said not found.
func firstOf[T any](ctx context.Context, providers []Provider, op, key string, call func(Provider) (T, error)) (T, error) {
	var errs []error
	for _, p := range providers {
		v, err := call(p)
		if err == nil {
			return v, nil
		}
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
		if !errors.Is(err, ErrUnsupported) {
			logger.Get().Warnw("market data provider failed, trying next",
				"provider", p.Name(),
				"operation", op,
				"key", key,
				"error", err,
			)
		}
	}
	var zero T
	if len(errs) == 0 {
		return zero, ErrUnsupported
	}
	return zero, errors.Join(errs...)
}
