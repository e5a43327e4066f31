package ai

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/fortify/timeout"

	"github.com/skilltrail/skilltrail/internal/domain/ai"
)

// ResilientProvider wraps a provider with retry and timeout handling.
type ResilientProvider struct {
	inner ai.Provider
}

func NewResilientProvider(inner ai.Provider) *ResilientProvider {
	return &ResilientProvider{inner: inner}
}

func (p *ResilientProvider) ID() string {
	return p.inner.ID()
}

func (p *ResilientProvider) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	r := retry.New[*ai.CompletionResponse](retry.Config{
		MaxAttempts:   2,
		InitialDelay:  time.Second,
		BackoffPolicy: retry.BackoffExponential,
	})

	t := timeout.New[*ai.CompletionResponse](timeout.Config{
		DefaultTimeout: 60 * time.Second,
	})

	return t.Execute(ctx, 60*time.Second, func(ctx context.Context) (*ai.CompletionResponse, error) {
		return r.Do(ctx, func(ctx context.Context) (*ai.CompletionResponse, error) {
			return p.inner.Complete(ctx, req)
		})
	})
}
