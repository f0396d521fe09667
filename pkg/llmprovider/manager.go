package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"errand-planner/pkg/log"
)

// Config tunes the provider chain.
type Config struct {
	// FallbackEnabled moves on to the next provider when one is exhausted.
	// When false only the first provider is ever called.
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	// MaxTotalTimeout bounds the whole chain, retries included.
	MaxTotalTimeout time.Duration
}

// Manager calls providers in priority order, retrying each before falling
// through to the next.
type Manager struct {
	providers []Provider
	cfg       Config
	l         log.Logger
}

// NewManager creates a Manager. A nil cfg enables fallback with one attempt
// per provider.
func NewManager(providers []Provider, cfg *Config, l log.Logger) *Manager {
	c := Config{FallbackEnabled: true, RetryAttempts: 1}
	if cfg != nil {
		c = *cfg
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = 1
	}
	return &Manager{providers: providers, cfg: c, l: l}
}

// Providers returns the chain in call order.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent returns the first non-empty answer in the chain. When
// every provider fails the error wraps ErrAllProvidersFailed and one
// *ProviderError per provider tried.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.cfg.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.MaxTotalTimeout)
		defer cancel()
	}

	chain := m.providers
	if !m.cfg.FallbackEnabled {
		chain = chain[:1]
	}

	var failures []error
	for _, p := range chain {
		if err := ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}

		resp, attempts, err := m.try(ctx, p, req)
		if err == nil {
			m.logAnswer(ctx, p, attempts, resp)
			return resp, nil
		}

		m.l.Warnf(ctx, "llmprovider: %s/%s failed after %d attempt(s): %v", p.Name(), p.Model(), attempts, err)
		failures = append(failures, &ProviderError{
			Provider: p.Name(),
			Model:    p.Model(),
			Attempts: attempts,
			Err:      err,
		})
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(failures...))
}

// try calls p up to RetryAttempts times, waiting attempt*RetryDelay between
// calls. An empty answer counts as a failed attempt.
func (m *Manager) try(ctx context.Context, p Provider, req *Request) (*Response, int, error) {
	var lastErr error
	attempts := 0

	for attempts < m.cfg.RetryAttempts {
		if attempts > 0 {
			wait := time.NewTimer(time.Duration(attempts) * m.cfg.RetryDelay)
			select {
			case <-wait.C:
			case <-ctx.Done():
				wait.Stop()
				return nil, attempts, ctx.Err()
			}
		}
		attempts++

		resp, err := p.GenerateContent(ctx, req)
		switch {
		case err != nil:
			lastErr = err
		case resp.IsEmpty():
			lastErr = ErrEmptyResponse
		default:
			return resp, attempts, nil
		}
	}

	return nil, attempts, lastErr
}

func (m *Manager) logAnswer(ctx context.Context, p Provider, attempts int, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.l.Infof(ctx, "llmprovider: %s/%s answered (attempts=%d input_tokens=%d output_tokens=%d)",
		p.Name(), p.Model(), attempts, in, out)
}
