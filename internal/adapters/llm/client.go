package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PabloGalante/recovery-agent/internal/domain"
	"github.com/PabloGalante/recovery-agent/internal/observability"
)

const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

var errNoCredentials = errors.New("no provider credentials configured")

// Config is what the adapter needs to build a provider backend.
type Config struct {
	Provider string
	APIKey   string
	Model    string

	// Vertex AI (Gemini only): authenticates with ADC, so no API key.
	UseVertex bool
	Project   string
	Location  string

	// Timeout bounds every single Generate call. Zero disables it.
	Timeout time.Duration

	// BaseURL overrides the provider endpoint (proxies, tests).
	BaseURL string
}

func (c Config) hasCredentials() bool {
	if c.APIKey != "" {
		return true
	}
	return c.UseVertex && c.Project != ""
}

// Backend is one provider SDK behind a uniform completion call.
type Backend interface {
	Name() string
	Complete(ctx context.Context, req domain.GenerationRequest) (string, error)
}

// BackendFactory builds a backend from config. It is only invoked when
// credentials are present.
type BackendFactory func(ctx context.Context, cfg Config) (Backend, error)

type Option func(*Client)

// WithBackendFactory replaces the provider SDK constructor.
func WithBackendFactory(f BackendFactory) Option {
	return func(c *Client) {
		c.factory = f
	}
}

// Client implements domain.Generator. It is either enabled, with a backend,
// or disabled for its whole lifetime. The state is fixed in NewClient, so the
// client is safe for concurrent use without locking.
type Client struct {
	backend Backend
	factory BackendFactory
	timeout time.Duration
	initErr error
}

// NewClient never fails: missing credentials or a backend construction error
// produce a disabled client whose Generate always returns
// domain.ErrGeneratorOffline.
func NewClient(ctx context.Context, cfg Config, opts ...Option) *Client {
	c := &Client{
		factory: defaultBackendFactory,
		timeout: cfg.Timeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	log := observability.LoggerFromContext(ctx).With("provider", cfg.Provider)

	if !cfg.hasCredentials() {
		c.initErr = errNoCredentials
		log.Warn("LLM client disabled, agents will answer with fallbacks", "reason", c.initErr.Error())
		return c
	}

	backend, err := c.factory(ctx, cfg)
	if err != nil {
		c.initErr = err
		log.Error("LLM client disabled, backend init failed", "error", err)
		return c
	}

	c.backend = backend
	log.Info("LLM client ready", "backend", backend.Name(), "model", cfg.Model)
	return c
}

// Disabled returns a client that never reaches the network.
func Disabled(reason error) *Client {
	return &Client{initErr: reason}
}

// Enabled reports whether live generation is available.
func (c *Client) Enabled() bool {
	return c.backend != nil
}

// InitErr is the reason the client is disabled, if it is.
func (c *Client) InitErr() error {
	return c.initErr
}

// Generate implements domain.Generator with exactly one provider attempt.
func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	if c.backend == nil {
		return "", domain.ErrGeneratorOffline
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	text, err := c.backend.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.backend.Name(), err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%s: %w", c.backend.Name(), domain.ErrEmptyResponse)
	}
	return text, nil
}

func defaultBackendFactory(ctx context.Context, cfg Config) (Backend, error) {
	switch cfg.Provider {
	case ProviderAnthropic:
		return NewAnthropicBackend(cfg)
	case ProviderGemini, "":
		return NewGeminiBackend(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
}
