package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

const (
	defaultGeminiModel    = "gemini-2.0-flash"
	defaultAnthropicModel = "claude-3-5-haiku-latest"
)

type Config struct {
	Port string

	Provider  Provider
	ModelName string
	// LLMBaseURL points the provider SDK at a proxy or gateway. Empty keeps
	// the SDK default.
	LLMBaseURL string

	// Credentials are only read from the environment.
	GeminiAPIKey    string
	AnthropicAPIKey string

	// Vertex AI backend for Gemini, authenticated with ADC instead of a key.
	UseVertex    bool
	GCPProjectID string
	GCPLocation  string

	GenerationTimeout time.Duration
	AgentConcurrency  int
	UseMockLLM        bool // true = scripted mock, no provider at all

	LogLevel string

	TracingEnabled  bool
	TracingEndpoint string
}

// fileConfig mirrors the YAML layout accepted by --config.
type fileConfig struct {
	Port              string `yaml:"port"`
	Provider          string `yaml:"provider"`
	Model             string `yaml:"model"`
	BaseURL           string `yaml:"base_url"`
	GenerationTimeout string `yaml:"generation_timeout"`
	AgentConcurrency  int    `yaml:"agent_concurrency"`
	UseMockLLM        bool   `yaml:"use_mock_llm"`
	LogLevel          string `yaml:"log_level"`

	Vertex struct {
		Enabled  bool   `yaml:"enabled"`
		Project  string `yaml:"project"`
		Location string `yaml:"location"`
	} `yaml:"vertex"`

	Tracing struct {
		Enabled  bool   `yaml:"enabled"`
		Endpoint string `yaml:"endpoint"`
	} `yaml:"tracing"`
}

func defaults() *Config {
	return &Config{
		Port:              "8000",
		Provider:          ProviderGemini,
		GCPLocation:       "us-central1",
		GenerationTimeout: 20 * time.Second,
		AgentConcurrency:  4,
		LogLevel:          "info",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

// Load builds the config from defaults, an optional YAML file and the
// environment, in that order of precedence (env wins).
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.ModelName == "" {
		cfg.ModelName = defaultGeminiModel
		if cfg.Provider == ProviderAnthropic {
			cfg.ModelName = defaultAnthropicModel
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("load config file %q: %w", path, err)
	}

	var fc fileConfig
	if err := k.UnmarshalWithConf("", &fc, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return fmt.Errorf("parse config file %q: %w", path, err)
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.Provider != "" {
		c.Provider = Provider(strings.ToLower(fc.Provider))
	}
	if fc.Model != "" {
		c.ModelName = fc.Model
	}
	if fc.BaseURL != "" {
		c.LLMBaseURL = fc.BaseURL
	}
	if fc.GenerationTimeout != "" {
		d, err := time.ParseDuration(fc.GenerationTimeout)
		if err != nil {
			return fmt.Errorf("config file %q: generation_timeout: %w", path, err)
		}
		c.GenerationTimeout = d
	}
	if fc.AgentConcurrency != 0 {
		c.AgentConcurrency = fc.AgentConcurrency
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	c.UseMockLLM = c.UseMockLLM || fc.UseMockLLM

	c.UseVertex = c.UseVertex || fc.Vertex.Enabled
	if fc.Vertex.Project != "" {
		c.GCPProjectID = fc.Vertex.Project
	}
	if fc.Vertex.Location != "" {
		c.GCPLocation = fc.Vertex.Location
	}

	c.TracingEnabled = c.TracingEnabled || fc.Tracing.Enabled
	if fc.Tracing.Endpoint != "" {
		c.TracingEndpoint = fc.Tracing.Endpoint
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv("RECOVERY_PORT", getEnv("PORT", c.Port))
	c.Provider = Provider(strings.ToLower(getEnv("RECOVERY_LLM_PROVIDER", string(c.Provider))))
	c.ModelName = getEnv("RECOVERY_MODEL_NAME", c.ModelName)
	c.LLMBaseURL = getEnv("RECOVERY_LLM_BASE_URL", c.LLMBaseURL)

	c.GeminiAPIKey = getEnv("GEMINI_API_KEY", os.Getenv("GOOGLE_API_KEY"))
	c.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")

	c.UseVertex = getBoolEnv("RECOVERY_USE_VERTEX", c.UseVertex)
	c.GCPProjectID = getEnv("RECOVERY_GCP_PROJECT", c.GCPProjectID)
	c.GCPLocation = getEnv("RECOVERY_GCP_LOCATION", c.GCPLocation)

	c.UseMockLLM = getBoolEnv("RECOVERY_USE_MOCK_LLM", c.UseMockLLM)
	c.LogLevel = getEnv("RECOVERY_LOG_LEVEL", c.LogLevel)

	c.TracingEnabled = getBoolEnv("RECOVERY_TRACING_ENABLED", c.TracingEnabled)
	c.TracingEndpoint = getEnv("RECOVERY_TRACING_ENDPOINT", c.TracingEndpoint)

	if v := os.Getenv("RECOVERY_GENERATION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("RECOVERY_GENERATION_TIMEOUT: %w", err)
		}
		c.GenerationTimeout = d
	}

	if v := os.Getenv("RECOVERY_AGENT_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RECOVERY_AGENT_CONCURRENCY: %w", err)
		}
		c.AgentConcurrency = n
	}
	return nil
}

// Validate checks settings that would make the server misbehave. A missing
// API key is not an error: the generator simply runs offline.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown llm provider %q (want gemini or anthropic)", c.Provider)
	}

	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if c.GenerationTimeout <= 0 {
		return fmt.Errorf("generation timeout must be positive, got %s", c.GenerationTimeout)
	}
	if c.AgentConcurrency < 1 {
		return fmt.Errorf("agent concurrency must be at least 1, got %d", c.AgentConcurrency)
	}
	if c.TracingEnabled && c.TracingEndpoint == "" {
		return fmt.Errorf("tracing endpoint must be set when tracing is enabled")
	}
	return nil
}

// APIKey returns the credential for the configured provider.
func (c *Config) APIKey() string {
	if c.Provider == ProviderAnthropic {
		return c.AnthropicAPIKey
	}
	return c.GeminiAPIKey
}
