package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Errand pipeline
	Places   PlacesConfig
	Routing  RoutingConfig
	Pipeline PipelineConfig
	History  HistoryConfig
	Calendar CalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
	MaxClients     int
	ClientTTL      time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// PlacesConfig configures the Foursquare places search.
type PlacesConfig struct {
	APIKey    string
	BaseURL   string
	Radius    int
	Limit     int
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

// RoutingConfig configures Google Directions. An empty APIKey selects the
// local distance sort.
type RoutingConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type PipelineConfig struct {
	ParallelResolve bool
	MaxConcurrency  int
}

// HistoryConfig selects the history store. Driver is memory, sqlite or postgres.
type HistoryConfig struct {
	Driver string
	DSN    string
}

type CalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")
	cfg.RateLimit.ClientTTL = viper.GetDuration("rate_limit.client_ttl")

	// Split allowed origins since viper might not parse array seamlessly from env
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// A missing LLM section is allowed: extraction then always uses the keyword fallback.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, fmt.Errorf("invalid llm config: %w", err)
		}
	}

	// Places
	cfg.Places.APIKey = expandEnvVar(viper.GetString("places.api_key"))
	if placesKey := viper.GetString("foursquare_api_key"); placesKey != "" {
		cfg.Places.APIKey = placesKey
	}
	cfg.Places.BaseURL = viper.GetString("places.base_url")
	cfg.Places.Radius = viper.GetInt("places.radius")
	cfg.Places.Limit = viper.GetInt("places.limit")
	cfg.Places.Timeout = viper.GetDuration("places.timeout")
	cfg.Places.CacheSize = viper.GetInt("places.cache_size")
	cfg.Places.CacheTTL = viper.GetDuration("places.cache_ttl")

	// Routing
	cfg.Routing.APIKey = expandEnvVar(viper.GetString("routing.api_key"))
	if mapsKey := viper.GetString("google_maps_api_key"); mapsKey != "" {
		cfg.Routing.APIKey = mapsKey
	}
	cfg.Routing.BaseURL = viper.GetString("routing.base_url")
	cfg.Routing.Timeout = viper.GetDuration("routing.timeout")

	// Pipeline
	cfg.Pipeline.ParallelResolve = viper.GetBool("pipeline.parallel_resolve")
	cfg.Pipeline.MaxConcurrency = viper.GetInt("pipeline.max_concurrency")

	// History
	cfg.History.Driver = viper.GetString("history.driver")
	cfg.History.DSN = expandEnvVar(viper.GetString("history.dsn"))
	if err := validateHistoryConfig(&cfg.History); err != nil {
		return nil, err
	}

	// Calendar
	cfg.Calendar.Enabled = viper.GetBool("calendar.enabled")
	cfg.Calendar.CredentialsPath = viper.GetString("calendar.credentials_path")
	cfg.Calendar.CalendarID = viper.GetString("calendar.calendar_id")
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.Calendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 30)
	viper.SetDefault("rate_limit.burst", 5)
	viper.SetDefault("rate_limit.max_clients", 10000)
	viper.SetDefault("rate_limit.client_ttl", "10m")
	viper.SetDefault("cors.allowed_origins", "*")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "30s")

	// Pipeline defaults
	viper.SetDefault("places.base_url", "https://places-api.foursquare.com")
	viper.SetDefault("places.radius", 3000)
	viper.SetDefault("places.limit", 20)
	viper.SetDefault("places.timeout", "10s")
	viper.SetDefault("places.cache_size", 256)
	viper.SetDefault("places.cache_ttl", "5m")
	viper.SetDefault("routing.base_url", "https://maps.googleapis.com/maps/api")
	viper.SetDefault("routing.timeout", "10s")
	viper.SetDefault("pipeline.parallel_resolve", false)
	viper.SetDefault("pipeline.max_concurrency", 4)
	viper.SetDefault("history.driver", HistoryDriverMemory)
	viper.SetDefault("calendar.enabled", false)
	viper.SetDefault("calendar.calendar_id", "primary")
	viper.SetDefault("calendar.timezone", "UTC")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			// Check priority is valid
			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			// Check for duplicate priorities
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func validateHistoryConfig(cfg *HistoryConfig) error {
	switch cfg.Driver {
	case HistoryDriverMemory:
		return nil
	case HistoryDriverSQLite, HistoryDriverPostgres:
		if cfg.DSN == "" {
			return fmt.Errorf("history: dsn is required for driver %s", cfg.Driver)
		}
		return nil
	default:
		return fmt.Errorf("history: unknown driver %q", cfg.Driver)
	}
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
