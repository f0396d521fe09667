package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"errand-planner/config"
	"errand-planner/pkg/llmprovider"
	"errand-planner/pkg/log"
)

// TestIntegration_ConfigToManagerFlow verifies that configuration loading,
// provider initialization, and manager work together correctly
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{
				Name:     "gemini",
				Enabled:  true,
				Priority: 2,
				APIKey:   "test-gemini-key",
				Model:    "gemini-2.5-flash",
				Timeout:  "30s",
			},
			{
				Name:     "openrouter",
				Enabled:  true,
				Priority: 1,
				APIKey:   "test-openrouter-key",
				Model:    "openai/gpt-oss-20b:free",
				Timeout:  "30s",
			},
			{
				Name:     "langchain",
				Enabled:  false,
				Priority: 3,
				APIKey:   "test-openai-key",
				Model:    "gpt-4o-mini",
			},
		},
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "1s",
		MaxTotalTimeout: "30s",
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}

	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}

	// Verify provider order (by priority)
	if providers[0].Name() != "openrouter" {
		t.Errorf("Expected first provider to be openrouter, got %s", providers[0].Name())
	}
	if providers[1].Name() != "gemini" {
		t.Errorf("Expected second provider to be gemini, got %s", providers[1].Name())
	}
	if providers[0].Model() != "openai/gpt-oss-20b:free" {
		t.Errorf("Unexpected model %s", providers[0].Model())
	}

	mcfg := llmprovider.ManagerConfig(cfg)
	if mcfg.RetryDelay != time.Second || mcfg.MaxTotalTimeout != 30*time.Second {
		t.Errorf("unexpected manager config %+v", mcfg)
	}
	manager := llmprovider.NewManager(providers, mcfg, log.NewNop())
	if manager == nil {
		t.Fatal("Expected manager to be created")
	}
}

func TestIntegration_LangChainProvider(t *testing.T) {
	providers, err := llmprovider.InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{{
			Name:     "langchain",
			Enabled:  true,
			Priority: 1,
			APIKey:   "test-openai-key",
			BaseURL:  "http://localhost:1/v1",
			Model:    "gpt-4o-mini",
		}},
	})
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if providers[0].Name() != "langchain" || providers[0].Model() != "gpt-4o-mini" {
		t.Errorf("Unexpected provider %s/%s", providers[0].Name(), providers[0].Model())
	}
}

func TestIntegration_InvalidProvidersSkipped(t *testing.T) {
	providers, err := llmprovider.InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "unknown", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
			{Name: "gemini", Enabled: true, Priority: 2, Model: "gemini-2.5-flash"},
			{Name: "openrouter", Enabled: true, Priority: 3, APIKey: "k", Model: "m", Timeout: "soon"},
			{Name: "openrouter", Enabled: true, Priority: 4, APIKey: "k", Model: "m"},
		},
	})
	if err != nil {
		t.Fatalf("Expected the valid provider to survive, got error: %v", err)
	}
	if len(providers) != 1 {
		t.Fatalf("Expected 1 provider, got %d", len(providers))
	}
}

func TestIntegration_NoProviders(t *testing.T) {
	_, err := llmprovider.InitializeProviders(&config.LLMConfig{})
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got %v", err)
	}

	manager := llmprovider.NewManager(nil, nil, log.NewNop())
	if _, err := manager.GenerateContent(context.Background(), &llmprovider.Request{}); !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured from empty manager, got %v", err)
	}
}

func TestIntegration_CompatibleProviders(t *testing.T) {
	providers, err := llmprovider.InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "k", Model: "deepseek-chat"},
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "k", Model: "qwen-plus"},
		},
	})
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Model() != "qwen-plus" || providers[1].Model() != "deepseek-chat" {
		t.Errorf("Unexpected order %s, %s", providers[0].Model(), providers[1].Model())
	}
}
