package llmprovider

import (
	"context"
	"time"

	"github.com/tmc/langchaingo/llms"

	"errand-planner/pkg/gemini"
	"errand-planner/pkg/openrouter"
)

const (
	providerOpenRouter = "openrouter"
	providerGemini     = "gemini"
	providerLangChain  = "langchain"

	// OpenAI-compatible endpoints served through the langchaingo client
	providerOpenAI   = "openai"
	providerQwen     = "qwen"
	providerDeepSeek = "deepseek"

	roleSystem    = "system"
	roleUser      = "user"
	roleAssistant = "assistant"
	roleModel     = "model"
)

// OpenRouterAdapter adapts pkg/openrouter to llmprovider.Provider interface
type OpenRouterAdapter struct {
	client openrouter.IOpenRouter
}

// NewOpenRouterAdapter creates a new OpenRouter adapter
func NewOpenRouterAdapter(client openrouter.IOpenRouter) *OpenRouterAdapter {
	return &OpenRouterAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenRouterAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	orReq := &openrouter.Request{
		Messages:    make([]openrouter.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
	}
	if req.SystemInstruction != "" {
		orReq.Messages = append(orReq.Messages, openrouter.Message{Role: roleSystem, Content: req.SystemInstruction})
	}
	for _, msg := range req.Messages {
		orReq.Messages = append(orReq.Messages, openrouter.Message{Role: msg.Role, Content: msg.Content})
	}

	resp, err := a.client.ChatCompletion(ctx, orReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      resp.Content,
		ProviderName: providerOpenRouter,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *OpenRouterAdapter) Name() string {
	return providerOpenRouter
}

// Model returns model name
func (a *OpenRouterAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          make([]gemini.Content, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONMode:          req.JSONMode,
	}
	for i, msg := range req.Messages {
		role := msg.Role
		if role == roleAssistant {
			role = roleModel
		}
		geminiReq.Messages[i] = gemini.Content{Role: role, Text: msg.Content}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      resp.Text,
		ProviderName: providerGemini,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return providerGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// LangChainAdapter adapts any langchaingo llms.Model to llmprovider.Provider.
// Used for OpenAI-compatible endpoints configured through llms/openai.
type LangChainAdapter struct {
	model     llms.Model
	modelName string
}

// NewLangChainAdapter creates a new langchaingo adapter
func NewLangChainAdapter(model llms.Model, modelName string) *LangChainAdapter {
	return &LangChainAdapter{model: model, modelName: modelName}
}

// GenerateContent implements Provider interface
func (a *LangChainAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]llms.MessageContent, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, req.SystemInstruction))
	}
	for _, msg := range req.Messages {
		msgType := llms.ChatMessageTypeHuman
		if msg.Role == roleAssistant {
			msgType = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(msgType, msg.Content))
	}

	opts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.JSONMode {
		opts = append(opts, llms.WithJSONMode())
	}

	resp, err := a.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return nil, err
	}

	out := &Response{
		ProviderName: providerLangChain,
		ModelName:    a.modelName,
		Usage:        &Usage{},
	}
	if len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return out, nil
	}

	choice := resp.Choices[0]
	out.Content = choice.Content
	out.Usage = &Usage{
		InputTokens:  intFromInfo(choice.GenerationInfo, "PromptTokens"),
		OutputTokens: intFromInfo(choice.GenerationInfo, "CompletionTokens"),
		TotalTokens:  intFromInfo(choice.GenerationInfo, "TotalTokens"),
	}
	return out, nil
}

// Name returns provider name
func (a *LangChainAdapter) Name() string {
	return providerLangChain
}

// Model returns model name
func (a *LangChainAdapter) Model() string {
	return a.modelName
}

func intFromInfo(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// timeoutProvider bounds every call of the wrapped provider.
type timeoutProvider struct {
	Provider
	timeout time.Duration
}

// WithTimeout wraps p so each GenerateContent call runs under its own deadline.
// A non-positive timeout returns p unchanged.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &timeoutProvider{Provider: p, timeout: timeout}
}

func (p *timeoutProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.Provider.GenerateContent(ctx, req)
}
