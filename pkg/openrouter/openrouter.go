package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newOpenRouterImpl creates a new OpenRouter implementation
func newOpenRouterImpl(cfg Config) *openRouterImpl {
	return &openRouterImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		appName:    cfg.AppName,
		appURL:     cfg.AppURL,
		httpClient: cfg.HTTPClient,
	}
}

// ChatCompletion sends a chat completion request to OpenRouter
func (o *openRouterImpl) ChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(o.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("openrouter: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openrouter: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if o.appName != "" {
		httpReq.Header.Set("X-Title", o.appName)
	}
	if o.appURL != "" {
		httpReq.Header.Set("HTTP-Referer", o.appURL)
	}

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openrouter: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openrouter: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("openrouter: failed to decode response: %w", err)
	}

	// OpenRouter reports some upstream failures with a 200 and an error body.
	if chatResp.Error != nil {
		return nil, fmt.Errorf("openrouter: upstream error %d: %s", chatResp.Error.Code, chatResp.Error.Message)
	}

	return o.transformResponse(&chatResp), nil
}

// Model returns the model being used
func (o *openRouterImpl) Model() string {
	return o.model
}

func (o *openRouterImpl) transformRequest(req *Request) *chatRequest {
	chatReq := &chatRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatMessage, 0, len(req.Messages)),
	}

	for _, msg := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, chatMessage{Role: msg.Role, Content: msg.Content})
	}

	if req.JSONMode {
		chatReq.ResponseFormat = &responseFormat{Type: responseFormatJSON}
	}

	return chatReq
}

func (o *openRouterImpl) transformResponse(resp *chatResponse) *Response {
	out := &Response{
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return out
	}

	out.Content = resp.Choices[0].Message.Content
	out.FinishReason = resp.Choices[0].FinishReason
	return out
}
