package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"errand-planner/pkg/gemini"
	"errand-planner/pkg/openrouter"
)

type fakeOpenRouter struct {
	lastReq *openrouter.Request
}

func (f *fakeOpenRouter) ChatCompletion(ctx context.Context, req *openrouter.Request) (*openrouter.Response, error) {
	f.lastReq = req
	return &openrouter.Response{
		Content: `{"tasks":[]}`,
		Usage:   &openrouter.Usage{InputTokens: 3, OutputTokens: 2, TotalTokens: 5},
	}, nil
}

func (f *fakeOpenRouter) Model() string { return "or-model" }

type fakeGemini struct {
	lastReq *gemini.Request
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.lastReq = req
	return &gemini.Response{Text: "hi", Usage: &gemini.Usage{TotalTokens: 7}}, nil
}

func (f *fakeGemini) Model() string { return "gemini-model" }

type fakeLLM struct {
	messages []llms.MessageContent
	opts     llms.CallOptions
	resp     *llms.ContentResponse
}

func (f *fakeLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	for _, opt := range options {
		opt(&f.opts)
	}
	return f.resp, nil
}

func (f *fakeLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func TestOpenRouterAdapter(t *testing.T) {
	client := &fakeOpenRouter{}
	adapter := NewOpenRouterAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), newUserRequest("coffee"))
	require.NoError(t, err)

	require.Len(t, client.lastReq.Messages, 2)
	assert.Equal(t, "system", client.lastReq.Messages[0].Role)
	assert.Equal(t, "json only", client.lastReq.Messages[0].Content)
	assert.Equal(t, "coffee", client.lastReq.Messages[1].Content)
	assert.True(t, client.lastReq.JSONMode)
	assert.Equal(t, 0.3, client.lastReq.Temperature)

	assert.Equal(t, `{"tasks":[]}`, resp.Content)
	assert.Equal(t, "openrouter", resp.ProviderName)
	assert.Equal(t, 5, resp.Usage.TotalTokens)
}

func TestGeminiAdapter(t *testing.T) {
	client := &fakeGemini{}
	adapter := NewGeminiAdapter(client)

	req := newUserRequest("coffee")
	req.Messages = append(req.Messages, Message{Role: "assistant", Content: "ok"})

	resp, err := adapter.GenerateContent(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "json only", client.lastReq.SystemInstruction)
	assert.True(t, client.lastReq.JSONMode)
	require.Len(t, client.lastReq.Messages, 2)
	assert.Equal(t, "model", client.lastReq.Messages[1].Role)
	assert.Equal(t, "hi", resp.Content)
	assert.Equal(t, "gemini-model", resp.ModelName)
}

func TestLangChainAdapter(t *testing.T) {
	t.Run("maps messages and options", func(t *testing.T) {
		llm := &fakeLLM{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{
			Content:        `{"tasks":[]}`,
			GenerationInfo: map[string]any{"PromptTokens": 4, "CompletionTokens": 2, "TotalTokens": 6},
		}}}}
		adapter := NewLangChainAdapter(llm, "gpt-4o-mini")

		resp, err := adapter.GenerateContent(context.Background(), newUserRequest("coffee"))
		require.NoError(t, err)

		require.Len(t, llm.messages, 2)
		assert.Equal(t, llms.ChatMessageTypeSystem, llm.messages[0].Role)
		assert.Equal(t, llms.ChatMessageTypeHuman, llm.messages[1].Role)
		assert.True(t, llm.opts.JSONMode)
		assert.Equal(t, 0.3, llm.opts.Temperature)

		assert.Equal(t, `{"tasks":[]}`, resp.Content)
		assert.Equal(t, 6, resp.Usage.TotalTokens)
		assert.Equal(t, "langchain", adapter.Name())
	})

	t.Run("no choices yields empty content", func(t *testing.T) {
		adapter := NewLangChainAdapter(&fakeLLM{resp: &llms.ContentResponse{}}, "m")
		resp, err := adapter.GenerateContent(context.Background(), newUserRequest("x"))
		require.NoError(t, err)
		assert.True(t, resp.IsEmpty())
	})
}

type blockingProvider struct{ mockProvider }

func (b *blockingProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(&blockingProvider{mockProvider{name: "slow"}}, 20*time.Millisecond)

	_, err := p.GenerateContent(context.Background(), newUserRequest("x"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "slow", p.Name())

	plain := &mockProvider{name: "plain"}
	assert.Same(t, Provider(plain), WithTimeout(plain, 0))
}
