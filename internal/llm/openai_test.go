package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
)

func mockOpenAI(t *testing.T, content string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Expected Authorization header Bearer test-key, got %s", r.Header.Get("Authorization"))
		}

		switch r.URL.Path {
		case "/models":
			_ = json.NewEncoder(w).Encode(openai.ModelsList{Models: []openai.Model{{ID: "gpt-4o-mini"}}})
		case "/chat/completions":
			var req openai.ChatCompletionRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode request: %v", err)
			}
			if len(req.Messages) != 2 || req.Messages[0].Role != openai.ChatMessageRoleSystem {
				t.Errorf("Expected system and user messages, got %+v", req.Messages)
			}
			if req.MaxTokens != 200 {
				t.Errorf("Expected max tokens 200, got %d", req.MaxTokens)
			}
			_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
				ID:    "chatcmpl-123",
				Model: req.Model,
				Choices: []openai.ChatCompletionChoice{{
					Message:      openai.ChatCompletionMessage{Role: "assistant", Content: "  " + content + "\n"},
					FinishReason: "stop",
				}},
				Usage: openai.Usage{TotalTokens: 100},
			})
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOpenAIProvider_Complete_Success(t *testing.T) {
	server := mockOpenAI(t, "Risk is driven by blood pressure.")

	provider, err := NewOpenAIProvider(Config{
		APIKey:    "test-key",
		BaseURL:   server.URL,
		Model:     "gpt-4o-mini",
		Timeout:   5,
		MaxTokens: 200,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if !provider.IsAvailable(context.Background()) {
		t.Fatal("Expected provider to be available")
	}

	resp, err := provider.Complete(context.Background(), Request{System: SystemPrompt, Prompt: "hello"})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if resp.Text != "Risk is driven by blood pressure." {
		t.Errorf("Unexpected text %q", resp.Text)
	}
	if resp.Model != "gpt-4o-mini" {
		t.Errorf("Expected model gpt-4o-mini, got %s", resp.Model)
	}
	if resp.TokensUsed != 100 {
		t.Errorf("Expected 100 tokens, got %d", resp.TokensUsed)
	}
}

func TestOpenAIProvider_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{APIKey: "wrong", BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if provider.IsAvailable(context.Background()) {
		t.Error("Expected provider to be unavailable")
	}
	if _, err := provider.Complete(context.Background(), Request{Prompt: "hello"}); err == nil {
		t.Error("Expected error from API")
	}
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{}); err == nil {
		t.Error("Expected error without API key")
	}
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(Config{Provider: ""})
	if err != nil || p != nil {
		t.Errorf("Expected disabled provider, got %v, %v", p, err)
	}

	p, err = NewProvider(Config{Provider: "Ollama"})
	if err != nil {
		t.Fatalf("Ollama provider failed: %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Expected name ollama, got %s", p.Name())
	}

	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Error("Expected error for openai without key")
	}

	if _, err := NewProvider(Config{Provider: "bard"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}
