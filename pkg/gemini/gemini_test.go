package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"financial-agent/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/"+gemini.DefaultModel+":generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		contents := req["contents"].([]any)
		parts := contents[0].(map[string]any)["parts"].([]any)
		if parts[0].(map[string]any)["text"] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if _, ok := req["system_instruction"]; !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {"parts": [{"text": "mocked "}, {"text": "response"}], "role": "model"},
					"finishReason": "STOP"
				}
			],
			"usageMetadata": {"promptTokenCount": 20, "candidatesTokenCount": 2, "totalTokenCount": 22}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: "You are a financial analyst",
			Messages:          []gemini.Message{{Role: "user", Text: "Hello world"}},
			Temperature:       0.1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "mocked response" {
			t.Errorf("unexpected content response: %s", resp.Text)
		}
		if resp.Usage.TotalTokens != 22 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: "x",
			Messages:          []gemini.Message{{Role: "user", Text: "cause_500"}},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Empty Request", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), &gemini.Request{}); err == nil {
			t.Fatalf("expected error for empty request")
		}
	})
}

func TestNew_Validate(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
	c, err := gemini.New(gemini.Config{APIKey: "k", Model: "gemini-pro"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != "gemini-pro" {
		t.Errorf("unexpected model %s", c.Model())
	}
}
