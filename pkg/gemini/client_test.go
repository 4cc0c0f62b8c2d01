package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-appointment-scheduler/pkg/gemini"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Mock commands embedded in the prompt text.
		switch req.Contents[0].Parts[0].Text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "cause_empty":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"candidates": []}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "  mocked response string\n" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
}

func TestClient_GenerateContent(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	client := gemini.NewClientWithConfig(gemini.Config{
		APIKey: "test-api-key",
		APIURL: ts.URL,
	})

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Candidates) != 1 {
			t.Fatalf("expected 1 candidate")
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		_, err := client.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Bad API Key", func(t *testing.T) {
		badClient := gemini.NewClientWithConfig(gemini.Config{
			APIKey: "wrong-key",
			APIURL: ts.URL,
		})
		_, err := badClient.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "hi"}}}},
		})
		if err == nil {
			t.Fatalf("expected error from 401 response")
		}
	})
}

func TestClient_Complete(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	client := gemini.NewClientWithConfig(gemini.Config{
		APIKey: "test-api-key",
		APIURL: ts.URL,
	})

	t.Run("Trims reply", func(t *testing.T) {
		reply, err := client.Complete(context.Background(), "schedule something")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply != "mocked response string" {
			t.Errorf("reply = %q, want trimmed mock string", reply)
		}
	})

	t.Run("Empty candidates", func(t *testing.T) {
		_, err := client.Complete(context.Background(), "cause_empty")
		if err == nil {
			t.Fatalf("expected error for empty candidate list")
		}
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.Complete(ctx, "schedule something")
		if err == nil {
			t.Fatalf("expected error from cancelled context")
		}
	})
}

func TestClientDefaults(t *testing.T) {
	client := gemini.NewClient("key")
	if client.Model() != gemini.DefaultModel {
		t.Errorf("Model() = %q, want %q", client.Model(), gemini.DefaultModel)
	}
}
