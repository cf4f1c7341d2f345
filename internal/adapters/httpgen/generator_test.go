package httpgen

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roadmapio/internal/application"
)

func TestGenerateRoadmap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sections": [{"title": "Basics", "topics": [{"title": "Syntax", "subtopics": ["Keywords"]}]}]}`))
	}))
	defer server.Close()

	gen := NewGenerator(server.URL)
	sections, err := gen.GenerateRoadmap(context.Background(), "Go Roadmap", "Go")
	if err != nil {
		t.Fatalf("GenerateRoadmap() error = %v", err)
	}
	if len(sections) != 1 || sections[0].Title != "Basics" {
		t.Fatalf("sections = %+v, want 1 section Basics", sections)
	}
	if got := sections[0].Topics[0].SubTopics; len(got) != 1 || got[0] != "Keywords" {
		t.Errorf("sub-topics = %v, want [Keywords]", got)
	}
}

func TestGenerateRoadmapStatusErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    error
	}{
		{"rate limited", http.StatusTooManyRequests, `{"error": "too many requests"}`, application.ErrRateLimited},
		{"insufficient balance", http.StatusPaymentRequired, `{"error": "balance exhausted"}`, application.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewGenerator(server.URL).GenerateRoadmap(context.Background(), "Go Roadmap", "Go")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GenerateRoadmap() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateRoadmapServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewGenerator(server.URL).GenerateRoadmap(context.Background(), "Go Roadmap", "Go")
	var genErr *application.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("GenerateRoadmap() error = %T, want *GenerationError", err)
	}
	if genErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", genErr.StatusCode)
	}
}

func TestGenerateRoadmapEmptySections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sections": []}`))
	}))
	defer server.Close()

	if _, err := NewGenerator(server.URL).GenerateRoadmap(context.Background(), "Go Roadmap", "Go"); err == nil {
		t.Error("GenerateRoadmap() should fail on an empty outline")
	}
}

func TestIsAvailable(t *testing.T) {
	if NewGenerator("").IsAvailable() {
		t.Error("IsAvailable() = true without an endpoint")
	}
	if !NewGenerator("http://localhost:9999").IsAvailable() {
		t.Error("IsAvailable() = false with an endpoint")
	}
}
