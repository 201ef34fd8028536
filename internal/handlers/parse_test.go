package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseHandler_ServeHTTP(t *testing.T) {
	text := "Run\n🔊 https://example.com/run.mp3\nto move fast\nI run daily\n====\n\n====\nWalk"

	handler := NewParseHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/notes/parse", jsonBody(t, ParseRequest{Text: text}))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ServeHTTP() status = %v, want %v", w.Code, http.StatusOK)
	}

	var got ParseResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Count != 2 || len(got.Notes) != 2 {
		t.Fatalf("ServeHTTP() count = %d, want 2", got.Count)
	}
	first := got.Notes[0]
	if first.Title != "Run" || first.Pronunciation != "https://example.com/run.mp3" || first.Definition != "to move fast" {
		t.Errorf("ServeHTTP() first note = %+v", first)
	}
	if len(first.Examples) != 1 || first.Examples[0] != "I run daily" {
		t.Errorf("ServeHTTP() examples = %v", first.Examples)
	}
}

func TestParseHandler_InvalidBody(t *testing.T) {
	handler := NewParseHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/notes/parse", bytes.NewBufferString("not json"))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("ServeHTTP() status = %v, want %v", w.Code, http.StatusBadRequest)
	}
}
