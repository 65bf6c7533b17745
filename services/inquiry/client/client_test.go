package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/cardboard/services/inquiry/domain/models"
)

func validInquiry() models.Inquiry {
	return models.Inquiry{
		Name:    "Jo",
		Email:   "jo@x.com",
		Message: "Is the Griffey rookie still available?",
	}
}

func TestSubmit_Success(t *testing.T) {
	var gotPath string
	var gotBody models.Inquiry
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Inquiry sent successfully!","data":{"id":"msg-123"}}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).Submit(context.Background(), validInquiry())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/inquiry" {
		t.Errorf("posted to %q, want /api/inquiry", gotPath)
	}
	if gotBody.Name != "Jo" || gotBody.Email != "jo@x.com" {
		t.Errorf("unexpected posted body: %+v", gotBody)
	}
	if res.Data.ID != "msg-123" {
		t.Errorf("got id %q, want msg-123", res.Data.ID)
	}
	if res.Message != "Inquiry sent successfully!" {
		t.Errorf("got message %q", res.Message)
	}
}

// TestSubmit_LocalValidation: invalid inquiries never reach the network.
func TestSubmit_LocalValidation(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := New(srv.URL)

	tests := []struct {
		name    string
		mutate  func(*models.Inquiry)
		wantMsg string
	}{
		{"missing name", func(in *models.Inquiry) { in.Name = "" }, "Name is required."},
		{"bad email", func(in *models.Inquiry) { in.Email = "jo@nodot" }, "Please enter a valid email address."},
		{"short message", func(in *models.Inquiry) { in.Message = "short" }, "Message must be at least 10 characters long."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInquiry()
			tt.mutate(&in)
			_, err := c.Submit(context.Background(), in)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("got %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
	if called {
		t.Error("server must not be called for locally invalid inquiries")
	}
}

// TestSubmit_ServerRejection: the server's message is surfaced to the caller.
func TestSubmit_ServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Email service is not configured correctly on the server."}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Submit(context.Background(), validInquiry())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Email service is not configured correctly on the server.") {
		t.Errorf("expected the server message surfaced, got %q", err.Error())
	}
}

func TestSubmit_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Submit(context.Background(), validInquiry())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("expected the status code in the error, got %q", err.Error())
	}
}
