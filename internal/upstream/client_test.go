package upstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mkaraca/careergate/internal/app/models"
	"github.com/mkaraca/careergate/internal/pkg/apperrors"
	"github.com/mkaraca/careergate/internal/upstream"
)

func newTestClients(t *testing.T, handler http.Handler) (*upstream.Clients, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	core, err := upstream.NewClient(upstream.Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, srv.Client(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	return upstream.NewClients(core), srv
}

func TestAuthLogin_Success(t *testing.T) {
	clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login/" {
			http.NotFound(w, r)
			return
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		if body["email"] != "ada@uni.edu" || body["userType"] != "student" {
			http.Error(w, "wrong payload", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user_id":42,"redirect_url":"/student"}`))
	}))

	result, err := clients.Auth.Login(context.Background(), models.Credentials{
		Email:    "ada@uni.edu",
		Password: "hunter22",
		UserType: models.RoleStudent,
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.UserID != 42 {
		t.Errorf("UserID = %d, want 42", result.UserID)
	}
	if result.RedirectURL != "/student" {
		t.Errorf("RedirectURL = %q, want /student", result.RedirectURL)
	}
}

func TestAuthLogin_InvalidCredentials(t *testing.T) {
	clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	}))

	_, err := clients.Auth.Login(context.Background(), models.Credentials{
		Email:    "ada@uni.edu",
		Password: "wrong",
		UserType: models.RoleStudent,
	})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}

	var apiErr *apperrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *apperrors.APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", apiErr.Status)
	}
	if apiErr.Message != "invalid credentials" {
		t.Errorf("Message = %q, want upstream message", apiErr.Message)
	}
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Error("401 APIError should match ErrInvalidCredentials")
	}
}

func TestErrorContractAcrossStatuses(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{http.StatusBadRequest, apperrors.ErrBadRequest},
		{http.StatusUnauthorized, apperrors.ErrInvalidCredentials},
		{http.StatusForbidden, apperrors.ErrPermissionDenied},
		{http.StatusNotFound, apperrors.ErrResourceNotFound},
	}

	for _, tt := range tests {
		clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			_, _ = w.Write([]byte(`{"error":"nope"}`))
		}))

		_, err := clients.Student.Profile(context.Background(), 1)
		if err == nil {
			t.Fatalf("status %d: expected error", tt.status)
		}
		if !errors.Is(err, tt.sentinel) {
			t.Errorf("status %d: error %v does not match sentinel", tt.status, err)
		}
	}
}

func TestTransportFailureWrapsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	core, err := upstream.NewClient(upstream.Config{BaseURL: srv.URL, Timeout: time.Second}, srv.Client(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	clients := upstream.NewClients(core)
	// Close before calling so the connection is refused.
	srv.Close()

	_, err = clients.CareerFair.ListPositions(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if !errors.Is(err, apperrors.ErrUpstreamUnreachable) {
		t.Errorf("error %v should wrap ErrUpstreamUnreachable", err)
	}

	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		t.Error("transport failure must not surface as an APIError")
	}
}

func TestPositionApply_SendsIdentifiers(t *testing.T) {
	var got map[string]int64
	clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/careerFair/position/apply/" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))

	if err := clients.Position.Apply(context.Background(), 9, 42); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got["position_id"] != 9 || got["user_id"] != 42 {
		t.Errorf("payload = %v, want position_id=9 user_id=42", got)
	}
}

func TestAdminVerify_SendsBearerToken(t *testing.T) {
	var gotAuth string
	clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))

	if err := clients.Auth.AdminVerify(context.Background(), "tok-123"); err != nil {
		t.Fatalf("AdminVerify failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
}

func TestErrorBodyShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"from message"}`, "from message"},
		{"error field", `{"error":"from error"}`, "from error"},
		{"detail field", `{"detail":"from detail"}`, "from detail"},
		{"garbage body", `<html>oops</html>`, "request failed"},
		{"empty body", ``, "request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := clients.Faculty.Profile(context.Background(), 5)
			var apiErr *apperrors.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error type = %T, want *apperrors.APIError", err)
			}
			if apiErr.Message != tt.want {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.want)
			}
		})
	}
}
