package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	customMiddleware "teampulse-backend/internal/middleware"
	"teampulse-backend/internal/models"
	"teampulse-backend/internal/notify"
	"teampulse-backend/internal/repository"

	"github.com/go-chi/chi/v5"
)

const testJWTSecret = "test-secret"

// newTestServer wires the handlers the same way cmd/server does, backed
// by the seeded in-memory stores.
func newTestServer(t *testing.T, demoMode bool) *httptest.Server {
	t.Helper()

	userStore := repository.NewMemoryUserStore(repository.SeedUsers())
	feedbackStore := repository.NewMemoryFeedbackStore(repository.SeedFeedback())
	notifier := notify.NewMockNotifier()

	authHandler := NewAuthHandler(userStore, testJWTSecret, demoMode)
	feedbackHandler := NewFeedbackHandler(feedbackStore, userStore, notifier)
	userHandler := NewUserHandler(userStore)
	dashboardHandler := NewDashboardHandler(feedbackStore, userStore)

	r := chi.NewRouter()
	r.Post("/api/auth/login", authHandler.Login)
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.JWTAuth(testJWTSecret))

		r.Get("/api/auth/me", authHandler.Me)
		r.Get("/api/users/team", userHandler.Team)

		r.Post("/api/feedback", feedbackHandler.Create)
		r.Get("/api/feedback/given", feedbackHandler.Given)
		r.Get("/api/feedback/received", feedbackHandler.Received)
		r.Put("/api/feedback/{id}", feedbackHandler.Update)
		r.Put("/api/feedback/{id}/acknowledge", feedbackHandler.Acknowledge)

		r.Get("/api/dashboard/manager", dashboardHandler.Manager)
		r.Get("/api/dashboard/employee", dashboardHandler.Employee)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, email, password string) string {
	t.Helper()

	status, body := doRequest(t, srv, http.MethodPost, "/api/auth/login", "",
		LoginRequest{Email: email, Password: password})
	if status != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", email, status, body)
	}

	var resp LoginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login returned empty token")
	}
	return resp.Token
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, token string, payload interface{}) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, srv.URL+path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, raw
}

func decodeFeedback(t *testing.T, body []byte) models.Feedback {
	t.Helper()
	var fb models.Feedback
	if err := json.Unmarshal(body, &fb); err != nil {
		t.Fatalf("decode feedback: %v (body %s)", err, body)
	}
	return fb
}
