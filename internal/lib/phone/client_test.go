package phone

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/barbershop-api/internal/config"
	"github.com/rs/zerolog"
)

func newTestClient(baseURL string) *Client {
	logger := zerolog.Nop()
	cfg := &config.Config{
		NumVerify: config.NumVerifyConfig{
			APIKey:      "test-key",
			BaseURL:     baseURL,
			CountryCode: "BR",
		},
	}
	return NewClient(cfg, &logger)
}

func TestVerifyValidNumber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("number"); got != "11987654321" {
			t.Errorf("number query param = %q, want %q", got, "11987654321")
		}
		if got := r.URL.Query().Get("country_code"); got != "BR" {
			t.Errorf("country_code query param = %q, want %q", got, "BR")
		}
		if got := r.URL.Query().Get("format"); got != "1" {
			t.Errorf("format query param = %q, want %q", got, "1")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"valid": true,
			"number": "5511987654321",
			"local_format": "11987654321",
			"international_format": "+5511987654321",
			"country_code": "BR",
			"country_name": "Brazil",
			"location": "Sao Paulo",
			"carrier": "Vivo",
			"line_type": "mobile"
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Verify(context.Background(), "11987654321")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if result.Outcome != OutcomeValid {
		t.Fatalf("Outcome = %v, want %v", result.Outcome, OutcomeValid)
	}
	if result.Carrier != "Vivo" {
		t.Errorf("Carrier = %q, want %q", result.Carrier, "Vivo")
	}
	if result.InternationalFormat != "+5511987654321" {
		t.Errorf("InternationalFormat = %q, want %q", result.InternationalFormat, "+5511987654321")
	}
}

func TestVerifyInvalidNumber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"valid": false, "number": "123"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Verify(context.Background(), "123")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if result.Outcome != OutcomeInvalid {
		t.Fatalf("Outcome = %v, want %v", result.Outcome, OutcomeInvalid)
	}
}

func TestVerifyServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Verify(context.Background(), "11987654321")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if result.Outcome != OutcomeUnreachable {
		t.Fatalf("Outcome = %v, want %v", result.Outcome, OutcomeUnreachable)
	}
}

func TestVerifyTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	// Close immediately so the request fails at the transport level.
	server.Close()

	client := newTestClient(server.URL)

	result, err := client.Verify(context.Background(), "11987654321")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if result.Outcome != OutcomeUnreachable {
		t.Fatalf("Outcome = %v, want %v", result.Outcome, OutcomeUnreachable)
	}
}

func TestVerifyCredentialRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": false,
			"error": {"code": 101, "type": "invalid_access_key", "info": "You have not supplied a valid API Access Key."}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Verify(context.Background(), "11987654321")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if result.Outcome != OutcomeUnreachable {
		t.Fatalf("Outcome = %v, want %v", result.Outcome, OutcomeUnreachable)
	}
}

func TestVerifyMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Verify(context.Background(), "11987654321")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if result.Outcome != OutcomeUnreachable {
		t.Fatalf("Outcome = %v, want %v", result.Outcome, OutcomeUnreachable)
	}
}

func TestVerifyContextCancelled(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	client := newTestClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result, err := client.Verify(ctx, "11987654321")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if result.Outcome != OutcomeUnreachable {
		t.Fatalf("Outcome = %v, want %v", result.Outcome, OutcomeUnreachable)
	}
}
