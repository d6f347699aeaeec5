package relay

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blaisecz/gym-dashboard/internal/domain"
)

func samplePayload() domain.HealthProfileSubmission {
	return domain.HealthProfileSubmission{
		HealthProfileFormData: domain.HealthProfileInput{
			Gender:        domain.GenderMale,
			Age:           30,
			Weight:        domain.Weight{Value: 70, Unit: domain.WeightUnitKg},
			Height:        domain.Height{Value: 175, Unit: domain.HeightUnitCm},
			ActivityLevel: domain.ActivityModerate,
			Goal:          domain.GoalMaintenance,
		},
		HealthMetrics: domain.HealthMetrics{
			BMI:            22.9,
			BMICategory:    domain.BMINormal,
			BMR:            1702,
			TDEE:           2638,
			TargetCalories: 2638,
			Macros:         domain.Macros{Protein: 198, Carbs: 264, Fat: 88},
		},
	}
}

func TestNewClient_Disabled(t *testing.T) {
	c := NewClient(Config{})
	if c.IsEnabled() {
		t.Fatal("expected client to be disabled")
	}

	result := c.SubmitHealthProfile(context.Background(), "token", samplePayload())
	if result.Success {
		t.Error("expected failure from disabled client")
	}
	if result.Error != DisabledError {
		t.Errorf("expected %q, got %q", DisabledError, result.Error)
	}
}

func TestSubmitHealthProfile_Success(t *testing.T) {
	var receivedBody map[string]any
	var receivedAuth, receivedPath, receivedMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedAuth = r.Header.Get("Authorization")
		receivedPath = r.URL.Path
		receivedMethod = r.Method

		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &receivedBody)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"profileId":"p-1"}}`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL + "/"})
	if !c.IsEnabled() {
		t.Fatal("expected client to be enabled")
	}

	result := c.SubmitHealthProfile(context.Background(), "abc123", samplePayload())

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if string(result.Data) != `{"profileId":"p-1"}` {
		t.Errorf("unexpected data: %s", result.Data)
	}
	if receivedMethod != http.MethodPost || receivedPath != SubmitPath {
		t.Errorf("unexpected request %s %s", receivedMethod, receivedPath)
	}
	if receivedAuth != "Bearer abc123" {
		t.Errorf("expected bearer token, got %q", receivedAuth)
	}

	form, ok := receivedBody["healthProfileFormData"].(map[string]any)
	if !ok {
		t.Fatalf("missing healthProfileFormData: %v", receivedBody)
	}
	if form["activityLevel"] != "moderate" || form["gender"] != "male" {
		t.Errorf("unexpected form data: %v", form)
	}
	weight := form["weight"].(map[string]any)
	if weight["value"] != 70.0 || weight["unit"] != "kg" {
		t.Errorf("unexpected weight: %v", weight)
	}

	metrics, ok := receivedBody["healthMetrics"].(map[string]any)
	if !ok {
		t.Fatalf("missing healthMetrics: %v", receivedBody)
	}
	if metrics["bmiCategory"] != "Normal weight" || metrics["targetCalories"] != 2638.0 {
		t.Errorf("unexpected metrics: %v", metrics)
	}
}

func TestSubmitHealthProfile_NoTokenOmitsHeader(t *testing.T) {
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	result := NewClient(Config{BaseURL: server.URL}).SubmitHealthProfile(context.Background(), "", samplePayload())
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Error)
	}
	if hasAuth {
		t.Error("expected no Authorization header")
	}
}

func TestSubmitHealthProfile_Failures(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantError string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`boom`))
			},
			wantError: GenericError,
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantError: GenericError,
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>`))
			},
			wantError: GenericError,
		},
		{
			name: "no content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			wantError: GenericError,
		},
		{
			name: "created with empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
			},
			wantError: GenericError,
		},
		{
			name: "backend rejects with message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success":false,"error":"Profile already submitted"}`))
			},
			wantError: "Profile already submitted",
		},
		{
			name: "backend rejects without message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success":false}`))
			},
			wantError: GenericError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			result := NewClient(Config{BaseURL: server.URL}).SubmitHealthProfile(context.Background(), "t", samplePayload())
			if result.Success {
				t.Fatal("expected failure")
			}
			if result.Error != tt.wantError {
				t.Errorf("expected error %q, got %q", tt.wantError, result.Error)
			}
		})
	}
}

func TestSubmitHealthProfile_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL, Timeout: 20 * time.Millisecond})
	result := c.SubmitHealthProfile(context.Background(), "", samplePayload())
	if result.Success || result.Error != GenericError {
		t.Errorf("expected generic failure on timeout, got %+v", result)
	}
}

func TestSubmitHealthProfile_UnreachableBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	result := NewClient(Config{BaseURL: url}).SubmitHealthProfile(context.Background(), "", samplePayload())
	if result.Success || result.Error != GenericError {
		t.Errorf("expected generic failure, got %+v", result)
	}
}
