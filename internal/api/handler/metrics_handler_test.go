package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/gym-dashboard/internal/domain"
	"github.com/blaisecz/gym-dashboard/internal/llm"
	"github.com/blaisecz/gym-dashboard/internal/service"
	"github.com/blaisecz/gym-dashboard/pkg/problem"
)

const validProfileBody = `{"gender":"male","age":30,"weight":{"value":70,"unit":"kg"},"height":{"value":175,"unit":"cm"},"activityLevel":"moderate","goal":"maintenance"}`

func TestMetricsHandler_Calculate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantStatusCode int
		wantField      string
	}{
		{
			name:           "valid input",
			body:           validProfileBody,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown weight unit",
			body:           `{"gender":"male","age":30,"weight":{"value":70,"unit":"stone"},"height":{"value":175,"unit":"cm"},"activityLevel":"moderate","goal":"maintenance"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
			wantField:      "weight.unit",
		},
		{
			name:           "zero height",
			body:           `{"gender":"female","age":30,"weight":{"value":70,"unit":"kg"},"height":{"value":0,"unit":"cm"},"activityLevel":"moderate","goal":"maintenance"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
			wantField:      "height.value",
		},
		{
			name:           "missing goal",
			body:           `{"gender":"other","age":30,"weight":{"value":70,"unit":"kg"},"height":{"value":175,"unit":"cm"},"activityLevel":"moderate"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
			wantField:      "goal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.HealthProfileInput
			handler := NewMetricsHandler(&MockMetricsService{
				calculateFunc: func(ctx context.Context, in domain.HealthProfileInput) domain.HealthMetrics {
					got = in
					return domain.HealthMetrics{BMI: 22.9, BMICategory: domain.BMINormal, TargetCalories: 2638}
				},
			}, &MockGuidanceService{})

			req := httptest.NewRequest(http.MethodPost, "/v1/health-metrics", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Calculate(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("Calculate() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantField != "" {
				var p problem.Problem
				json.NewDecoder(rec.Body).Decode(&p)
				if len(p.Errors) != 1 || p.Errors[0].Field != tt.wantField {
					t.Errorf("expected error on %s, got %+v", tt.wantField, p.Errors)
				}
				return
			}

			if rec.Code == http.StatusOK {
				var metrics domain.HealthMetrics
				json.NewDecoder(rec.Body).Decode(&metrics)
				if metrics.TargetCalories != 2638 || got.Weight.Value != 70 {
					t.Errorf("unexpected metrics %+v for input %+v", metrics, got)
				}
			}
		})
	}
}

func TestMetricsHandler_Guidance(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatusCode int
	}{
		{name: "success", wantStatusCode: http.StatusOK},
		{name: "not configured", err: service.ErrGuidanceUnavailable, wantStatusCode: http.StatusServiceUnavailable},
		{name: "llm request failed", err: llm.ErrOpenAIRequest, wantStatusCode: http.StatusBadGateway},
		{name: "llm response unparseable", err: llm.ErrOpenAIResponse, wantStatusCode: http.StatusBadGateway},
		{name: "unexpected error", err: context.Canceled, wantStatusCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewMetricsHandler(&MockMetricsService{}, &MockGuidanceService{
				generateFunc: func(ctx context.Context, in domain.HealthProfileInput) (*domain.GuidanceResponse, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.GuidanceResponse{Guidance: domain.GuidanceOutput{Summary: "Keep going"}}, nil
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/v1/health-metrics/guidance", bytes.NewBufferString(validProfileBody))
			rec := httptest.NewRecorder()

			handler.Guidance(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Guidance() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}
