package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/gym-dashboard/internal/domain"
)

func TestNewOpenAIClient_NoKey(t *testing.T) {
	if c := NewOpenAIClient("", "gpt-4o-mini"); c != nil {
		t.Fatal("expected nil client without API key")
	}
}

func TestNewOpenAIClient_DefaultModel(t *testing.T) {
	c := NewOpenAIClient("sk-test", "")
	if c == nil || c.model != "gpt-4o-mini" {
		t.Fatalf("expected default model, got %+v", c)
	}
}

func TestGenerateGuidance_NilClient(t *testing.T) {
	var c *OpenAIClient
	_, err := c.GenerateGuidance(context.Background(), &domain.GuidanceContext{})
	if !errors.Is(err, ErrOpenAIUnavailable) {
		t.Fatalf("expected ErrOpenAIUnavailable, got %v", err)
	}
}

func TestParseGuidance(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "valid",
			content: `{"summary":"Aim for 2,638 kcal.","nutrition":["Eat protein at every meal"],"training":["Lift 3x a week"]}`,
		},
		{name: "not json", content: "Sure! Here is your plan", wantErr: true},
		{name: "empty summary", content: `{"summary":"","nutrition":[],"training":[]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := parseGuidance(tt.content)
			if tt.wantErr {
				if !errors.Is(err, ErrOpenAIResponse) {
					t.Fatalf("expected ErrOpenAIResponse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Summary == "" || len(out.Nutrition) != 1 || len(out.Training) != 1 {
				t.Errorf("unexpected output: %+v", out)
			}
		})
	}
}
