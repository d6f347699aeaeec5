package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaisecz/gym-dashboard/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical fitness coaching assistant for a gym.

You receive a client's intake answers (gender, age, weight, height, activity level, goal, dietary preferences, allergies) and metrics computed from them (BMI, BMR, TDEE, target calories, macro grams). Base everything only on the provided data.

Your goals:
- Explain the client's calorie target and macro split in plain language.
- Suggest practical eating habits that fit the macro targets, dietary preferences and allergies.
- Suggest a training focus that fits the goal and activity level.

Rules:
- Do NOT provide medical advice or diagnoses, even if medical conditions are listed.
- Never recommend foods the client listed as allergies.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2–3 sentences summarizing the targets.",
  "nutrition": ["3–5 concrete nutrition suggestions"],
  "training": ["3–5 concrete training suggestions"]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this client's intake and computed targets.

- "profile" holds the intake answers with their units.
- "metrics" holds bmi, bmiCategory, bmr, tdee, targetCalories and macros (grams per day).

JSON:

%s

Based on this data, respond in the required JSON format.`

// GuidanceLLM is the interface for generating coaching guidance using an LLM.
type GuidanceLLM interface {
	GenerateGuidance(ctx context.Context, guidanceCtx *domain.GuidanceContext) (*domain.GuidanceOutput, error)
}

// OpenAIClient implements GuidanceLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating guidance.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateGuidance calls OpenAI to generate coaching guidance.
func (c *OpenAIClient) GenerateGuidance(ctx context.Context, guidanceCtx *domain.GuidanceContext) (*domain.GuidanceOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(guidanceCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(contextJSON))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return parseGuidance(resp.Choices[0].Message.Content)
}

func parseGuidance(content string) (*domain.GuidanceOutput, error) {
	var output domain.GuidanceOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if output.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	return &output, nil
}
