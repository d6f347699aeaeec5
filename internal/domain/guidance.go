package domain

// GuidanceOutput is the structured coaching guidance returned by the LLM.
// @Description LLM-generated, non-medical coaching guidance.
type GuidanceOutput struct {
	// Two to three sentence summary of the metrics
	Summary string `json:"summary" example:"Your maintenance intake is around 2,600 kcal..."`
	// Nutrition suggestions (3-5 items)
	Nutrition []string `json:"nutrition"`
	// Training suggestions (3-5 items)
	Training []string `json:"training"`
}

// GuidanceContext is the data sent to the LLM.
type GuidanceContext struct {
	Profile HealthProfileInput `json:"profile"`
	Metrics HealthMetrics      `json:"metrics"`
}

// GuidanceResponse is the response for the guidance endpoint.
// @Description Metrics plus coaching guidance.
type GuidanceResponse struct {
	Metrics  HealthMetrics  `json:"metrics"`
	Guidance GuidanceOutput `json:"guidance"`
	// OTel trace ID of the request, when tracing is enabled
	TraceID string `json:"trace_id,omitempty"`
}
