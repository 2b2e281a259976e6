package model

// AI result status constants. Degraded results carry StatusError alongside a
// fixed fallback payload; they are never surfaced as server errors.
const (
	AIStatusSuccess = "success"
	AIStatusError   = "error"
)

// AIExplanation is a plain-language medicine explanation.
type AIExplanation struct {
	Explanation string `json:"explanation"`
	Status      string `json:"status"`
}

// AIRecommendation is a loosely structured insurance recommendation.
type AIRecommendation struct {
	Recommendations string `json:"recommendations"`
	Status          string `json:"status"`
}

// SchemeResult is a government-scheme lookup result.
type SchemeResult struct {
	Schemes string `json:"schemes"`
	Status  string `json:"status"`
}

// HealthTip is the daily tip payload.
type HealthTip struct {
	Tip  string `json:"tip"`
	Type string `json:"type"`
}

// ChatRequest is a free-form health question.
type ChatRequest struct {
	Query string `json:"query" binding:"required"`
}

// ChatResponse is the collaborator's answer or the fixed apology fallback.
type ChatResponse struct {
	Response string `json:"response"`
}
