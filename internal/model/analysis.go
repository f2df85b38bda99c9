package model

import (
	"time"

	"codescore/internal/analysis"
)

// SubScores breaks the combined complexity score into its three dimensions.
type SubScores struct {
	Structural      float64 `json:"structural"`
	Cognitive       float64 `json:"cognitive"`
	Maintainability float64 `json:"maintainability"`
}

// AnalysisResult is the full outcome of scoring one code snippet.
type AnalysisResult struct {
	ID         string            `json:"id"`
	Language   string            `json:"language"`
	Score      float64           `json:"score"`
	SubScores  SubScores         `json:"sub_scores"`
	Features   analysis.Features `json:"features"`
	Overridden bool              `json:"overridden"` // custom patterns were applied
	AnalyzedAt time.Time         `json:"analyzed_at"`
}

// ActorModelResult scores supervision-tree and actor idioms over name lists.
type ActorModelResult struct {
	ID                    string    `json:"id"`
	SupervisionComplexity float64   `json:"supervision_complexity"`
	ActorComplexity       float64   `json:"actor_complexity"`
	AnalyzedAt            time.Time `json:"analyzed_at"`
}
