package service

import (
	"time"

	"codescore/internal/analysis"
	"codescore/internal/config"
	"codescore/internal/model"
	"codescore/internal/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalysisService wraps the pure analysis package with request-level
// concerns: configured per-language overrides, result IDs, metrics, and
// logging. It holds no mutable state and is safe for concurrent use.
type AnalysisService struct {
	config *config.Config
	logger *zap.Logger
}

func NewAnalysisService(cfg *config.Config, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		config: cfg,
		logger: logger,
	}
}

// AnalyzeCode scores one snippet. Request overrides take precedence over
// overrides configured for the language; with neither, the built-in pattern
// tables are used. Never fails: unknown languages fall back to the default
// pattern set.
func (s *AnalysisService) AnalyzeCode(code, language string, ov *analysis.Overrides) *model.AnalysisResult {
	lang := analysis.ParseLanguage(language)
	if lang == analysis.LangOther && language != "" {
		s.logger.Debug("Unrecognized language, using fallback patterns",
			zap.String("language", language))
	}

	start := time.Now()
	features, overridden := s.extract(code, lang, ov)
	score := analysis.CombinedScore(features)

	observability.AnalysisDuration.WithLabelValues(string(lang)).Observe(time.Since(start).Seconds())
	observability.AnalysesTotal.WithLabelValues(string(lang)).Inc()
	if overridden {
		observability.OverrideAnalysesTotal.Inc()
	}

	result := &model.AnalysisResult{
		ID:       uuid.NewString(),
		Language: string(lang),
		Score:    score,
		SubScores: model.SubScores{
			Structural:      analysis.StructuralScore(features),
			Cognitive:       analysis.CognitiveScore(features),
			Maintainability: analysis.MaintainabilityScore(features),
		},
		Features:   features,
		Overridden: overridden,
		AnalyzedAt: time.Now().UTC(),
	}

	s.logger.Info("Analyzed code snippet",
		zap.String("analysis_id", result.ID),
		zap.String("language", string(lang)),
		zap.Float64("score", result.Score),
		zap.Int("total_lines", features.TotalLines),
		zap.Bool("overridden", overridden))

	return result
}

// ExtractFeatures runs the extraction pass alone, without scoring.
func (s *AnalysisService) ExtractFeatures(code, language string, ov *analysis.Overrides) (analysis.Features, analysis.Language) {
	lang := analysis.ParseLanguage(language)
	features, _ := s.extract(code, lang, ov)
	return features, lang
}

func (s *AnalysisService) extract(code string, lang analysis.Language, ov *analysis.Overrides) (analysis.Features, bool) {
	effective := s.resolveOverrides(lang, ov)
	if effective == nil {
		return analysis.ExtractFeatures(code, lang), false
	}
	return analysis.ExtractFeaturesWithOverrides(code, lang, *effective), true
}

// resolveOverrides picks the effective override set for one analysis:
// request overrides win, then configured per-language overrides, then none.
func (s *AnalysisService) resolveOverrides(lang analysis.Language, ov *analysis.Overrides) *analysis.Overrides {
	if ov != nil && !ov.IsZero() {
		return ov
	}
	lp, ok := s.config.GetLanguagePatterns(string(lang))
	if !ok {
		return nil
	}
	configured := analysis.Overrides{
		FunctionPatterns:    lp.FunctionPatterns,
		ControlFlowPatterns: lp.ControlFlowPatterns,
		OperatorPatterns:    lp.OperatorPatterns,
		OpeningDelimiters:   lp.OpeningDelimiters,
		ClosingDelimiters:   lp.ClosingDelimiters,
		CommentPatterns:     lp.CommentPatterns,
	}
	if configured.IsZero() {
		return nil
	}
	return &configured
}

// AnalyzeActorModel applies the supervision and actor heuristics to module
// and function name lists.
func (s *AnalysisService) AnalyzeActorModel(modules, functions []string) *model.ActorModelResult {
	observability.ActorAnalysesTotal.Inc()

	result := &model.ActorModelResult{
		ID:                    uuid.NewString(),
		SupervisionComplexity: analysis.SupervisionComplexity(modules),
		ActorComplexity:       analysis.ActorComplexity(functions),
		AnalyzedAt:            time.Now().UTC(),
	}

	s.logger.Info("Analyzed actor model",
		zap.String("analysis_id", result.ID),
		zap.Int("modules", len(modules)),
		zap.Int("functions", len(functions)),
		zap.Float64("supervision_complexity", result.SupervisionComplexity),
		zap.Float64("actor_complexity", result.ActorComplexity))

	return result
}

// PatternEffectiveness rates a named pattern against an already-extracted
// feature record.
func (s *AnalysisService) PatternEffectiveness(pattern string, features analysis.Features) float64 {
	return analysis.PatternEffectiveness(pattern, features)
}
