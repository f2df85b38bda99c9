package analysis

// Scoring weights and thresholds. The blend weights and caps are part of the
// score contract: scores computed with different constants are not comparable.
const (
	// Structural sub-score
	WeightFunctionDensity = 2.0
	WeightOperatorDensity = 1.5
	NestingSquareDivisor  = 10.0

	// Cognitive sub-score
	WeightControlFlow = 0.5
	WeightNesting     = 0.8
	WeightCyclomatic  = 0.3

	// Maintainability step functions
	ThresholdCommentRatio  = 0.2
	ThresholdIdentifierLen = 8.0
	ThresholdLongFile      = 100
	CommentFactorGood      = 0.5
	CommentFactorPoor      = 2.0
	IdentifierFactorGood   = 0.5
	IdentifierFactorPoor   = 1.5
	LengthFactorLong       = 1.5
	LengthFactorShort      = 0.5

	// Final blend
	WeightStructural      = 0.4
	WeightCognitive       = 0.4
	WeightMaintainability = 0.2

	// Each sub-score is capped at SubScoreCap. With the blend weights above
	// the weighted sum cannot exceed 5.0, so ScoreCap is currently
	// unreachable; it is kept as the documented ceiling of the score range.
	SubScoreCap = 5.0
	ScoreCap    = 10.0

	// Actor-model heuristics
	WeightSupervisor = 0.5
	WeightGenServer  = 0.3
	WeightSpawn      = 0.4
	WeightSend       = 0.3
	WeightReceive    = 0.3
	ActorScoreCap    = 10.0

	// Pattern effectiveness indicators
	ThresholdEffectiveCyclomatic = 5.0
	ThresholdEffectiveComments   = 0.2
	ThresholdEffectiveIdentLen   = 6.0
)
