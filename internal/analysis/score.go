package analysis

import "math"

// Score computes the combined complexity score for code in lang. The result
// is deterministic and lies in [0, ScoreCap]; with the current sub-score caps
// and blend weights the effective range is [0, 5].
func Score(code string, lang Language) float64 {
	return CombinedScore(ExtractFeatures(code, lang))
}

// ScoreWithOverrides is Score with caller-supplied pattern overrides applied
// to the extraction pass.
func ScoreWithOverrides(code string, lang Language, ov Overrides) float64 {
	return CombinedScore(ExtractFeaturesWithOverrides(code, lang, ov))
}

// CombinedScore blends the three sub-scores with fixed weights and clamps
// the result.
func CombinedScore(f Features) float64 {
	blended := StructuralScore(f)*WeightStructural +
		CognitiveScore(f)*WeightCognitive +
		MaintainabilityScore(f)*WeightMaintainability
	return math.Min(blended, ScoreCap)
}

// StructuralScore measures code organization: function and operator density
// per non-empty line, plus nesting depth squared so deep nesting is penalized
// super-linearly. Capped at SubScoreCap.
func StructuralScore(f Features) float64 {
	denom := float64(maxInt(f.NonEmptyLines, 1))
	functionDensity := float64(f.FunctionCount) / denom
	nestingFactor := math.Pow(float64(f.NestingDepth), 2) / NestingSquareDivisor
	operatorDensity := float64(f.OperatorCount) / denom

	score := functionDensity*WeightFunctionDensity + nestingFactor + operatorDensity*WeightOperatorDensity
	return math.Min(score, SubScoreCap)
}

// CognitiveScore models reading effort as a linear blend of branch count,
// nesting depth, and the cyclomatic estimate. Capped at SubScoreCap.
func CognitiveScore(f Features) float64 {
	score := float64(f.ControlFlowCount)*WeightControlFlow +
		float64(f.NestingDepth)*WeightNesting +
		f.Cyclomatic*WeightCyclomatic
	return math.Min(score, SubScoreCap)
}

// MaintainabilityScore sums three step functions: sparse comments, short
// identifiers, and long files each raise the penalty. The steps are coarse on
// purpose; values flip exactly at the thresholds.
func MaintainabilityScore(f Features) float64 {
	commentFactor := CommentFactorPoor
	if f.CommentRatio > ThresholdCommentRatio {
		commentFactor = CommentFactorGood
	}
	identifierFactor := IdentifierFactorPoor
	if f.AvgIdentifierLen > ThresholdIdentifierLen {
		identifierFactor = IdentifierFactorGood
	}
	lengthFactor := LengthFactorShort
	if f.NonEmptyLines > ThresholdLongFile {
		lengthFactor = LengthFactorLong
	}

	return math.Min(commentFactor+identifierFactor+lengthFactor, SubScoreCap)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
