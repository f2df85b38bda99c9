package analysis

import (
	"strings"
	"unicode"
)

// Features is the measurement record produced by one extraction pass over one
// code snippet. It is a plain value: built once, never mutated, never stored.
type Features struct {
	TotalLines       int     `json:"total_lines"`
	NonEmptyLines    int     `json:"non_empty_lines"`
	FunctionCount    int     `json:"function_count"`
	ControlFlowCount int     `json:"control_flow_count"`
	NestingDepth     int     `json:"nesting_depth"`
	OperatorCount    int     `json:"operator_count"`
	CommentRatio     float64 `json:"comment_ratio"`
	AvgIdentifierLen float64 `json:"avg_identifier_length"`
	Cyclomatic       float64 `json:"cyclomatic_complexity"`
}

// ExtractFeatures scans code once using the registry patterns for lang.
// It is total: empty input yields a zero record with Cyclomatic 1.0.
func ExtractFeatures(code string, lang Language) Features {
	ps := Patterns(lang)
	return extract(code, lang,
		ps.Function, ps.ControlFlow, ps.Operator, ps.Comment,
		[]string{ps.Opening}, []string{ps.Closing})
}

// ExtractFeaturesWithOverrides scans code using caller-supplied patterns for
// any overridden category, keeping registry defaults for the rest. The
// identifier-length and cyclomatic fields always come from the built-in
// tables for lang regardless of overrides.
func ExtractFeaturesWithOverrides(code string, lang Language, ov Overrides) Features {
	function, controlFlow, operator, comment, opening, closing := ov.resolve(lang)
	return extract(code, lang, function, controlFlow, operator, comment, opening, closing)
}

func extract(code string, lang Language, function, controlFlow, operator, comment, opening, closing []string) Features {
	lines := splitLines(code)

	nonEmpty := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonEmpty++
		}
	}

	return Features{
		TotalLines:       len(lines),
		NonEmptyLines:    nonEmpty,
		FunctionCount:    countPatterns(code, function),
		ControlFlowCount: countPatterns(code, controlFlow),
		NestingDepth:     maxNestingDepth(lines, opening, closing),
		OperatorCount:    countPatterns(code, operator),
		CommentRatio:     commentRatio(lines, comment),
		AvgIdentifierLen: avgIdentifierLength(code),
		Cyclomatic:       cyclomaticEstimate(code, lang),
	}
}

// splitLines splits on newlines, dropping the empty trailing element a final
// newline produces so "a\n" is one line and "" is zero lines.
func splitLines(code string) []string {
	if code == "" {
		return nil
	}
	lines := strings.Split(code, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// countPatterns sums non-overlapping substring occurrences of every pattern
// across the whole text. No word boundaries: "if " inside a string literal
// counts the same as real control flow.
func countPatterns(code string, patterns []string) int {
	total := 0
	for _, p := range patterns {
		if p == "" {
			continue
		}
		total += strings.Count(code, p)
	}
	return total
}

// maxNestingDepth runs a per-line delimiter balance: each line adds its
// opening occurrences, then subtracts its closing occurrences, clamped at
// zero. The maximum running depth is the estimate. Delimiters inside strings
// or comments are counted like any other, so lines with unbalanced quoted
// braces can overcount.
func maxNestingDepth(lines []string, opening, closing []string) int {
	maxDepth, depth := 0, 0

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, p := range opening {
			if p == "" {
				continue
			}
			depth += strings.Count(trimmed, p)
		}
		for _, p := range closing {
			if p == "" {
				continue
			}
			depth -= strings.Count(trimmed, p)
			if depth < 0 {
				depth = 0
			}
		}
		if depth > maxDepth {
			maxDepth = depth
		}
	}
	return maxDepth
}

// commentRatio is the fraction of lines whose trimmed text starts with a
// comment prefix, over all lines. Multi-line comment bodies are not tracked.
func commentRatio(lines []string, comment []string) float64 {
	if len(lines) == 0 {
		return 0.0
	}
	commentLines := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, p := range comment {
			if p != "" && strings.HasPrefix(trimmed, p) {
				commentLines++
				break
			}
		}
	}
	return float64(commentLines) / float64(len(lines))
}

// avgIdentifierLength averages the byte length of whitespace-separated tokens
// made up entirely of alphanumerics or underscores. Language-agnostic.
func avgIdentifierLength(code string) float64 {
	count, totalLen := 0, 0
	for _, word := range strings.Fields(code) {
		if !isIdentifier(word) {
			continue
		}
		count++
		totalLen += len(word)
	}
	if count == 0 {
		return 0.0
	}
	return float64(totalLen) / float64(count)
}

func isIdentifier(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// cyclomaticEstimate approximates McCabe complexity from occurrence counts:
// 1 + control-flow markers + half the logical-operator markers. Always uses
// the built-in tables for lang, never overrides.
func cyclomaticEstimate(code string, lang Language) float64 {
	ps := Patterns(lang)
	controlFlow := countPatterns(code, ps.ControlFlow)
	operators := countPatterns(code, ps.Operator)
	return 1.0 + float64(controlFlow) + float64(operators)*0.5
}
