package analysis

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestExtractFeatures_EmptyInput(t *testing.T) {
	f := ExtractFeatures("", LangPython)

	if f.TotalLines != 0 || f.NonEmptyLines != 0 {
		t.Fatalf("Expected zero line counts, got total=%d non_empty=%d", f.TotalLines, f.NonEmptyLines)
	}
	if f.CommentRatio != 0.0 {
		t.Fatalf("Expected comment ratio 0.0, got %v", f.CommentRatio)
	}
	if f.AvgIdentifierLen != 0.0 {
		t.Fatalf("Expected avg identifier length 0.0, got %v", f.AvgIdentifierLen)
	}
	if f.Cyclomatic != 1.0 {
		t.Fatalf("Expected baseline cyclomatic 1.0, got %v", f.Cyclomatic)
	}
}

func TestExtractFeatures_Python(t *testing.T) {
	code := "def f():\n    if x:\n        return 1\n"
	f := ExtractFeatures(code, LangPython)

	if f.TotalLines != 3 || f.NonEmptyLines != 3 {
		t.Fatalf("Expected 3 lines, got total=%d non_empty=%d", f.TotalLines, f.NonEmptyLines)
	}
	if f.FunctionCount != 1 {
		t.Fatalf("Expected function count 1 for 'def ', got %d", f.FunctionCount)
	}
	if f.ControlFlowCount != 1 {
		t.Fatalf("Expected control flow count 1 for 'if ', got %d", f.ControlFlowCount)
	}
	// Python nesting opens on ':' and has no closing token, so depth only
	// grows: two colons means depth 2. Known limitation of the heuristic.
	if f.NestingDepth != 2 {
		t.Fatalf("Expected nesting depth 2, got %d", f.NestingDepth)
	}
	// 1 + 1 control flow + 0 operators
	if !approx(f.Cyclomatic, 2.0) {
		t.Fatalf("Expected cyclomatic 2.0, got %v", f.Cyclomatic)
	}
}

func TestExtractFeatures_GoNesting(t *testing.T) {
	code := "func f() {\n if x {\n  return\n }\n}\n"
	f := ExtractFeatures(code, LangGo)

	if f.NestingDepth != 2 {
		t.Fatalf("Expected max nesting depth 2, got %d", f.NestingDepth)
	}
	if f.FunctionCount != 1 {
		t.Fatalf("Expected function count 1 for 'func ', got %d", f.FunctionCount)
	}
	if f.ControlFlowCount != 1 {
		t.Fatalf("Expected control flow count 1, got %d", f.ControlFlowCount)
	}
}

func TestExtractFeatures_UnbalancedClosersClampAtZero(t *testing.T) {
	code := "}\n}\nfunc f() {\n}\n"
	f := ExtractFeatures(code, LangGo)

	if f.NestingDepth != 1 {
		t.Fatalf("Expected depth 1 with leading closers clamped, got %d", f.NestingDepth)
	}
}

func TestExtractFeatures_CommentRatio(t *testing.T) {
	code := "# one\n# two\nx = 1\ny = 2\n"
	f := ExtractFeatures(code, LangPython)

	if !approx(f.CommentRatio, 0.5) {
		t.Fatalf("Expected comment ratio 0.5, got %v", f.CommentRatio)
	}
}

func TestExtractFeatures_AvgIdentifierLength(t *testing.T) {
	// Identifier tokens: abc (3) and longer_name (11); "x;" is rejected.
	code := "abc x; longer_name"
	f := ExtractFeatures(code, LangOther)

	if !approx(f.AvgIdentifierLen, 7.0) {
		t.Fatalf("Expected avg identifier length 7.0, got %v", f.AvgIdentifierLen)
	}
}

func TestExtractFeatures_NonNegative(t *testing.T) {
	samples := []string{
		"",
		"}}}}}",
		"def f():\n    pass\n",
		"if x { } else { }",
		"-- comment only\n",
		"receive\n    X -> ok\nend\n",
	}
	for _, lang := range append(SupportedLanguages(), LangOther) {
		for _, code := range samples {
			f := ExtractFeatures(code, lang)
			if f.TotalLines < 0 || f.NonEmptyLines < 0 || f.FunctionCount < 0 ||
				f.ControlFlowCount < 0 || f.NestingDepth < 0 || f.OperatorCount < 0 {
				t.Fatalf("Negative count for lang=%s code=%q: %+v", lang, code, f)
			}
			if f.CommentRatio < 0.0 || f.CommentRatio > 1.0 {
				t.Fatalf("Comment ratio out of range for lang=%s: %v", lang, f.CommentRatio)
			}
			if f.Cyclomatic < 1.0 {
				t.Fatalf("Cyclomatic below baseline for lang=%s: %v", lang, f.Cyclomatic)
			}
			if f.AvgIdentifierLen < 0.0 {
				t.Fatalf("Negative avg identifier length for lang=%s: %v", lang, f.AvgIdentifierLen)
			}
		}
	}
}

func TestExtractFeaturesWithOverrides_FunctionPatterns(t *testing.T) {
	code := "square = lambda x: x * x\n"

	base := ExtractFeatures(code, LangPython)
	if base.FunctionCount != 0 {
		t.Fatalf("Expected no 'def ' matches, got %d", base.FunctionCount)
	}

	ov := Overrides{FunctionPatterns: []string{"lambda "}}
	f := ExtractFeaturesWithOverrides(code, LangPython, ov)
	if f.FunctionCount != 1 {
		t.Fatalf("Expected function count 1 with lambda override, got %d", f.FunctionCount)
	}
}

func TestExtractFeaturesWithOverrides_KeepsDefaultsForOtherCategories(t *testing.T) {
	code := "def f():\n    if x:\n        return 1\n"
	ov := Overrides{CommentPatterns: []string{";;"}}
	f := ExtractFeaturesWithOverrides(code, LangPython, ov)

	// Function and control-flow categories still use the registry entry.
	if f.FunctionCount != 1 || f.ControlFlowCount != 1 {
		t.Fatalf("Expected registry defaults for non-overridden categories, got %+v", f)
	}
	if f.CommentRatio != 0.0 {
		t.Fatalf("Expected comment ratio 0.0 with ';;' override, got %v", f.CommentRatio)
	}
}

func TestExtractFeaturesWithOverrides_CyclomaticNotOverridable(t *testing.T) {
	code := "if x:\n    pass\n"
	// Empty the control-flow category; the cyclomatic estimate must still be
	// derived from the built-in Python table.
	ov := Overrides{ControlFlowPatterns: []string{}}
	f := ExtractFeaturesWithOverrides(code, LangPython, ov)

	if f.ControlFlowCount != 0 {
		t.Fatalf("Expected control flow count 0 with empty override, got %d", f.ControlFlowCount)
	}
	if f.Cyclomatic < 2.0 {
		t.Fatalf("Expected cyclomatic from built-in patterns (>= 2.0), got %v", f.Cyclomatic)
	}
}

func TestExtractFeaturesWithOverrides_MultiDelimiterNesting(t *testing.T) {
	code := "begin\nbegin\nend\nend\n"
	ov := Overrides{
		OpeningDelimiters: []string{"begin"},
		ClosingDelimiters: []string{"end"},
	}
	f := ExtractFeaturesWithOverrides(code, LangOther, ov)

	if f.NestingDepth != 2 {
		t.Fatalf("Expected nesting depth 2 with custom delimiters, got %d", f.NestingDepth)
	}
}
