package analysis

import "testing"

func TestPatterns_EveryLanguageHasMarkers(t *testing.T) {
	for _, lang := range append(SupportedLanguages(), LangOther) {
		ps := Patterns(lang)
		if len(ps.Function) == 0 {
			t.Fatalf("Language %s has no function patterns", lang)
		}
		if len(ps.ControlFlow) == 0 {
			t.Fatalf("Language %s has no control flow patterns", lang)
		}
		if len(ps.Comment) == 0 {
			t.Fatalf("Language %s has no comment patterns", lang)
		}
		if ps.Opening == "" {
			t.Fatalf("Language %s has no opening delimiter", lang)
		}
	}
}

func TestPatterns_UnknownTagFallsBack(t *testing.T) {
	ps := Patterns(Language("cobol"))
	if ps.Function[0] != "def " || ps.Opening != "{" {
		t.Fatalf("Expected fallback pattern set for unknown tag, got %+v", ps)
	}
}

func TestPatterns_PythonHasNoClosingDelimiter(t *testing.T) {
	ps := Patterns(LangPython)
	if ps.Opening != ":" || ps.Closing != "" {
		t.Fatalf("Expected Python ':'/'' delimiters, got %q/%q", ps.Opening, ps.Closing)
	}
}

func TestParseLanguage(t *testing.T) {
	cases := map[string]Language{
		"Python":     LangPython,
		"py":         LangPython,
		"golang":     LangGo,
		"C++":        LangCpp,
		"c#":         LangCSharp,
		"TypeScript": LangTypeScript,
		"erl":        LangErlang,
		"":           LangOther,
		"brainfuck":  LangOther,
	}
	for input, want := range cases {
		if got := ParseLanguage(input); got != want {
			t.Fatalf("ParseLanguage(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestOverrides_IsZero(t *testing.T) {
	if !(Overrides{}).IsZero() {
		t.Fatal("Expected empty overrides to be zero")
	}
	if (Overrides{CommentPatterns: []string{"#"}}).IsZero() {
		t.Fatal("Expected non-empty overrides to not be zero")
	}
}
