package analysis

import "strings"

// Language identifies the source language of a code snippet. It is used as a
// key into the pattern tables; unrecognized values fall back to LangOther.
type Language string

const (
	LangElixir     Language = "elixir"
	LangRust       Language = "rust"
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangJava       Language = "java"
	LangCpp        Language = "cpp"
	LangGo         Language = "go"
	LangKotlin     Language = "kotlin"
	LangCSharp     Language = "csharp"
	LangErlang     Language = "erlang"
	LangGleam      Language = "gleam"
	LangLua        Language = "lua"
	LangOther      Language = "other"
)

// SupportedLanguages lists every language with a dedicated pattern table.
func SupportedLanguages() []Language {
	return []Language{
		LangElixir, LangRust, LangPython, LangJavaScript, LangTypeScript,
		LangJava, LangCpp, LangGo, LangKotlin, LangCSharp, LangErlang,
		LangGleam, LangLua,
	}
}

// ParseLanguage normalizes a caller-supplied language string to a Language
// tag. It never fails; anything unrecognized maps to LangOther.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "elixir", "ex", "exs":
		return LangElixir
	case "rust", "rs":
		return LangRust
	case "python", "py":
		return LangPython
	case "javascript", "js":
		return LangJavaScript
	case "typescript", "ts":
		return LangTypeScript
	case "java":
		return LangJava
	case "cpp", "c++", "cc", "cxx":
		return LangCpp
	case "go", "golang":
		return LangGo
	case "kotlin", "kt":
		return LangKotlin
	case "csharp", "c#", "cs":
		return LangCSharp
	case "erlang", "erl":
		return LangErlang
	case "gleam":
		return LangGleam
	case "lua":
		return LangLua
	default:
		return LangOther
	}
}
