package analysis

// PatternSet holds the textual markers scanned for during feature extraction.
// The markers are plain substrings, not tokens: a marker inside a string
// literal or comment still counts. That trade is deliberate, the extractor
// stays a single substring pass with no lexer.
//
// Opening and Closing are the one delimiter pair used for the nesting-depth
// estimate. Python opens on ":" and has no closing token, so its measured
// depth never decreases within a snippet.
type PatternSet struct {
	Function    []string
	ControlFlow []string
	Operator    []string
	Comment     []string
	Opening     string
	Closing     string
}

// patternTables maps each supported language to its marker set. Scores are
// comparative across languages, so these tables are part of the contract:
// changing an entry shifts every score computed for that language.
var patternTables = map[Language]PatternSet{
	LangElixir: {
		Function:    []string{"def ", "defp ", "defmacro "},
		ControlFlow: []string{"if ", "unless ", "case ", "cond ", "with ", "for ", "while "},
		Operator:    []string{"&&", "||", "and", "or", "|>", "->", "=>"},
		Comment:     []string{"#"},
		Opening:     "{",
		Closing:     "}",
	},
	LangRust: {
		Function:    []string{"fn ", "async fn "},
		ControlFlow: []string{"if ", "match ", "while ", "for ", "loop "},
		Operator:    []string{"&&", "||", "&", "|", "->", "=>"},
		Comment:     []string{"//", "/*"},
		Opening:     "{",
		Closing:     "}",
	},
	LangPython: {
		Function:    []string{"def ", "async def "},
		ControlFlow: []string{"if ", "elif ", "else ", "for ", "while ", "try "},
		Operator:    []string{"and", "or", "not", "in", "is"},
		Comment:     []string{"#"},
		Opening:     ":",
		Closing:     "",
	},
	LangJavaScript: {
		Function:    []string{"function ", "=> ", "async function "},
		ControlFlow: []string{"if ", "else ", "for ", "while ", "switch ", "try "},
		Operator:    []string{"&&", "||", "!", "===", "!=="},
		Comment:     []string{"//", "/*"},
		Opening:     "{",
		Closing:     "}",
	},
	LangTypeScript: {
		Function:    []string{"function ", "=> ", "async function "},
		ControlFlow: []string{"if ", "else ", "for ", "while ", "switch ", "try "},
		Operator:    []string{"&&", "||", "!", "===", "!=="},
		Comment:     []string{"//", "/*"},
		Opening:     "{",
		Closing:     "}",
	},
	LangJava: {
		Function:    []string{"public ", "private ", "protected "},
		ControlFlow: []string{"if ", "else ", "for ", "while ", "switch ", "try "},
		Operator:    []string{"&&", "||", "!", "==", "!="},
		Comment:     []string{"//", "/*"},
		Opening:     "{",
		Closing:     "}",
	},
	LangCpp: {
		Function:    []string{"void ", "int ", "bool ", "string ", "char ", "float "},
		ControlFlow: []string{"if ", "else ", "for ", "while ", "switch ", "try "},
		Operator:    []string{"&&", "||", "!", "==", "!="},
		Comment:     []string{"//", "/*"},
		Opening:     "{",
		Closing:     "}",
	},
	LangGo: {
		Function:    []string{"func "},
		ControlFlow: []string{"if ", "else ", "for ", "switch "},
		Operator:    []string{"&&", "||", "!", "==", "!="},
		Comment:     []string{"//", "/*"},
		Opening:     "{",
		Closing:     "}",
	},
	LangKotlin: {
		Function:    []string{"fun ", "class ", "object "},
		ControlFlow: []string{"if ", "else ", "for ", "while ", "when ", "try "},
		Operator:    []string{"&&", "||", "!", "==", "!=", "===", "!=="},
		Comment:     []string{"//", "/*"},
		Opening:     "{",
		Closing:     "}",
	},
	LangCSharp: {
		Function:    []string{"void ", "public ", "private ", "async "},
		ControlFlow: []string{"if ", "else ", "for ", "while ", "switch ", "try "},
		Operator:    []string{"&&", "||", "!", "==", "!=", "??"},
		Comment:     []string{"//", "/*"},
		Opening:     "{",
		Closing:     "}",
	},
	LangErlang: {
		Function:    []string{"-spec ", "when "},
		ControlFlow: []string{"case ", "if ", "receive "},
		Operator:    []string{"and", "or", "not", "andalso", "orelse"},
		Comment:     []string{"%"},
		Opening:     "(",
		Closing:     ")",
	},
	LangGleam: {
		Function:    []string{"pub fn ", "fn "},
		ControlFlow: []string{"case ", "if ", "try "},
		Operator:    []string{"&&", "||", "!", "==", "!="},
		Comment:     []string{"//"},
		Opening:     "{",
		Closing:     "}",
	},
	LangLua: {
		Function:    []string{"function "},
		ControlFlow: []string{"if ", "elseif ", "for ", "while "},
		Operator:    []string{"and", "or", "not"},
		Comment:     []string{"--"},
		Opening:     "do",
		Closing:     "end",
	},
}

// fallbackPatterns is used for LangOther and any tag missing from the table.
var fallbackPatterns = PatternSet{
	Function:    []string{"def ", "function ", "fn "},
	ControlFlow: []string{"if ", "else ", "for ", "while ", "case "},
	Operator:    []string{"&&", "||", "!", "==", "!="},
	Comment:     []string{"//", "#"},
	Opening:     "{",
	Closing:     "}",
}

// Patterns returns the marker set for a language. Total: unknown tags get the
// fallback set, so the extractor can always proceed.
func Patterns(lang Language) PatternSet {
	if ps, ok := patternTables[lang]; ok {
		return ps
	}
	return fallbackPatterns
}

// Overrides lets a caller replace pattern categories for a single extraction.
// Each field is independently optional; a nil field keeps the registry default
// for that category. Delimiters are lists here, unlike the registry's single
// pair: every opening pattern adds to the depth and every closing pattern
// subtracts from it.
//
// Identifier-length and cyclomatic computation always use the built-in
// language tables and cannot be overridden.
type Overrides struct {
	FunctionPatterns    []string `json:"function_patterns,omitempty" yaml:"function_patterns"`
	ControlFlowPatterns []string `json:"control_flow_patterns,omitempty" yaml:"control_flow_patterns"`
	OperatorPatterns    []string `json:"operator_patterns,omitempty" yaml:"operator_patterns"`
	OpeningDelimiters   []string `json:"opening_delimiters,omitempty" yaml:"opening_delimiters"`
	ClosingDelimiters   []string `json:"closing_delimiters,omitempty" yaml:"closing_delimiters"`
	CommentPatterns     []string `json:"comment_patterns,omitempty" yaml:"comment_patterns"`
}

// IsZero reports whether no category is overridden.
func (o Overrides) IsZero() bool {
	return o.FunctionPatterns == nil && o.ControlFlowPatterns == nil &&
		o.OperatorPatterns == nil && o.OpeningDelimiters == nil &&
		o.ClosingDelimiters == nil && o.CommentPatterns == nil
}

// resolve merges the overrides onto the registry entry for lang, returning
// the effective pattern lists for one extraction pass.
func (o Overrides) resolve(lang Language) (function, controlFlow, operator, comment, opening, closing []string) {
	ps := Patterns(lang)

	function = ps.Function
	if o.FunctionPatterns != nil {
		function = o.FunctionPatterns
	}
	controlFlow = ps.ControlFlow
	if o.ControlFlowPatterns != nil {
		controlFlow = o.ControlFlowPatterns
	}
	operator = ps.Operator
	if o.OperatorPatterns != nil {
		operator = o.OperatorPatterns
	}
	comment = ps.Comment
	if o.CommentPatterns != nil {
		comment = o.CommentPatterns
	}
	opening = []string{ps.Opening}
	if o.OpeningDelimiters != nil {
		opening = o.OpeningDelimiters
	}
	closing = []string{ps.Closing}
	if o.ClosingDelimiters != nil {
		closing = o.ClosingDelimiters
	}
	return function, controlFlow, operator, comment, opening, closing
}
