package domain

import "strings"

// DefaultLanguageColor is used when a language has no entry in the color
// table.
const DefaultLanguageColor = "#6B7280"

// languageColors maps well-known language names to their dashboard colors.
// Lookup is case-insensitive.
var languageColors = map[string]string{
	"python":     "#3776AB",
	"javascript": "#F7DF1E",
	"typescript": "#3178C6",
	"go":         "#00ADD8",
	"rust":       "#DEA584",
	"java":       "#B07219",
	"kotlin":     "#A97BFF",
	"swift":      "#F05138",
	"c":          "#555555",
	"c++":        "#F34B7D",
	"c#":         "#178600",
	"ruby":       "#CC342D",
	"php":        "#4F5D95",
	"elixir":     "#6E4A7E",
	"haskell":    "#5E5086",
	"sql":        "#E38C00",
}

// ColorForLanguage returns the deterministic color for a language name,
// falling back to DefaultLanguageColor.
func ColorForLanguage(name string) string {
	if color, ok := languageColors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return color
	}
	return DefaultLanguageColor
}
