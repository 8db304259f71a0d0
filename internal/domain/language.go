package domain

import "strings"

// languageIDs maps platform language names to the judge backend's
// language ids. Keys are matched case-insensitively; "cpp" and "c++"
// are aliases.
var languageIDs = map[string]int{
	"python":     71,
	"javascript": 63,
	"java":       62,
	"cpp":        54,
	"c++":        54,
	"c":          50,
	"go":         60,
}

// LanguageID resolves a language name to its judge id. The second return
// value is false for unsupported languages.
func LanguageID(language string) (int, bool) {
	id, ok := languageIDs[NormalizeLanguage(language)]
	return id, ok
}

// NormalizeLanguage lower-cases and trims a language name so lookups in
// driver/starter code maps and the id table agree.
func NormalizeLanguage(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}
