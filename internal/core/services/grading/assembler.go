package grading

import (
	"regexp"
	"strings"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/domain"
)

// assemblyStrategy builds the final source sent to the judge for one
// language. New languages with special needs get an entry in the table;
// everything else takes the default concatenation path.
type assemblyStrategy func(userCode, driver string) string

var assemblyStrategies = map[string]assemblyStrategy{
	"java": assembleJava,
}

// AssembleSource combines user code with the problem's driver snippet for
// the given language. Total function: any string input yields a result,
// and unusable combinations surface later as a normal compile verdict
// from the judge.
func AssembleSource(userCode string, driverCode map[string]string, language string) string {
	lang := domain.NormalizeLanguage(language)
	driver, ok := lookupDriver(driverCode, lang)
	if !ok || strings.TrimSpace(driver) == "" {
		return userCode
	}
	if strategy, ok := assemblyStrategies[lang]; ok {
		return strategy(userCode, driver)
	}
	return concatWithDriver(userCode, driver)
}

// lookupDriver resolves the driver template for a language, honoring the
// cpp/c++ aliasing so templates stored under either key are found.
func lookupDriver(driverCode map[string]string, lang string) (string, bool) {
	if driver, ok := driverCode[lang]; ok {
		return driver, true
	}
	switch lang {
	case "cpp":
		driver, ok := driverCode["c++"]
		return driver, ok
	case "c++":
		driver, ok := driverCode["cpp"]
		return driver, ok
	}
	return "", false
}

func concatWithDriver(userCode, driver string) string {
	return userCode + "\n\n" + strings.TrimSpace(normalizeIndentation(driver))
}

// normalizeIndentation strips the leading-whitespace prefix of the
// template's first non-blank line from every line that carries it.
// Drivers authored inside indented string literals would otherwise break
// indentation-sensitive languages.
func normalizeIndentation(driver string) string {
	lines := strings.Split(driver, "\n")
	prefix := ""
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		prefix = line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		break
	}
	if prefix == "" {
		return driver
	}
	for i, line := range lines {
		if strings.HasPrefix(line, prefix) {
			lines[i] = strings.TrimPrefix(line, prefix)
		}
	}
	return strings.Join(lines, "\n")
}

func assembleJava(userCode, driver string) string {
	return concatWithDriver(rewriteJavaSolution(userCode), driver)
}

var javaClassDecl = regexp.MustCompile(`\b(public\s+)?((?:final\s+|abstract\s+)*)class\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

var javaPublicSolution = regexp.MustCompile(`\bpublic\s+((?:final\s+|abstract\s+)*class\s+Solution\b)`)

// javaHelperClasses are well-known data-structure companions that must
// never be mistaken for the solution entry point.
var javaHelperClasses = map[string]struct{}{
	"ListNode":  {},
	"TreeNode":  {},
	"Node":      {},
	"GraphNode": {},
	"TrieNode":  {},
	"Pair":      {},
	"Edge":      {},
	"Interval":  {},
	"Point":     {},
}

// rewriteJavaSolution makes user code compatible with a driver that
// expects a non-public class named Solution. If the user already wrote a
// Solution class only its public modifier is dropped (the harness owns
// the single public class). Otherwise the best candidate class is renamed
// to Solution, both at its declaration and at every constructor call.
// When nothing matches the code is left alone and the judge reports a
// compile error.
func rewriteJavaSolution(code string) string {
	matches := javaClassDecl.FindAllStringSubmatch(code, -1)
	if len(matches) == 0 {
		return code
	}

	for _, m := range matches {
		if m[3] == "Solution" {
			return javaPublicSolution.ReplaceAllString(code, "$1")
		}
	}

	candidate := pickJavaCandidate(matches)
	if candidate == "" {
		return code
	}

	declRe := regexp.MustCompile(`\b(?:public\s+)?((?:final\s+|abstract\s+)*class\s+)` + regexp.QuoteMeta(candidate) + `\b`)
	code = declRe.ReplaceAllString(code, "${1}Solution")

	ctorRe := regexp.MustCompile(`\bnew\s+` + regexp.QuoteMeta(candidate) + `\b`)
	return ctorRe.ReplaceAllString(code, "new Solution")
}

// pickJavaCandidate prefers the first public class, then the first class
// of any visibility, skipping known helper names.
func pickJavaCandidate(matches [][]string) string {
	fallback := ""
	for _, m := range matches {
		name := m[3]
		if _, helper := javaHelperClasses[name]; helper {
			continue
		}
		if m[1] != "" {
			return name
		}
		if fallback == "" {
			fallback = name
		}
	}
	return fallback
}
