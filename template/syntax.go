package template

import (
	"regexp"
	"strings"
)

// helperNames lists the built-in helper function names.
var helperNames = []string{
	"truncate", "json", "upper", "lower", "trim", "join", "default", "indent",
}

// goTemplateKeywords are Go template reserved words that must not be
// rewritten into variable references.
var goTemplateKeywords = map[string]bool{
	"else":     true,
	"end":      true,
	"if":       true,
	"range":    true,
	"with":     true,
	"define":   true,
	"template": true,
	"block":    true,
}

var (
	ifPattern   = regexp.MustCompile(`\{\{#if\s+([\w.]+)\}\}`)
	eachPattern = regexp.MustCompile(`\{\{#each\s+([\w.]+)\}\}`)
	varPattern  = regexp.MustCompile(`\{\{\s*([a-zA-Z_][\w.]*)\s*\}\}`)
)

// convertSyntax converts Handlebars-like syntax to Go template syntax.
//
// Conversions:
//   - {{variable}} and {{ nested.path }} -> {{.variable}}
//   - {{#if x}}...{{/if}} -> {{if .x}}...{{end}}
//   - {{#each items}}...{{/each}} -> {{range .items}}...{{end}}
//   - {{helper arg1 arg2}} -> {{helper .arg1 .arg2}}
func convertSyntax(input string) string {
	result := ifPattern.ReplaceAllString(input, "{{if .$1}}")
	result = strings.ReplaceAll(result, "{{/if}}", "{{end}}")

	result = eachPattern.ReplaceAllString(result, "{{range .$1}}")
	result = strings.ReplaceAll(result, "{{/each}}", "{{end}}")

	result = varPattern.ReplaceAllStringFunc(result, func(match string) string {
		name := strings.TrimSpace(match[2 : len(match)-2])
		if goTemplateKeywords[name] {
			return match
		}
		return "{{." + name + "}}"
	})

	return convertHelperCalls(result)
}

// convertHelperCalls converts helper function calls to Go template syntax.
// {{helper arg1 arg2}} -> {{helper .arg1 .arg2}}
func convertHelperCalls(input string) string {
	for _, helper := range helperNames {
		pattern := regexp.MustCompile(`\{\{` + helper + `\s+([^{}]+)\}\}`)
		input = pattern.ReplaceAllStringFunc(input, func(match string) string {
			argsStart := len("{{") + len(helper) + 1
			argsEnd := len(match) - 2
			args := strings.TrimSpace(match[argsStart:argsEnd])
			return "{{" + helper + " " + convertArguments(args) + "}}"
		})
	}
	return input
}

// convertArguments converts a space-separated list of arguments.
// Variables become .variable; literals (numbers, quoted strings, booleans)
// stay as-is.
func convertArguments(args string) string {
	parts := splitArguments(args)
	for i, part := range parts {
		part = strings.TrimSpace(part)

		if strings.HasPrefix(part, ".") {
			continue
		}
		if isNumber(part) || isQuotedString(part) {
			continue
		}
		if part == "true" || part == "false" {
			continue
		}
		if isValidIdentifier(part) {
			parts[i] = "." + part
		}
	}
	return strings.Join(parts, " ")
}

// splitArguments splits arguments while respecting quoted strings.
func splitArguments(args string) []string {
	var parts []string
	var current strings.Builder
	inQuote := false
	quoteChar := rune(0)

	for _, ch := range args {
		switch {
		case !inQuote && (ch == '"' || ch == '\''):
			inQuote = true
			quoteChar = ch
			current.WriteRune(ch)
		case inQuote && ch == quoteChar:
			inQuote = false
			current.WriteRune(ch)
		case !inQuote && ch == ' ':
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// isNumber checks if a string represents a number (integer or float,
// optionally negative).
func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		if ch == '-' && i == 0 {
			continue
		}
		if ch == '.' {
			continue
		}
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// isQuotedString checks if a string is wrapped in matching quotes.
func isQuotedString(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) ||
		(strings.HasPrefix(s, `'`) && strings.HasSuffix(s, `'`))
}

// isValidIdentifier checks if a string is a valid variable reference,
// allowing dotted paths.
func isValidIdentifier(s string) bool {
	if s == "" || s[0] == '.' || s[len(s)-1] == '.' {
		return false
	}
	for i, ch := range s {
		if i == 0 && ch >= '0' && ch <= '9' {
			return false
		}
		isLower := ch >= 'a' && ch <= 'z'
		isUpper := ch >= 'A' && ch <= 'Z'
		isDigit := ch >= '0' && ch <= '9'
		if !isLower && !isUpper && !isDigit && ch != '_' && ch != '.' {
			return false
		}
	}
	return true
}

// extractVariables extracts variable names from a template.
// Returns a deduplicated list in order of first appearance. Dotted paths
// are reported whole.
func extractVariables(templateStr string) []string {
	seen := make(map[string]bool)
	var result []string

	add := func(name string) {
		if goTemplateKeywords[name] || seen[name] {
			return
		}
		seen[name] = true
		result = append(result, name)
	}

	for _, match := range varPattern.FindAllStringSubmatch(templateStr, -1) {
		add(match[1])
	}

	controlPattern := regexp.MustCompile(`\{\{#(?:if|each)\s+([\w.]+)\}\}`)
	for _, match := range controlPattern.FindAllStringSubmatch(templateStr, -1) {
		add(match[1])
	}

	return result
}
