package template

import (
	"fmt"
	"strings"
	"text/template"
)

// Engine renders prompt templates with variable substitution.
// It supports both Go template syntax and Handlebars-like syntax,
// including dotted paths into nested values ({{record.title}}).
type Engine struct {
	funcs template.FuncMap
}

// NewEngine creates a new template engine with default helper functions.
func NewEngine() *Engine {
	return &Engine{
		funcs: defaultFuncs(),
	}
}

// Render executes the template with the given variables.
// The template string supports Handlebars-like syntax which is automatically
// converted to Go template syntax before execution.
func (e *Engine) Render(templateStr string, variables map[string]any) (string, error) {
	if templateStr == "" {
		return "", ErrEmpty
	}

	converted := convertSyntax(templateStr)

	tmpl, parseErr := template.New("prompt").Funcs(e.funcs).Parse(converted)
	if parseErr != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, parseErr)
	}

	var buf strings.Builder
	if execErr := tmpl.Execute(&buf, variables); execErr != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, execErr)
	}

	return buf.String(), nil
}

// Parse validates the template and extracts variable names.
// Dotted paths are reported whole ("record.title"), deduplicated, in order
// of first appearance.
func (e *Engine) Parse(templateStr string) ([]string, error) {
	if templateStr == "" {
		return nil, ErrEmpty
	}

	converted := convertSyntax(templateStr)

	if _, parseErr := template.New("prompt").Funcs(e.funcs).Parse(converted); parseErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, parseErr)
	}

	return extractVariables(templateStr), nil
}

// AddFunc adds a custom template function.
// The function will be available in templates using the given name.
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}

// ValidateVariables checks that all required variables are provided.
// Returns an error wrapping ErrVariable if any required variable is missing.
// For dotted paths only the root name is checked.
func ValidateVariables(required []string, provided map[string]any) error {
	for _, name := range required {
		root, _, _ := strings.Cut(name, ".")
		if _, ok := provided[root]; !ok {
			return fmt.Errorf("%w: %s", ErrVariable, name)
		}
	}
	return nil
}
