// Package template provides prompt template rendering and variable discovery.
//
// The engine supports both Go template syntax and a simplified
// Handlebars-like syntax that is automatically converted before execution.
//
// # Syntax
//
// Simple variables use double braces, and dotted paths reach into nested
// maps:
//
//	Hello, {{name}}!
//	Order {{order.id}} for {{customer.name}}
//
// Conditionals use #if and /if:
//
//	{{#if urgent}}URGENT: {{/if}}{{title}}
//
// Iteration uses #each and /each:
//
//	{{#each items}}{{.}} {{/each}}
//
// Helper functions can be called with arguments:
//
//	{{truncate description 100}}
//	{{upper name}}
//
// # Built-in Functions
//
//   - truncate(s string, maxLen int) string - Cut string to max length with ellipsis
//   - json(v any) string - Convert value to pretty-printed JSON
//   - upper(s string) string - Convert to uppercase
//   - lower(s string) string - Convert to lowercase
//   - trim(s string) string - Remove leading/trailing whitespace
//   - join(slice []string, sep string) string - Join strings with separator
//   - default(val, defaultVal any) any - Return default if val is nil/empty
//   - indent(s string, spaces int) string - Add spaces to each line
//
// # Variable Extraction
//
// Parse returns the variables a template references, in first-appearance
// order with duplicates removed. Dotted paths are reported whole:
//
//	vars, err := engine.Parse("{{greeting}}, {{user.name}}!")
//	// vars: ["greeting", "user.name"]
//
// ValidateVariables checks a data map against those requirements before
// rendering, so missing inputs surface as a clear error instead of blank
// output.
//
// # Example
//
//	engine := template.NewEngine()
//	result, err := engine.Render("Hello, {{name}}!", map[string]any{"name": "World"})
//	// result: "Hello, World!"
//
// # Custom Functions
//
// Add custom functions using AddFunc:
//
//	engine.AddFunc("double", func(s string) string { return s + s })
//	result, _ := engine.Render("{{double .name}}", map[string]any{"name": "ha"})
//	// result: "haha"
//
// Note: Custom functions use Go template syntax (.name) not Handlebars syntax.
package template
