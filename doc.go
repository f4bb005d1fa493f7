// Package promptfit fits structured data into LLM prompt token budgets.
//
// promptfit is a small toolkit designed to be imported à la carte. Each
// subpackage can be used independently:
//
//   - tokens: Model-aware token counting, encode/decode, and budget allocation
//   - truncate: Token-budgeted record fitting and text truncation strategies
//   - template: Prompt template rendering with {{variable}} syntax
//   - model: Provider-prefix normalization and completion cost lookup
//   - config: Fitter configuration from YAML or TOML, with hot reload
//
// # Quick Start
//
// Fit a record into a token budget:
//
//	import "github.com/randalmurphal/promptfit/truncate"
//	fitted, err := truncate.FitRecord(
//	    map[string]any{"title": t, "body": b},
//	    2000,
//	    [][]string{{"title"}, {"body"}},
//	    "gpt-4o",
//	)
//
// Token counting:
//
//	import "github.com/randalmurphal/promptfit/tokens"
//	acct := tokens.NewAccountant()
//	count := acct.Count("Hello, World!", "azure/gpt-4o-mini")
//
// # Design Philosophy
//
// promptfit follows these principles:
//
//   - Each package usable independently
//   - Stable, semver-friendly API
//   - Sensible defaults with full configurability
//   - Interfaces for extensibility, concrete types for simplicity
package promptfit
