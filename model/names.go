package model

import "strings"

// Normalize strips any provider prefix from a model identifier, returning
// the bare name used for pricing lookup. For example, "azure/gpt-4o"
// becomes "gpt-4o" and "bedrock/anthropic/claude-sonnet-4" becomes
// "claude-sonnet-4". Names without a prefix are returned as-is.
//
// The same convention drives tokenizer selection in the tokens package, so
// a prefixed identifier can be passed anywhere a model name is expected.
func Normalize(model string) string {
	if i := strings.LastIndex(model, "/"); i >= 0 {
		return model[i+1:]
	}
	return model
}

// Pricing holds per-million-token USD pricing for a model.
type Pricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// Prices contains current pricing keyed by bare model name (as of 2025).
var Prices = map[string]Pricing{
	// OpenAI
	"gpt-4o":      {InputPerMillion: 2.50, OutputPerMillion: 10.0},
	"gpt-4o-mini": {InputPerMillion: 0.15, OutputPerMillion: 0.60},
	"gpt-4.1":     {InputPerMillion: 2.0, OutputPerMillion: 8.0},
	"o3":          {InputPerMillion: 2.0, OutputPerMillion: 8.0},
	"o4-mini":     {InputPerMillion: 1.10, OutputPerMillion: 4.40},

	// Anthropic
	"claude-opus-4":     {InputPerMillion: 15.0, OutputPerMillion: 75.0},
	"claude-sonnet-4":   {InputPerMillion: 3.0, OutputPerMillion: 15.0},
	"claude-3.5-sonnet": {InputPerMillion: 3.0, OutputPerMillion: 15.0},
	"claude-3.5-haiku":  {InputPerMillion: 0.80, OutputPerMillion: 4.0},

	// Google
	"gemini-2.5-pro":   {InputPerMillion: 1.25, OutputPerMillion: 10.0},
	"gemini-2.5-flash": {InputPerMillion: 0.30, OutputPerMillion: 2.50},
}

// PriceFor returns the pricing for a model after normalization.
// The second return value reports whether pricing is known.
func PriceFor(model string) (Pricing, bool) {
	p, ok := Prices[Normalize(model)]
	return p, ok
}
