// Package model provides model-name normalization and completion cost lookup.
//
// Model identifiers often arrive with a provider prefix ("azure/gpt-4o",
// "bedrock/anthropic/claude-sonnet-4"). Normalize strips the prefix so the
// bare model name drives pricing and tokenizer selection.
//
// # Completion Cost
//
// Look up the estimated USD cost of a completed call:
//
//	cost := model.CompletionCost("azure/gpt-4o", model.Usage{
//	    InputTokens:  1200,
//	    OutputTokens: 300,
//	})
//
// Unknown models cost 0; pricing gaps never surface as errors.
//
// # Cost Tracking
//
// CostTracker accumulates usage across calls:
//
//	tracker := model.NewCostTracker()
//	tracker.Record("gpt-4o", 1000, 500) // input, output tokens
//	cost := tracker.EstimatedCost()
package model
