// Package tokens provides model-aware token accounting for LLM prompts.
//
// The Accountant resolves a model name to a tokenizer codec and answers
// count, encode, and decode questions. Resolution never fails: a provider
// prefix ("azure/", "openai/") is stripped, the bare name is looked up in
// tiktoken's model table, unknown names fall back to the gpt-4o encoding,
// and if no encoding can be initialized at all the accountant degrades to a
// ~4 characters per token estimate.
//
// # Accountant
//
//	acct := tokens.NewAccountant()
//	count := acct.Count("Hello, world!", "azure/gpt-4o")
//	ids := acct.Encode("Hello, world!", "gpt-4o")
//	text := acct.Decode(ids, "gpt-4o")
//
// Codecs are cached per bare model name inside the Accountant instance, so
// repeated calls for the same model do not re-initialize the tokenizer.
// An Accountant is safe for concurrent use.
//
// # Estimation
//
// For fast counting without a real tokenizer:
//
//	count := tokens.EstimateTokens("Hello, world!")   // ~3 tokens
//
// # Budget
//
// Budget splits a context window across prompt components:
//
//	budget := tokens.NewBudget(100000)
//	// Default allocation: 20% system, 40% record, 30% user, 10% reserved
//	budget.FitsSystem(text)
//	budget.RemainingRecord(usedTokens)
//
// # Context Windows
//
// Get context window sizes for common models:
//
//	window := tokens.ContextWindow("claude-opus-4")   // 200000
//	window := tokens.ContextWindow("unknown")         // 100000 (default)
package tokens
