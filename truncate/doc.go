// Package truncate fits records and text into LLM token budgets.
//
// # Record Fitting
//
// RecordTruncator fits a field-to-value record into a token budget using
// ordered priority groups. Fields in an earlier group are always preferred
// over fields in a later group; within a group, the longest values are
// tried first. Fields are accepted whole until one no longer fits; that
// field is elided (its token sequence keeps a head and tail around a
// marker) and fitting stops, so at most one output value differs from the
// input.
//
//	fitted, err := truncate.FitRecord(
//	    map[string]any{"title": title, "body": body, "meta": meta},
//	    2000,
//	    [][]string{{"title", "body"}, {"meta"}},
//	    "gpt-4o",
//	)
//
// The returned record iterates its keys in acceptance order and marshals
// to JSON in that order.
//
// # Text Truncation
//
// Truncator cuts plain text to a token limit by slicing the token sequence
// directly, so the limit is exact. Three strategies are available:
//
//   - FromEnd: remove content from the end (default)
//   - FromMiddle: remove content from the middle, keeping start and end
//   - FromStart: remove content from the start
//
//	tr := truncate.NewFromMiddle().WithModel("gpt-4o")
//	result, truncated := tr.Truncate(text, maxTokens)
//
// # Custom Codecs
//
// Both truncators resolve codecs through a tokens.Resolver, defaulting to
// a fresh tokens.Accountant. Supply a shared accountant to reuse its codec
// cache, or a stub resolver in tests:
//
//	rt := truncate.NewRecordTruncator(sharedAccountant)
//
// # Convenience Functions
//
// For simple one-off truncation:
//
//	result := truncate.ToTokens(text, 100, "gpt-4o")
//	result := truncate.ToLines(text, 50)
//	result := truncate.ToLength(text, 500)
package truncate
