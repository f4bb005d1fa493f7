package model

import (
	"sync"
)

// Usage tracks token usage for a model.
type Usage struct {
	InputTokens  int
	OutputTokens int
	Requests     int
}

// Add adds the given usage to this usage.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.Requests += other.Requests
}

// TotalTokens returns the total tokens used.
func (u *Usage) TotalTokens() int {
	return u.InputTokens + u.OutputTokens
}

// CompletionCost returns the estimated USD cost of a completed model call.
// The model name is normalized first; unknown models cost 0 rather than
// producing an error.
func CompletionCost(model string, usage Usage) float64 {
	prices, ok := PriceFor(model)
	if !ok {
		return 0
	}
	inputCost := float64(usage.InputTokens) / 1_000_000 * prices.InputPerMillion
	outputCost := float64(usage.OutputTokens) / 1_000_000 * prices.OutputPerMillion
	return inputCost + outputCost
}

// CostTracker tracks token usage and estimated costs across models.
// Usage is keyed by bare model name, so "azure/gpt-4o" and "gpt-4o"
// accumulate together.
type CostTracker struct {
	mu     sync.RWMutex
	totals map[string]Usage
}

// NewCostTracker creates a new cost tracker.
func NewCostTracker() *CostTracker {
	return &CostTracker{
		totals: make(map[string]Usage),
	}
}

// Record adds a usage record for the given model.
func (t *CostTracker) Record(model string, input, output int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	name := Normalize(model)
	u := t.totals[name]
	u.InputTokens += input
	u.OutputTokens += output
	u.Requests++
	t.totals[name] = u
}

// RecordUsage adds a usage record for the given model.
func (t *CostTracker) RecordUsage(model string, usage Usage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	name := Normalize(model)
	u := t.totals[name]
	u.Add(usage)
	t.totals[name] = u
}

// Usage returns the usage for a specific model.
func (t *CostTracker) Usage(model string) Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.totals[Normalize(model)]
}

// Summary returns a copy of all usage totals.
func (t *CostTracker) Summary() map[string]Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[string]Usage, len(t.totals))
	for k, v := range t.totals {
		result[k] = v
	}
	return result
}

// TotalUsage returns aggregated usage across all models.
func (t *CostTracker) TotalUsage() Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total Usage
	for _, u := range t.totals {
		total.Add(u)
	}
	return total
}

// EstimatedCost calculates the estimated cost based on current pricing.
func (t *CostTracker) EstimatedCost() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total float64
	for name, usage := range t.totals {
		total += CompletionCost(name, usage)
	}
	return total
}

// EstimatedCostByModel returns the estimated cost for each model.
func (t *CostTracker) EstimatedCostByModel() map[string]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[string]float64, len(t.totals))
	for name, usage := range t.totals {
		result[name] = CompletionCost(name, usage)
	}
	return result
}

// Reset clears all tracked usage.
func (t *CostTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totals = make(map[string]Usage)
}
