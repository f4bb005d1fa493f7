package model

import (
	"sync"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		model    string
		expected string
	}{
		{"gpt-4o", "gpt-4o"},
		{"azure/gpt-4o", "gpt-4o"},
		{"openai/gpt-4o-mini", "gpt-4o-mini"},
		{"bedrock/anthropic/claude-sonnet-4", "claude-sonnet-4"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.model); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tt.model, got, tt.expected)
		}
	}
}

func TestPriceFor(t *testing.T) {
	p, ok := PriceFor("azure/gpt-4o")
	if !ok {
		t.Fatal("expected pricing for azure/gpt-4o")
	}
	if p != Prices["gpt-4o"] {
		t.Errorf("PriceFor(azure/gpt-4o) = %+v, expected %+v", p, Prices["gpt-4o"])
	}

	if _, ok := PriceFor("no-such-model"); ok {
		t.Error("expected no pricing for unknown model")
	}
}

func TestCompletionCost(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		usage    Usage
		expected float64
	}{
		{
			name:     "known model",
			model:    "claude-sonnet-4",
			usage:    Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000},
			expected: 18.0, // 3.0 input + 15.0 output
		},
		{
			name:     "provider prefix stripped",
			model:    "azure/gpt-4o",
			usage:    Usage{InputTokens: 1_000_000},
			expected: 2.50,
		},
		{
			name:     "unknown model costs zero",
			model:    "mystery-model-9000",
			usage:    Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000},
			expected: 0,
		},
		{
			name:     "zero usage costs zero",
			model:    "gpt-4o",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionCost(tt.model, tt.usage); got != tt.expected {
				t.Errorf("CompletionCost() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestUsage_Add(t *testing.T) {
	u := Usage{InputTokens: 100, OutputTokens: 50, Requests: 1}
	u.Add(Usage{InputTokens: 200, OutputTokens: 100, Requests: 2})

	if u.InputTokens != 300 || u.OutputTokens != 150 || u.Requests != 3 {
		t.Errorf("unexpected usage after Add: %+v", u)
	}
	if u.TotalTokens() != 450 {
		t.Errorf("TotalTokens() = %d, expected 450", u.TotalTokens())
	}
}

func TestCostTracker_Record(t *testing.T) {
	tracker := NewCostTracker()

	tracker.Record("gpt-4o", 1000, 500)
	tracker.Record("azure/gpt-4o", 1000, 500)

	u := tracker.Usage("gpt-4o")
	if u.InputTokens != 2000 {
		t.Errorf("InputTokens = %d, expected 2000 (prefixed records should merge)", u.InputTokens)
	}
	if u.Requests != 2 {
		t.Errorf("Requests = %d, expected 2", u.Requests)
	}
}

func TestCostTracker_RecordUsage(t *testing.T) {
	tracker := NewCostTracker()

	tracker.RecordUsage("claude-sonnet-4", Usage{InputTokens: 500, OutputTokens: 250, Requests: 1})

	u := tracker.Usage("claude-sonnet-4")
	if u.InputTokens != 500 || u.OutputTokens != 250 || u.Requests != 1 {
		t.Errorf("unexpected usage: %+v", u)
	}
}

func TestCostTracker_Summary(t *testing.T) {
	tracker := NewCostTracker()
	tracker.Record("gpt-4o", 100, 50)
	tracker.Record("claude-sonnet-4", 200, 100)

	summary := tracker.Summary()
	if len(summary) != 2 {
		t.Fatalf("expected 2 models in summary, got %d", len(summary))
	}

	// Mutating the copy must not affect the tracker.
	summary["gpt-4o"] = Usage{}
	if tracker.Usage("gpt-4o").InputTokens != 100 {
		t.Error("Summary() should return a copy")
	}
}

func TestCostTracker_TotalUsage(t *testing.T) {
	tracker := NewCostTracker()
	tracker.Record("gpt-4o", 100, 50)
	tracker.Record("claude-sonnet-4", 200, 100)

	total := tracker.TotalUsage()
	if total.InputTokens != 300 || total.OutputTokens != 150 || total.Requests != 2 {
		t.Errorf("unexpected total: %+v", total)
	}
}

func TestCostTracker_EstimatedCost(t *testing.T) {
	tracker := NewCostTracker()
	tracker.Record("claude-sonnet-4", 1_000_000, 0) // $3.00
	tracker.Record("unknown-model", 1_000_000, 0)   // $0

	if got := tracker.EstimatedCost(); got != 3.0 {
		t.Errorf("EstimatedCost() = %v, expected 3.0", got)
	}

	byModel := tracker.EstimatedCostByModel()
	if byModel["claude-sonnet-4"] != 3.0 {
		t.Errorf("per-model cost = %v, expected 3.0", byModel["claude-sonnet-4"])
	}
	if byModel["unknown-model"] != 0 {
		t.Errorf("unknown model cost = %v, expected 0", byModel["unknown-model"])
	}
}

func TestCostTracker_Reset(t *testing.T) {
	tracker := NewCostTracker()
	tracker.Record("gpt-4o", 100, 50)
	tracker.Reset()

	if len(tracker.Summary()) != 0 {
		t.Error("expected empty tracker after Reset")
	}
}

func TestCostTracker_ConcurrentRecord(t *testing.T) {
	tracker := NewCostTracker()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tracker.Record("gpt-4o", 10, 5)
			}
		}()
	}
	wg.Wait()

	u := tracker.Usage("gpt-4o")
	if u.Requests != 1000 {
		t.Errorf("Requests = %d, expected 1000", u.Requests)
	}
	if u.InputTokens != 10000 {
		t.Errorf("InputTokens = %d, expected 10000", u.InputTokens)
	}
}
