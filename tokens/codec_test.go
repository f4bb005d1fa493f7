package tokens

import (
	"testing"
)

func TestAccountant_ResolveCachesPerBareName(t *testing.T) {
	a := NewAccountant()

	// Provider prefixes must not produce distinct codecs.
	prefixed := a.Resolve("azure/gpt-4o")
	bare := a.Resolve("gpt-4o")

	if prefixed != bare {
		t.Error("azure/gpt-4o and gpt-4o should resolve to the same cached codec")
	}

	if again := a.Resolve("gpt-4o"); again != bare {
		t.Error("repeated resolution should hit the cache")
	}
}

func TestAccountant_ResolveNeverFails(t *testing.T) {
	a := NewAccountant()

	for _, model := range []string{"", "gpt-4o", "no-such-model-xyz", "bedrock/anthropic/claude-sonnet-4"} {
		if a.Resolve(model) == nil {
			t.Errorf("Resolve(%q) returned nil", model)
		}
	}
}

func TestAccountant_CountEmpty(t *testing.T) {
	a := NewAccountant()

	if got := a.Count("", "gpt-4o"); got != 0 {
		t.Errorf("Count of empty string = %d, expected 0", got)
	}
}

func TestAccountant_RoundTrip(t *testing.T) {
	a := NewAccountant()

	text := "The quick brown fox jumps over the lazy dog."
	ids := a.Encode(text, "gpt-4o")

	if len(ids) == 0 {
		t.Fatal("Encode returned no tokens")
	}
	if got := a.Count(text, "gpt-4o"); got != len(ids) {
		t.Errorf("Count = %d, len(Encode) = %d", got, len(ids))
	}
	if got := a.Decode(ids, "gpt-4o"); got != text {
		t.Errorf("Decode(Encode(%q)) = %q", text, got)
	}
}

func TestBareModel(t *testing.T) {
	tests := []struct {
		model    string
		expected string
	}{
		{"gpt-4o", "gpt-4o"},
		{"azure/gpt-4o", "gpt-4o"},
		{"bedrock/anthropic/claude-sonnet-4", "claude-sonnet-4"},
		{"", ""},
		{"trailing/", ""},
	}

	for _, tt := range tests {
		if got := bareModel(tt.model); got != tt.expected {
			t.Errorf("bareModel(%q) = %q, expected %q", tt.model, got, tt.expected)
		}
	}
}
