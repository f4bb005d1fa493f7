package tokens

import (
	"strings"
	"testing"
)

func TestNewEstimatingCodec(t *testing.T) {
	c := NewEstimatingCodec()

	if c.CharsPerToken != DefaultCharsPerToken {
		t.Errorf("expected CharsPerToken %v, got %v", DefaultCharsPerToken, c.CharsPerToken)
	}
}

func TestNewEstimatingCodecWithRatio(t *testing.T) {
	tests := []struct {
		name     string
		ratio    int
		expected int
	}{
		{
			name:     "custom ratio",
			ratio:    3,
			expected: 3,
		},
		{
			name:     "zero ratio uses default",
			ratio:    0,
			expected: DefaultCharsPerToken,
		},
		{
			name:     "negative ratio uses default",
			ratio:    -1,
			expected: DefaultCharsPerToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEstimatingCodecWithRatio(tt.ratio)
			if c.CharsPerToken != tt.expected {
				t.Errorf("expected CharsPerToken %v, got %v", tt.expected, c.CharsPerToken)
			}
		})
	}
}

func TestEstimatingCodec_Count(t *testing.T) {
	c := NewEstimatingCodec()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "empty string",
			text:     "",
			expected: 0,
		},
		{
			name:     "single character",
			text:     "a",
			expected: 1, // partial chunk still costs a token
		},
		{
			name:     "four characters",
			text:     "test",
			expected: 1,
		},
		{
			name:     "eight characters",
			text:     "testtest",
			expected: 2,
		},
		{
			name:     "hello world",
			text:     "Hello World",
			expected: 3, // ceil(11/4)
		},
		{
			name:     "unicode counted as runes",
			text:     "héllo wörld!",
			expected: 3, // 12 runes, not 14 bytes
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Count(tt.text); got != tt.expected {
				t.Errorf("Count(%q) = %d, expected %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestEstimatingCodec_CountMatchesEncode(t *testing.T) {
	c := NewEstimatingCodec()

	for _, text := range []string{"", "a", "test", "Hello, World!", strings.Repeat("x", 101)} {
		if c.Count(text) != len(c.Encode(text)) {
			t.Errorf("Count(%q) = %d, len(Encode) = %d", text, c.Count(text), len(c.Encode(text)))
		}
	}
}

func TestEstimatingCodec_RoundTrip(t *testing.T) {
	c := NewEstimatingCodec()

	tests := []string{
		"",
		"short",
		"a longer piece of text, with punctuation.",
		strings.Repeat("abcd", 50),
		"héllo wörld — mixed scripts: 日本語",
	}

	for _, text := range tests {
		ids := c.Encode(text)
		if got := c.Decode(ids); got != text {
			t.Errorf("Decode(Encode(%q)) = %q", text, got)
		}
	}
}

func TestEstimatingCodec_DecodeUnknownIDs(t *testing.T) {
	c := NewEstimatingCodec()
	c.Encode("abcd")

	if got := c.Decode([]int{0, 99, -1}); got != "abcd" {
		t.Errorf("Decode with unknown ids = %q, expected %q", got, "abcd")
	}
}

func TestEstimatingCodec_FitsInLimit(t *testing.T) {
	c := NewEstimatingCodec()

	if !c.FitsInLimit("test", 1) {
		t.Error("4 chars should fit in 1 token")
	}
	if c.FitsInLimit("testtest", 1) {
		t.Error("8 chars should not fit in 1 token")
	}
}

func TestCodecCounter(t *testing.T) {
	counter := CodecCounter{Codec: NewEstimatingCodec()}

	if got := counter.Count("testtest"); got != 2 {
		t.Errorf("Count = %d, expected 2", got)
	}
	if !counter.FitsInLimit("testtest", 2) {
		t.Error("8 chars should fit in 2 tokens")
	}
	if counter.FitsInLimit("testtest", 1) {
		t.Error("8 chars should not fit in 1 token")
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := EstimateTokens("testtest"); got != 2 {
		t.Errorf("EstimateTokens = %d, expected 2", got)
	}
}
