package tokens

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// DefaultCharsPerToken is the default character-to-token ratio.
// Approximately 4 characters equals 1 token for English text.
const DefaultCharsPerToken = 4

// Counter estimates token counts for text.
type Counter interface {
	// Count estimates the number of tokens in the given text.
	Count(text string) int

	// FitsInLimit returns true if the text fits within the token limit.
	FitsInLimit(text string, limit int) bool
}

// EstimatingCodec approximates tokenization at a fixed character-to-token
// ratio. It is the degraded-mode codec used when no real encoding can be
// initialized (for example, no BPE data on disk and no network to fetch it).
//
// A token is a run of CharsPerToken runes. Token ids index a vocabulary
// local to the codec instance, built as chunks are first seen, so
// Decode(Encode(s)) == s only for ids produced by the same instance.
type EstimatingCodec struct {
	// CharsPerToken is the average characters per token.
	// Default is 4, which works well for English text.
	CharsPerToken int

	mu     sync.Mutex
	ids    map[string]int
	chunks []string
}

// NewEstimatingCodec creates an estimating codec with the default ratio.
func NewEstimatingCodec() *EstimatingCodec {
	return NewEstimatingCodecWithRatio(DefaultCharsPerToken)
}

// NewEstimatingCodecWithRatio creates an estimating codec with a custom
// ratio. If charsPerToken is <= 0, the default ratio is used.
func NewEstimatingCodecWithRatio(charsPerToken int) *EstimatingCodec {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &EstimatingCodec{
		CharsPerToken: charsPerToken,
		ids:           make(map[string]int),
	}
}

// Count estimates the number of tokens in the given text.
// Runes (Unicode code points) are counted rather than bytes, and the result
// always equals len(Encode(text)).
func (c *EstimatingCodec) Count(text string) int {
	per := c.ratio()
	return (utf8.RuneCountInString(text) + per - 1) / per
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *EstimatingCodec) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// Encode converts text to ids over the instance-local chunk vocabulary.
func (c *EstimatingCodec) Encode(text string) []int {
	per := c.ratio()
	runes := []rune(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]int, 0, (len(runes)+per-1)/per)
	for start := 0; start < len(runes); start += per {
		end := start + per
		if end > len(runes) {
			end = len(runes)
		}
		chunk := string(runes[start:end])
		id, ok := c.ids[chunk]
		if !ok {
			id = len(c.chunks)
			c.chunks = append(c.chunks, chunk)
			c.ids[chunk] = id
		}
		out = append(out, id)
	}
	return out
}

// Decode converts ids produced by this instance back to a string.
// Unknown ids are skipped.
func (c *EstimatingCodec) Decode(ids []int) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sb strings.Builder
	for _, id := range ids {
		if id >= 0 && id < len(c.chunks) {
			sb.WriteString(c.chunks[id])
		}
	}
	return sb.String()
}

func (c *EstimatingCodec) ratio() int {
	if c.CharsPerToken <= 0 {
		return DefaultCharsPerToken
	}
	return c.CharsPerToken
}

// CodecCounter adapts a Codec to the Counter interface.
type CodecCounter struct {
	Codec Codec
}

// Count returns the codec's token count for text.
func (c CodecCounter) Count(text string) int {
	return c.Codec.Count(text)
}

// FitsInLimit returns true if the text fits within the token limit.
func (c CodecCounter) FitsInLimit(text string, limit int) bool {
	return c.Codec.Count(text) <= limit
}

// EstimateTokens is a convenience function using the default ratio.
func EstimateTokens(text string) int {
	return NewEstimatingCodec().Count(text)
}
