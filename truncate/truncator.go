package truncate

import "github.com/randalmurphal/promptfit/tokens"

// Strategy defines how text is truncated.
type Strategy int

const (
	// FromEnd removes content from the end (default).
	FromEnd Strategy = iota

	// FromMiddle removes content from the middle, keeping start and end.
	FromMiddle

	// FromStart removes content from the start.
	FromStart
)

// DefaultEndMarker is the default marker for end truncation.
const DefaultEndMarker = "..."

// DefaultMiddleMarker is the default marker for middle truncation.
const DefaultMiddleMarker = DefaultMarker

// DefaultStartMarker is the default marker for start truncation.
const DefaultStartMarker = "..."

// Truncator truncates text to fit within token limits by slicing the
// token sequence produced by a model's codec, so the limit is exact rather
// than estimated.
type Truncator struct {
	resolver tokens.Resolver
	strategy Strategy
	marker   string
	model    string
}

// New creates a truncator with the given strategy.
func New(strategy Strategy) *Truncator {
	marker := DefaultEndMarker
	if strategy == FromMiddle {
		marker = DefaultMiddleMarker
	}
	return &Truncator{
		resolver: tokens.NewAccountant(),
		strategy: strategy,
		marker:   marker,
	}
}

// NewFromEnd creates a truncator that removes content from the end.
func NewFromEnd() *Truncator {
	return New(FromEnd)
}

// NewFromMiddle creates a truncator that removes content from the middle.
func NewFromMiddle() *Truncator {
	return New(FromMiddle)
}

// NewFromStart creates a truncator that removes content from the start.
func NewFromStart() *Truncator {
	return New(FromStart)
}

// WithResolver sets a custom codec resolver.
func (t *Truncator) WithResolver(resolver tokens.Resolver) *Truncator {
	t.resolver = resolver
	return t
}

// WithMarker sets a custom marker for truncation.
func (t *Truncator) WithMarker(marker string) *Truncator {
	t.marker = marker
	return t
}

// WithModel selects the tokenizer model. The empty string resolves to the
// default codec.
func (t *Truncator) WithModel(model string) *Truncator {
	t.model = model
	return t
}

// Truncate reduces the text to fit within the token limit.
// Returns the truncated text and whether truncation occurred.
func (t *Truncator) Truncate(text string, maxTokens int) (string, bool) {
	codec := t.resolver.Resolve(t.model)

	toks := codec.Encode(text)
	if len(toks) <= maxTokens {
		return text, false
	}

	marker := codec.Encode(t.marker)
	keep := maxTokens - len(marker)
	if keep <= 0 {
		return t.marker, true
	}

	switch t.strategy {
	case FromMiddle:
		return truncateMiddle(codec, toks, marker, keep), true
	case FromStart:
		return truncateStart(codec, toks, marker, keep), true
	default:
		return truncateEnd(codec, toks, marker, keep), true
	}
}

// Strategy returns the truncator's strategy.
func (t *Truncator) Strategy() Strategy {
	return t.strategy
}

// Marker returns the truncator's marker.
func (t *Truncator) Marker() string {
	return t.marker
}
