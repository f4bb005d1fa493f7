package tokens

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the encoding used for models without a registered
// tokenizer. It is the gpt-4o encoder, which segments close enough to most
// current models for budget accounting.
const DefaultEncoding = "o200k_base"

// Codec tokenizes text for a specific model. For exact codecs,
// Count(s) == len(Encode(s)).
type Codec interface {
	// Count returns the number of tokens in text.
	Count(text string) int

	// Encode converts text to an ordered sequence of token ids.
	Encode(text string) []int

	// Decode converts token ids back to a string.
	Decode(ids []int) string
}

// Resolver resolves a model name to a Codec. Resolution never fails:
// unrecognized models yield a default codec.
type Resolver interface {
	Resolve(model string) Codec
}

// TiktokenCodec is a Codec backed by a tiktoken encoding.
type TiktokenCodec struct {
	enc *tiktoken.Tiktoken
}

// Count returns the exact token count for text.
func (c *TiktokenCodec) Count(text string) int {
	return len(c.Encode(text))
}

// Encode converts text to token ids.
func (c *TiktokenCodec) Encode(text string) []int {
	return c.enc.Encode(text, nil, nil)
}

// Decode converts token ids back to a string.
func (c *TiktokenCodec) Decode(ids []int) string {
	return c.enc.Decode(ids)
}

// Accountant resolves model names to codecs and answers token-count
// questions. Resolved codecs are cached per bare model name; the cache
// belongs to the Accountant instance, is populated lazily, and is never
// invalidated (tokenizer profiles are immutable for a given name).
//
// An Accountant is safe for concurrent use.
type Accountant struct {
	mu    sync.RWMutex
	cache map[string]Codec
}

// NewAccountant creates an Accountant with an empty codec cache.
func NewAccountant() *Accountant {
	return &Accountant{cache: make(map[string]Codec)}
}

// Resolve returns the codec for model. The provider prefix is stripped
// before lookup, so "azure/gpt-4o" resolves the same as "gpt-4o". Models
// with no registered tokenizer resolve to the DefaultEncoding codec, and if
// that encoding cannot be initialized either, to an EstimatingCodec.
// Resolve never fails.
func (a *Accountant) Resolve(model string) Codec {
	name := bareModel(model)

	a.mu.RLock()
	codec, ok := a.cache[name]
	a.mu.RUnlock()
	if ok {
		return codec
	}

	codec = newCodec(name)

	a.mu.Lock()
	// Another goroutine may have raced us here; keep the first entry so
	// callers always see a single codec instance per name.
	if existing, ok := a.cache[name]; ok {
		codec = existing
	} else {
		a.cache[name] = codec
	}
	a.mu.Unlock()

	return codec
}

// Count returns the number of tokens in text under model's tokenizer.
func (a *Accountant) Count(text, model string) int {
	return a.Resolve(model).Count(text)
}

// Encode returns the token ids for text under model's tokenizer.
func (a *Accountant) Encode(text, model string) []int {
	return a.Resolve(model).Encode(text)
}

// Decode converts token ids back to a string under model's tokenizer.
func (a *Accountant) Decode(ids []int, model string) string {
	return a.Resolve(model).Decode(ids)
}

// newCodec builds a codec for a bare model name, falling back first to the
// default encoding and then to the character-ratio estimate.
func newCodec(name string) Codec {
	if enc, err := tiktoken.EncodingForModel(name); err == nil {
		return &TiktokenCodec{enc: enc}
	}
	if enc, err := tiktoken.GetEncoding(DefaultEncoding); err == nil {
		return &TiktokenCodec{enc: enc}
	}
	return NewEstimatingCodec()
}

// bareModel strips any provider prefix from a model name:
// "azure/gpt-4o-mini" -> "gpt-4o-mini".
func bareModel(model string) string {
	if i := strings.LastIndex(model, "/"); i >= 0 {
		return model[i+1:]
	}
	return model
}
