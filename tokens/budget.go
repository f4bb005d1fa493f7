package tokens

// DefaultSystemPercent is the default percentage for system prompts.
const DefaultSystemPercent = 20

// DefaultRecordPercent is the default percentage for the structured record.
const DefaultRecordPercent = 40

// DefaultUserPercent is the default percentage for user messages.
const DefaultUserPercent = 30

// DefaultReservedPercent is the default percentage reserved for response.
const DefaultReservedPercent = 10

// Budget manages token allocation across prompt components. The Record
// share is the budget typically handed to truncate's record fitter.
type Budget struct {
	// Total is the total token budget available.
	Total int

	// System is the budget for system prompts.
	System int

	// Record is the budget for the structured record embedded in the prompt.
	Record int

	// User is the budget for user messages.
	User int

	// Reserved is the budget reserved for response generation.
	Reserved int

	counter Counter
}

// NewBudget creates a budget with total tokens allocated proportionally.
// Default allocation: 20% system, 40% record, 30% user, 10% reserved.
func NewBudget(total int) *Budget {
	return NewBudgetWithAllocation(total,
		DefaultSystemPercent, DefaultRecordPercent,
		DefaultUserPercent, DefaultReservedPercent)
}

// NewBudgetWithAllocation creates a budget with custom allocations.
// The allocations are relative weights normalized to the total budget.
// For example, (100000, 20, 40, 30, 10) allocates 20% system, 40% record,
// 30% user, 10% reserved.
func NewBudgetWithAllocation(total, system, record, user, reserved int) *Budget {
	sum := system + record + user + reserved
	if sum == 0 {
		sum = 100
	}
	return &Budget{
		Total:    total,
		System:   total * system / sum,
		Record:   total * record / sum,
		User:     total * user / sum,
		Reserved: total * reserved / sum,
		counter:  NewEstimatingCodec(),
	}
}

// WithCounter sets a custom token counter, for example an Accountant-backed
// codec: budget.WithCounter(tokens.CodecCounter{Codec: acct.Resolve(model)}).
func (b *Budget) WithCounter(counter Counter) *Budget {
	b.counter = counter
	return b
}

// FitsSystem returns true if the system prompt fits within the system budget.
func (b *Budget) FitsSystem(text string) bool {
	return b.counter.FitsInLimit(text, b.System)
}

// FitsRecord returns true if the serialized record fits within the record budget.
func (b *Budget) FitsRecord(text string) bool {
	return b.counter.FitsInLimit(text, b.Record)
}

// FitsUser returns true if the user message fits within the user budget.
func (b *Budget) FitsUser(text string) bool {
	return b.counter.FitsInLimit(text, b.User)
}

// FitsSystemTokens returns true if the token count fits within the system budget.
func (b *Budget) FitsSystemTokens(tokens int) bool {
	return tokens <= b.System
}

// FitsRecordTokens returns true if the token count fits within the record budget.
func (b *Budget) FitsRecordTokens(tokens int) bool {
	return tokens <= b.Record
}

// FitsUserTokens returns true if the token count fits within the user budget.
func (b *Budget) FitsUserTokens(tokens int) bool {
	return tokens <= b.User
}

// RemainingRecord returns the remaining record budget after accounting for
// used tokens.
func (b *Budget) RemainingRecord(usedTokens int) int {
	remaining := b.Record - usedTokens
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RemainingTotal returns remaining tokens after subtracting used amounts.
func (b *Budget) RemainingTotal(systemUsed, recordUsed, userUsed int) int {
	used := systemUsed + recordUsed + userUsed + b.Reserved
	remaining := b.Total - used
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ContextWindows maps bare model names to context window sizes.
var ContextWindows = map[string]int{
	"gpt-4o":      128000,
	"gpt-4o-mini": 128000,
	"gpt-4.1":     1047576,
	"o3":          200000,
	"o4-mini":     200000,

	"claude-opus-4":     200000,
	"claude-sonnet-4":   200000,
	"claude-3.5-sonnet": 200000,
	"claude-3.5-haiku":  200000,

	// Default fallback
	"default": 100000,
}

// ContextWindow returns the context window for a model, or the default when
// the model is unknown. Provider prefixes are stripped before lookup.
func ContextWindow(model string) int {
	if window, ok := ContextWindows[bareModel(model)]; ok {
		return window
	}
	return ContextWindows["default"]
}
