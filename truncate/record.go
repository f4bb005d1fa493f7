package truncate

import (
	"encoding/json"
	"fmt"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/randalmurphal/promptfit/tokens"
)

// DefaultMarker is the literal spliced in place of elided content.
const DefaultMarker = "[....truncated content...]"

// MarkerReserve is the number of tokens set aside for the marker before
// slicing an oversized field.
const MarkerReserve = 20

// Record is a field-name to value mapping whose keys iterate in insertion
// order. It marshals to JSON in that order.
type Record = orderedmap.OrderedMap[string, any]

// RecordTruncator fits structured records into token budgets.
type RecordTruncator struct {
	resolver tokens.Resolver
	marker   string
}

// NewRecordTruncator creates a record truncator backed by the given codec
// resolver. A nil resolver gets a fresh tokens.Accountant.
func NewRecordTruncator(resolver tokens.Resolver) *RecordTruncator {
	if resolver == nil {
		resolver = tokens.NewAccountant()
	}
	return &RecordTruncator{
		resolver: resolver,
		marker:   DefaultMarker,
	}
}

// WithMarker sets a custom elision marker.
func (rt *RecordTruncator) WithMarker(marker string) *RecordTruncator {
	rt.marker = marker
	return rt
}

// Fit returns a copy of record that fits within budget tokens under model's
// tokenizer.
//
// Groups are processed in order: every field of an earlier group is
// preferred over any field of a later group. Within a group, fields are
// tried longest stringified value first (ties keep the group's order).
// A field whose serialized form "<name>": <json> fits the remaining budget
// is accepted whole. The first field that does not fit is elided: the head
// and tail of its token sequence are kept around the marker, and processing
// stops there, so at most one output value differs from its input value and
// no later field appears.
//
// Field names absent from record are skipped. A nil value still costs its
// serialized form ("null"). The returned record's keys iterate in
// acceptance order.
//
// When the remaining budget is below MarkerReserve the elision window
// clamps to zero and the elided value decodes to the marker alone; in that
// degenerate case the output may exceed budget by the marker's own token
// cost. Callers passing budgets of at least MarkerReserve never hit it.
//
// Fit returns an error only when a field value cannot be serialized to
// JSON; the error is not downgraded.
func (rt *RecordTruncator) Fit(record map[string]any, budget int, groups [][]string, model string) (*Record, error) {
	codec := rt.resolver.Resolve(model)
	out := orderedmap.New[string, any]()
	consumed := 0

	for _, group := range groups {
		names := presentIn(record, group)
		sort.SliceStable(names, func(i, j int) bool {
			return len(stringify(record[names[i]])) > len(stringify(record[names[j]]))
		})

		for _, name := range names {
			value := record[name]
			serialized, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("serialize field %q: %w", name, err)
			}

			cost := codec.Count(fmt.Sprintf("%q: %s", name, serialized))
			if consumed+cost <= budget {
				out.Set(name, value)
				consumed += cost
				continue
			}

			// Hard stop: elide this field and ignore everything after it.
			elided, _ := rt.elide(codec, stringify(value), budget-consumed)
			out.Set(name, elided)
			return out, nil
		}
	}

	return out, nil
}

// elide keeps the head and tail of value's token sequence around the
// marker, within remaining tokens. Returns the decoded string and the
// length of the elided token sequence.
func (rt *RecordTruncator) elide(codec tokens.Codec, value string, remaining int) (string, int) {
	keepable := remaining - MarkerReserve
	if keepable < 0 {
		keepable = 0
	}

	toks := codec.Encode(value)
	fieldTokens := len(toks)

	start := min(keepable/2, fieldTokens/2)
	end := min(keepable-start, fieldTokens-start)

	marker := codec.Encode(rt.marker)
	elided := make([]int, 0, start+len(marker)+end)
	elided = append(elided, toks[:start]...)
	elided = append(elided, marker...)
	elided = append(elided, toks[fieldTokens-end:]...)

	return codec.Decode(elided), len(elided)
}

// presentIn filters names down to those that exist in record, preserving
// order.
func presentIn(record map[string]any, names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := record[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

// stringify renders a value the way its length is judged for ordering and
// its content is sliced for elision: strings as themselves, everything else
// via fmt.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
