package truncate

import "github.com/randalmurphal/promptfit/tokens"

// truncateEnd keeps the first keep tokens and appends the marker.
func truncateEnd(codec tokens.Codec, toks, marker []int, keep int) string {
	out := make([]int, 0, keep+len(marker))
	out = append(out, toks[:keep]...)
	out = append(out, marker...)
	return codec.Decode(out)
}

// truncateStart keeps the last keep tokens and prepends the marker.
func truncateStart(codec tokens.Codec, toks, marker []int, keep int) string {
	out := make([]int, 0, keep+len(marker))
	out = append(out, marker...)
	out = append(out, toks[len(toks)-keep:]...)
	return codec.Decode(out)
}

// truncateMiddle keeps tokens from both ends around the marker. The head
// gets keep/2 tokens and the tail the remainder, so odd budgets favor the
// tail.
func truncateMiddle(codec tokens.Codec, toks, marker []int, keep int) string {
	head := keep / 2
	tail := keep - head

	out := make([]int, 0, keep+len(marker))
	out = append(out, toks[:head]...)
	out = append(out, marker...)
	out = append(out, toks[len(toks)-tail:]...)
	return codec.Decode(out)
}
