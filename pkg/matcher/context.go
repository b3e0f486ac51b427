package matcher

import "github.com/praetorian-inc/decodescan/pkg/types"

// DefaultRadius is the number of characters of context shown on each side of a match.
const DefaultRadius = 50

// ContextWindow returns content[max(0, offset-radius) : min(len, offset+radius)].
func ContextWindow(content *types.Content, offset, radius int) string {
	return Window(content, offset, radius, radius)
}

// Window returns the characters from offset-before up to offset+after,
// clipped to the content bounds. Both radii are measured from the match
// start, so a short after radius can cut into the match itself.
// Negative radii are treated as zero.
func Window(content *types.Content, offset, before, after int) string {
	before = max(0, before)
	after = max(0, after)
	return content.Slice(offset-before, offset+after)
}
