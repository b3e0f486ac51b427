package types

// Content is the full text of a loaded file.
// Offsets into Content count Unicode code points, not bytes.
type Content struct {
	Path  string
	Text  string
	runes []rune
}

// NewContent wraps text as Content.
func NewContent(path, text string) *Content {
	return &Content{
		Path:  path,
		Text:  text,
		runes: []rune(text),
	}
}

// Len returns the number of characters in the content.
func (c *Content) Len() int {
	return len(c.runes)
}

// Slice returns the characters in [start, end), clamped to the content bounds.
func (c *Content) Slice(start, end int) string {
	start = max(0, start)
	end = min(len(c.runes), end)
	if start >= end {
		return ""
	}
	return string(c.runes[start:end])
}

// Runes returns the content as characters. Callers must not modify the slice.
func (c *Content) Runes() []rune {
	return c.runes
}
