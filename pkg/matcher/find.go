package matcher

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/praetorian-inc/decodescan/pkg/types"
)

// FindAll yields the character offset of every occurrence of target in content,
// scanning left to right. Each search resumes one character after the previous
// hit, so a target that overlaps itself is reported at every starting position.
// An empty target yields nothing.
func FindAll(content *types.Content, target string) iter.Seq[int] {
	return func(yield func(int) bool) {
		if target == "" {
			return
		}
		text := content.Text
		pos := 0    // byte position where the next search starts
		offset := 0 // character offset of pos
		for {
			i := strings.Index(text[pos:], target)
			if i < 0 {
				return
			}
			offset += utf8.RuneCountInString(text[pos : pos+i])
			pos += i
			if !yield(offset) {
				return
			}
			_, size := utf8.DecodeRuneInString(text[pos:])
			pos += size
			offset++
		}
	}
}
