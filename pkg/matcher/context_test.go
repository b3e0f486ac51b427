package matcher

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/praetorian-inc/decodescan/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestContextWindow(t *testing.T) {
	long := strings.Repeat("a", 60) + "decode" + strings.Repeat("b", 60)

	tests := []struct {
		name    string
		content string
		offset  int
		radius  int
		want    string
	}{
		{
			name:    "window exceeds bounds on both sides",
			content: "abc decode xyz",
			offset:  4,
			radius:  50,
			want:    "abc decode xyz",
		},
		{
			name:    "window clipped to radius on both sides",
			content: long,
			offset:  60,
			radius:  50,
			want:    strings.Repeat("a", 50) + "decode" + strings.Repeat("b", 44),
		},
		{
			name:    "match at start of content",
			content: "decode" + strings.Repeat("z", 80),
			offset:  0,
			radius:  50,
			want:    "decode" + strings.Repeat("z", 44),
		},
		{
			name:    "zero radius is empty",
			content: "abc decode xyz",
			offset:  4,
			radius:  0,
			want:    "",
		},
		{
			name:    "multi-byte characters",
			content: "ñññdecodeñññ",
			offset:  3,
			radius:  2,
			want:    "ññde",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContextWindow(types.NewContent("", tt.content), tt.offset, tt.radius)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), 2*tt.radius)
		})
	}
}

func TestWindow_Asymmetric(t *testing.T) {
	content := types.NewContent("", "0123456789decode(abcdefghij)")

	assert.Equal(t, "89decode(abcd", Window(content, 10, 2, 11))
	assert.Equal(t, "0123456789decode(abcdefghij)", Window(content, 10, 100, 300))
	assert.Equal(t, "de", Window(content, 10, -5, 2))
}
