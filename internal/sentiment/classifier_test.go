package sentiment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"POSITIVE", "positive"},
		{"NEGATIVE", "negative"},
		{"NEUTRAL", "neutral"},
		{"MIXED", "mixed"},
		{"LABEL_1", "label_1"},
		{"positive", "positive"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLabel(tt.raw), "raw label %q", tt.raw)
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, ClampScore(-0.3))
	assert.Equal(t, 1.0, ClampScore(1.7))
	assert.Equal(t, 0.42, ClampScore(0.42))
}

func TestTruncate(t *testing.T) {
	short := "hello"
	assert.Equal(t, short, Truncate(short))

	long := strings.Repeat("a", MaxInputRunes+100)
	truncated := Truncate(long)
	assert.Len(t, []rune(truncated), MaxInputRunes)

	// Multi-byte runes are counted as runes, not bytes.
	wide := strings.Repeat("日", MaxInputRunes+10)
	assert.Len(t, []rune(Truncate(wide)), MaxInputRunes)
}
