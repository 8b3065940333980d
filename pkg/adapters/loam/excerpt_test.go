package loam

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate_RuneBoundary(t *testing.T) {
	// 200 two-byte runes put byte 400 inside a rune.
	long := strings.Repeat("é", 250)

	out := truncate(long, 400)

	assert.True(t, utf8.ValidString(out))
	assert.True(t, strings.HasSuffix(out, "…"))
	assert.LessOrEqual(t, len(out)-len("…"), 400)
}

func TestTruncate_ShortStringUntouched(t *testing.T) {
	assert.Equal(t, "pension plan", truncate("pension plan", 400))
}
