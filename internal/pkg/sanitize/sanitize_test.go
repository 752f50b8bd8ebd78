package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Calculus midterm notes", "Calculus midterm notes"},
		{"script tags removed", `<script>alert("x")</script>hello`, "hello"},
		{"markup stripped keeping text", "<b>bold</b> statement", "bold statement"},
		{"surrounding whitespace trimmed", "  padded  ", "padded"},
		{"empty stays empty", "", ""},
		{"only markup becomes empty", "<img src=x onerror=alert(1)>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.input))
		})
	}
}

func TestStripPtr(t *testing.T) {
	assert.Nil(t, StripPtr(nil))

	dirty := "<i>notes</i>"
	got := StripPtr(&dirty)
	assert.NotNil(t, got)
	assert.Equal(t, "notes", *got)
}
