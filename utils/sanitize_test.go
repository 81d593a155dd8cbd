package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeContent(t *testing.T) {
	assert.Equal(t, "plain text", SanitizeContent("plain text"))
	assert.Equal(t, "<p>kept</p>", SanitizeContent("<p>kept</p>"))
	assert.NotContains(t, SanitizeContent(`<script>alert(1)</script>hi`), "<script>")
}

func TestSanitizeTitle(t *testing.T) {
	assert.Equal(t, "plain title", SanitizeTitle("plain title"))
	assert.Equal(t, "bold", SanitizeTitle("<b>bold</b>"))
}
