package htmlsanitize_test

import (
	"testing"

	"github.com/muhammadheryan/bhrc-portal/utils/htmlsanitize"
	"github.com/stretchr/testify/assert"
)

func TestRich(t *testing.T) {
	assert.Equal(t, "", htmlsanitize.Rich(""))
	assert.Equal(t, "<p><strong>Bold</strong> and <em>italic</em></p>", htmlsanitize.Rich("<p><strong>Bold</strong> and <em>italic</em></p>"))
	assert.Equal(t, "<p>Hello</p>", htmlsanitize.Rich("<p>Hello</p><script>alert('xss')</script>"))
	assert.NotContains(t, htmlsanitize.Rich(`<a href="javascript:alert(1)">x</a>`), "javascript:")
	assert.NotContains(t, htmlsanitize.Rich(`<img src="x.png" onerror="alert(1)">`), "onerror")
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "Denied service", htmlsanitize.Plain("<b>Denied</b> service"))
	assert.Equal(t, "hello", htmlsanitize.Plain("  hello<script>alert(1)</script> "))
}
