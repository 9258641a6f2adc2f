package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderRichTextStripsScripts(t *testing.T) {
	out := string(RenderRichText(`<p>Hello <strong>world</strong></p><script>alert(1)</script>`))

	assert.Contains(t, out, "<strong>world</strong>")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "alert(1)")
}

func TestRenderRichTextEnhancesImages(t *testing.T) {
	out := string(RenderRichText(`<p><img src="https://example.com/a.png" onerror="steal()"></p>`))

	assert.Contains(t, out, `loading="lazy"`)
	assert.Contains(t, out, `referrerpolicy="no-referrer"`)
	assert.NotContains(t, out, "steal()")
}

func TestRenderMarkdown(t *testing.T) {
	out := string(RenderMarkdown("Nice **post**\n\n[link](https://example.com)"))

	assert.Contains(t, out, "<strong>post</strong>")
	assert.Contains(t, out, `href="https://example.com"`)
	assert.Contains(t, out, `target="_blank"`)
}

func TestRenderMarkdownDropsRawHTML(t *testing.T) {
	out := string(RenderMarkdown(`<img src=x onerror=alert(1)>`))
	assert.NotContains(t, out, "onerror")
}

func TestEnhanceHTMLContentEmpty(t *testing.T) {
	assert.Equal(t, "", string(EnhanceHTMLContent("   ")))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "Hello world", Excerpt("<p>Hello</p>\n<p>world</p>", 50))

	long := "<p>" + strings.Repeat("a", 30) + "</p>"
	assert.Equal(t, strings.Repeat("a", 10)+"...", Excerpt(long, 10))
}
