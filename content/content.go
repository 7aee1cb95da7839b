// Package content turns authored post bodies into display HTML. Posts
// written in markdown go through rendering and sanitization before the
// reference linkifier; raw plain text takes the escaping path instead.
package content

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"forum-refs/refs"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

var policy = newPolicy()

// newPolicy builds the sanitizer for editor output. On top of the
// stock UGC policy it keeps the class and data-kind attributes this
// module emits, so sanitized content can round trip through the
// highlighter and linkifier markup.
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("span")
	p.AllowAttrs("class").OnElements("a", "span")
	p.AllowAttrs("data-kind").OnElements("span")
	return p
}

// RenderMarkdown converts markdown to HTML without sanitizing or
// linkifying. Callers wanting the full trusted path use RenderPost.
func RenderMarkdown(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// Sanitize strips disallowed markup from editor-produced HTML.
func Sanitize(html string) string {
	return policy.Sanitize(html)
}

// RenderPost converts an authored markdown body into display HTML:
// render, sanitize, then linkify references. The linkifier runs last,
// on trusted markup, so its anchors are not stripped or re-escaped.
func RenderPost(md string) (string, error) {
	rendered, err := RenderMarkdown(md)
	if err != nil {
		return "", err
	}
	return refs.ProcessHTMLContentWithRefs(Sanitize(rendered)), nil
}

// RenderPlain converts untrusted plain text into display HTML,
// escaping before linkification.
func RenderPlain(text string) string {
	return refs.ParseContentWithRefs(text)
}
