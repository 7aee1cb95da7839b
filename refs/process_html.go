package refs

import (
	"regexp"
	"strings"
)

// ProcessHTMLContentWithRefs linkifies references inside trusted,
// already-sanitized rich-text HTML. Unlike ParseContentWithRefs it
// performs no escaping (the input is markup), and it skips matches
// that sit inside an href attribute value or inside existing anchor
// content, so links produced by the editor are not corrupted or
// nested.
//
// The context check is a textual heuristic over the surrounding
// string, not an HTML parser. It mis-handles multi-line attributes,
// reordered attributes with embedded quotes, and pathological nesting.
// Known limitation.
func ProcessHTMLContentWithRefs(html string) string {
	html = linkifyHTML(html, userRefRegex, userRefAnchor)
	html = linkifyHTML(html, topicRefRegex, topicRefAnchor)
	html = linkifyHTML(html, mentionRegex, mentionAnchor)
	return html
}

// linkifyHTML replaces matches of pattern with anchor markup, skipping
// matches in anchor contexts. Matches are located in a single pass and
// the result is assembled fresh, so no matcher state is shared.
func linkifyHTML(html string, pattern *regexp.Regexp, anchor func(id string) string) string {
	matches := pattern.FindAllStringSubmatchIndex(html, -1)
	if matches == nil {
		return html
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if insideHref(html, start) || insideAnchorText(html, end) {
			continue
		}
		sb.WriteString(html[last:start])
		sb.WriteString(anchor(html[m[2]:m[3]]))
		last = end
	}
	sb.WriteString(html[last:])
	return sb.String()
}

// insideHref reports whether the text starting at pos is part of an
// href attribute value: an unclosed `href="` precedes it.
func insideHref(html string, pos int) bool {
	i := strings.LastIndex(html[:pos], `href="`)
	if i == -1 {
		return false
	}
	return !strings.Contains(html[i+len(`href="`):pos], `"`)
}

// insideAnchorText reports whether the match ending at pos sits
// directly inside anchor content: the next tag after it is `</a>`.
func insideAnchorText(html string, pos int) bool {
	lt := strings.IndexByte(html[pos:], '<')
	if lt == -1 {
		return false
	}
	return strings.HasPrefix(html[pos+lt:], "</a>")
}
