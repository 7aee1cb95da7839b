package refs

// Highlighting wraps references in display-only spans for edit-time
// previews (textarea overlays). The output is not meant to be fed back
// through the highlighters or linkifiers.

// HighlightMentions wraps each @username mention in a highlight span.
// The matched text is preserved verbatim as the visible content.
func HighlightMentions(text string) string {
	return mentionRegex.ReplaceAllString(text, `<span class="ref-highlight" data-kind="mention">$0</span>`)
}

// HighlightUserRefs wraps each u/username reference in a highlight span.
func HighlightUserRefs(text string) string {
	return userRefRegex.ReplaceAllString(text, `<span class="ref-highlight" data-kind="user">$0</span>`)
}

// HighlightTopicRefs wraps each t/topicname reference in a highlight span.
func HighlightTopicRefs(text string) string {
	return topicRefRegex.ReplaceAllString(text, `<span class="ref-highlight" data-kind="topic">$0</span>`)
}

// HighlightAllRefs applies all three highlighters. The order (user
// refs, then topic refs, then mentions) is fixed; keep it in sync with
// LinkifyAllRefs.
func HighlightAllRefs(text string) string {
	text = HighlightUserRefs(text)
	text = HighlightTopicRefs(text)
	text = HighlightMentions(text)
	return text
}
