package refs

import (
	"fmt"
	"strings"
)

// Anchor paths follow the application router convention: /u/<username>
// for profiles and mentions, /t/<topicname> for topics.

func userRefAnchor(username string) string {
	return fmt.Sprintf(`<a href="/u/%s" class="user-ref">u/%s</a>`, username, username)
}

func topicRefAnchor(topic string) string {
	return fmt.Sprintf(`<a href="/t/%s" class="topic-ref">t/%s</a>`, topic, topic)
}

func mentionAnchor(username string) string {
	return fmt.Sprintf(`<a href="/u/%s" class="mention">@%s</a>`, username, username)
}

// LinkifyUserRefs converts u/username references into profile links.
// A leading slash on the matched reference is consumed; the link text
// is always u/<username>.
func LinkifyUserRefs(text string) string {
	return userRefRegex.ReplaceAllString(text, `<a href="/u/$1" class="user-ref">u/$1</a>`)
}

// LinkifyTopicRefs converts t/topicname references into topic links.
func LinkifyTopicRefs(text string) string {
	return topicRefRegex.ReplaceAllString(text, `<a href="/t/$1" class="topic-ref">t/$1</a>`)
}

// LinkifyMentions converts @username mentions into profile links.
func LinkifyMentions(text string) string {
	return mentionRegex.ReplaceAllString(text, `<a href="/u/$1" class="mention">@$1</a>`)
}

// LinkifyAllRefs applies all three linkifiers in fixed order: user
// refs, then topic refs, then mentions. Applying it twice may wrap
// already-linkified output again; callers linkify once at render time.
func LinkifyAllRefs(text string) string {
	text = LinkifyUserRefs(text)
	text = LinkifyTopicRefs(text)
	text = LinkifyMentions(text)
	return text
}

// escapeContent neutralizes markup characters in untrusted text.
// Ampersands are replaced first so the entities introduced by the
// later replacements are not escaped twice.
func escapeContent(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// ParseContentWithRefs converts untrusted plain text into HTML with
// all references linkified. Escaping happens before linkification, so
// literal markup in the input is neutralized while the inserted
// anchors are not.
func ParseContentWithRefs(text string) string {
	return LinkifyAllRefs(escapeContent(text))
}
