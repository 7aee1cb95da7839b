package refs

import "regexp"

// Cursor-aware mention editing for keystroke-driven autocomplete.
// Cursor positions are byte offsets into the UTF-8 text. The backward
// scans compare single ASCII bytes, which never collide with UTF-8
// continuation bytes.

// In-progress fragments may be empty (cursor right after a bare @).
var mentionFragmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_]*$`)

// MentionAtCursor returns the in-progress mention fragment at the
// cursor: the text between the nearest preceding @ and the cursor,
// provided no space intervenes and the fragment contains only word
// characters. ok is false when there is no such fragment.
func MentionAtCursor(text string, cursor int) (string, bool) {
	if cursor < 0 || cursor > len(text) {
		return "", false
	}
	for i := cursor - 1; i >= 0; i-- {
		switch text[i] {
		case '@':
			fragment := text[i+1 : cursor]
			if !mentionFragmentRegex.MatchString(fragment) {
				return "", false
			}
			return fragment, true
		case ' ':
			return "", false
		}
	}
	return "", false
}

// InsertMention completes a mention at the cursor, returning the new
// text and cursor position. It scans backward for the nearest @,
// stopping only at the start of the text (spaces do not end the scan,
// unlike MentionAtCursor). If an @ is found, everything from it
// through the cursor is replaced with "@username "; otherwise the
// token is inserted at the cursor. Text after the original cursor is
// always kept, even when the cursor sat mid-word.
func InsertMention(text string, cursor int, username string) (string, int) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}

	start := -1
	for i := cursor - 1; i >= 0; i-- {
		if text[i] == '@' {
			start = i
			break
		}
	}

	token := "@" + username + " "
	if start == -1 {
		return text[:cursor] + token + text[cursor:], cursor + len(token)
	}
	return text[:start] + token + text[cursor:], start + len(token)
}
