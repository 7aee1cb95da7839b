// Package refs implements the inline reference grammars used in
// discussion content: @username mentions, u/username user references,
// and t/topicname topic references. All functions are pure and safe
// for concurrent use; patterns are compiled once at init.
package refs

import (
	"net/url"
	"regexp"
	"strings"
)

// Mention regex - matches @username where username is 3-20 word characters
var mentionRegex = regexp.MustCompile(`@([a-zA-Z0-9_]{3,20})`)

// User reference regex - matches u/username with an optional leading slash
var userRefRegex = regexp.MustCompile(`/?u/([a-zA-Z0-9_]{3,20})`)

// Topic reference regex - matches t/topicname with an optional leading slash,
// topic names allow hyphens and run 3-50 characters
var topicRefRegex = regexp.MustCompile(`/?t/([a-zA-Z0-9_-]{3,50})`)

// Username validity is stricter than the mention grammar: no leading or
// trailing underscore. The inner {2,18} makes the effective minimum
// length 4, which callers depend on.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_]{2,18}[a-zA-Z0-9]$`)

var topicNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{2,48}[a-zA-Z0-9]$`)

// ExtractMentions returns the distinct usernames mentioned in text, in
// order of first occurrence. Comparison is case-sensitive; no
// normalization is applied.
func ExtractMentions(text string) []string {
	seen := make(map[string]bool)
	var mentions []string
	for _, match := range mentionRegex.FindAllStringSubmatch(text, -1) {
		username := match[1]
		if !seen[username] {
			seen[username] = true
			mentions = append(mentions, username)
		}
	}
	return mentions
}

// HasMentions reports whether text contains at least one @username mention.
func HasMentions(text string) bool {
	return mentionRegex.MatchString(text)
}

// IsValidUsername reports whether s is an acceptable username: starts
// and ends with an alphanumeric character, word characters in between.
func IsValidUsername(s string) bool {
	return usernameRegex.MatchString(s)
}

// IsValidTopicName reports whether s is an acceptable topic name.
func IsValidTopicName(s string) bool {
	return topicNameRegex.MatchString(s)
}

// IsValidURL reports whether s looks like a usable http(s) URL.
// Malformed input returns false rather than an error.
func IsValidURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	// Quick reject for obviously bad URLs (no colon = no protocol)
	if !strings.Contains(s, "://") {
		return false
	}

	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Hostname() != ""
}
