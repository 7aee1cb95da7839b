package refs

import (
	"strings"
	"testing"
)

func TestLinkifyUserRefs(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{"bare", "see u/alice", `see <a href="/u/alice" class="user-ref">u/alice</a>`},
		// A leading slash is part of the match but not of the link text.
		{"leading_slash", "see /u/alice", `see <a href="/u/alice" class="user-ref">u/alice</a>`},
		{"too_short", "see u/ab", "see u/ab"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LinkifyUserRefs(tc.text); got != tc.want {
				t.Errorf("LinkifyUserRefs(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestLinkifyTopicRefs(t *testing.T) {
	got := LinkifyTopicRefs("join t/go-news today")
	want := `join <a href="/t/go-news" class="topic-ref">t/go-news</a> today`
	if got != want {
		t.Errorf("LinkifyTopicRefs = %q, want %q", got, want)
	}
}

func TestLinkifyMentions(t *testing.T) {
	got := LinkifyMentions("hi @bob!")
	want := `hi <a href="/u/bob" class="mention">@bob</a>!`
	if got != want {
		t.Errorf("LinkifyMentions = %q, want %q", got, want)
	}
}

func TestLinkifyAllRefs(t *testing.T) {
	got := LinkifyAllRefs("u/alice posted in t/golang, cc @bob")
	want := `<a href="/u/alice" class="user-ref">u/alice</a> posted in ` +
		`<a href="/t/golang" class="topic-ref">t/golang</a>, cc ` +
		`<a href="/u/bob" class="mention">@bob</a>`
	if got != want {
		t.Errorf("LinkifyAllRefs = %q, want %q", got, want)
	}
}

func TestParseContentWithRefs(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{
			"escapes_before_linkifying",
			"<script>@bob</script>",
			`&lt;script&gt;<a href="/u/bob" class="mention">@bob</a>&lt;/script&gt;`,
		},
		{
			"ampersand_first",
			"a & b",
			"a &amp; b",
		},
		{
			"plain_text_untouched",
			"just words",
			"just words",
		},
		{
			"all_ref_kinds",
			"u/alice on t/golang: hi @bob",
			`<a href="/u/alice" class="user-ref">u/alice</a> on ` +
				`<a href="/t/golang" class="topic-ref">t/golang</a>: hi ` +
				`<a href="/u/bob" class="mention">@bob</a>`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseContentWithRefs(tc.text); got != tc.want {
				t.Errorf("ParseContentWithRefs(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

// Applying the plain linkifier to its own output wraps anchors again.
// That is by contract: render-time linkification happens exactly once.
func TestLinkifyAllRefsNotIdempotent(t *testing.T) {
	once := LinkifyAllRefs("hi @bob")
	twice := LinkifyAllRefs(once)
	if once == twice {
		t.Errorf("expected double application to differ, got %q both times", once)
	}
	if !strings.Contains(twice, `class="mention"`) {
		t.Errorf("double application lost the mention anchor: %q", twice)
	}
}
