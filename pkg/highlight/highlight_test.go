package highlight

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestMark(t *testing.T) {
	got := Mark("Contract law and contract theory", "contract")
	want := `<span class="highlight">Contract</span> law and <span class="highlight">contract</span> theory`
	if got != want {
		t.Fatalf("Mark() = %q, want %q", got, want)
	}
}

// 没命中的文本必须原样返回，反复调用也不能变
func TestMark_NoMatchUnchanged(t *testing.T) {
	text := "equity follows the law"
	got := Mark(text, "tort")
	if got != text {
		t.Fatalf("non-matching text changed: %q", got)
	}
	if again := Mark(got, "tort"); again != text {
		t.Fatalf("repeated mark changed text: %q", again)
	}
}

func TestMark_QueryIsEscaped(t *testing.T) {
	text := "what is a.b anyway"
	// 正则元字符按字面匹配，a.b 不能命中 axb
	if got := Mark("axb", "a.b"); got != "axb" {
		t.Fatalf("regex metacharacters leaked: %q", got)
	}
	if got := Mark(text, "a.b"); !strings.Contains(got, `<span class="highlight">a.b</span>`) {
		t.Fatalf("literal match failed: %q", got)
	}
}

func TestMark_EmptyInputs(t *testing.T) {
	if got := Mark("", "q"); got != "" {
		t.Fatalf("empty text should stay empty, got %q", got)
	}
	if got := Mark("text", ""); got != "text" {
		t.Fatalf("empty query should return text unchanged, got %q", got)
	}
}

func TestSnippet_WindowAroundMatch(t *testing.T) {
	content := strings.Repeat("a", 100) + "MATCH" + strings.Repeat("b", 100)
	got := Snippet(content, "match", 50, 150)

	if !strings.Contains(got, "MATCH") {
		t.Fatalf("snippet lost the match: %q", got)
	}
	if !strings.HasPrefix(got, "...") || !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipses on both sides: %q", got)
	}
	// ±50 字符窗口 + 命中词 + 两头省略号
	if len(got) != 50+len("MATCH")+50+6 {
		t.Fatalf("unexpected snippet length %d: %q", len(got), got)
	}
}

func TestSnippet_FallbackWhenNoMatch(t *testing.T) {
	content := strings.Repeat("c", 200)
	got := Snippet(content, "absent", 50, 150)
	if got != content[:150]+"..." {
		t.Fatalf("expected first 150 chars + ellipsis, got %d chars", len(got))
	}

	short := "short content"
	if got := Snippet(short, "absent", 50, 150); got != short {
		t.Fatalf("short content should come back whole, got %q", got)
	}
}

func TestSnippet_MatchNearStart(t *testing.T) {
	content := "MATCH " + strings.Repeat("d", 200)
	got := Snippet(content, "match", 50, 150)
	if strings.HasPrefix(got, "...") {
		t.Fatalf("match at start should not be elided on the left: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("long tail should be elided: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc..." {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("ab", 3); got != "ab" {
		t.Fatalf("short string should be untouched, got %q", got)
	}
}

// 截断点落在多字节字符中间时要回退到 rune 边界
func TestTruncate_RuneBoundary(t *testing.T) {
	s := "禁反言原则" // 每个汉字 3 字节
	got := Truncate(s, 4)
	if got != "禁..." {
		t.Fatalf("Truncate split a rune: %q", got)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("Truncate produced invalid UTF-8: %q", got)
	}
}

func TestSnippet_RuneBoundary(t *testing.T) {
	content := strings.Repeat("约", 40) + "MATCH" + strings.Repeat("定", 40)
	got := Snippet(content, "match", 50, 150)
	if !utf8.ValidString(got) {
		t.Fatalf("snippet split a rune: %q", got)
	}
	if !strings.Contains(got, "MATCH") {
		t.Fatalf("snippet lost the match: %q", got)
	}

	// 无命中回退路径同样不能截断字符
	fallback := Snippet(strings.Repeat("衡", 60), "absent", 50, 100)
	if !utf8.ValidString(fallback) {
		t.Fatalf("fallback split a rune: %q", fallback)
	}
	if !strings.HasSuffix(fallback, "...") {
		t.Fatalf("long fallback should be elided: %q", fallback)
	}
}
