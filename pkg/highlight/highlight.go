// Package highlight 给搜索结果里的命中片段加高亮标记，只改渲染副本，不碰存储内容。
package highlight

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Mark 把 text 中所有大小写不敏感出现的 query 包进高亮 span。
// query 先做字面转义，用户输入不会被当作正则语法。
// 任一入参为空或模式编译失败时原样返回。
func Mark(text, query string) string {
	if text == "" || query == "" {
		return text
	}

	re, err := regexp.Compile("(?i)(" + regexp.QuoteMeta(query) + ")")
	if err != nil {
		return text
	}
	return re.ReplaceAllString(text, `<span class="highlight">$1</span>`)
}

// Snippet 取第一处命中前后各 window 个字符作为摘要，
// 没有命中时退回正文前 fallback 个字符加省略号。
// 切点回退到 rune 边界，不会截断多字节字符。
func Snippet(content, query string, window, fallback int) string {
	if content == "" {
		return ""
	}

	pos := indexFold(content, query)
	if pos < 0 || query == "" {
		if len(content) > fallback {
			return content[:runeFloor(content, fallback)] + "..."
		}
		return content
	}

	start := pos - window
	if start < 0 {
		start = 0
	}
	start = runeFloor(content, start)
	end := pos + len(query) + window
	if end > len(content) {
		end = len(content)
	}
	end = runeFloor(content, end)

	snippet := content[start:end]
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(content) {
		snippet = snippet + "..."
	}
	return snippet
}

// indexFold 大小写不敏感查找，找不到返回 -1
func indexFold(s, substr string) int {
	if substr == "" {
		return -1
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(substr))
	if err != nil {
		return -1
	}
	loc := re.FindStringIndex(s)
	if loc == nil {
		return -1
	}
	return loc[0]
}

// Truncate 截断预览文本，超长补省略号
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:runeFloor(s, n)])
}

// runeFloor 把字节偏移回退到最近的 rune 起始位置
func runeFloor(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
