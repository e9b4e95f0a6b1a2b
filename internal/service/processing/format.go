package processing

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DetectTopic returns the first line that looks like a heading: 11 to 99
// characters, ending with ':' or starting with an upper-case letter.
func DetectTopic(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		n := utf8.RuneCountInString(line)
		if n <= 10 || n >= 100 {
			continue
		}
		first, _ := utf8.DecodeRuneInString(line)
		if strings.HasSuffix(line, ":") || unicode.IsUpper(first) {
			return strings.TrimSpace(strings.ReplaceAll(line, ":", ""))
		}
	}
	return TopicGeneral
}

// FormatDuration renders d as "N ms", "N.N s" or "Xm Ys".
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1f s", d.Seconds())
	default:
		total := int64(d / time.Second)
		return fmt.Sprintf("%dm %ds", total/60, total%60)
	}
}
