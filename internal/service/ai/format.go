package ai

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NoInformationText is the single bullet shown for an empty summary.
const NoInformationText = "No information found for this topic in the selected document."

const (
	maxBulletRunes  = 300
	maxHeadingRunes = 80
)

// Bullet is one item of a formatted summary.
type Bullet struct {
	Text string `json:"text"`
	// Heading marks a short item that introduced a group; its colon is removed.
	Heading bool `json:"heading"`
}

var (
	parenPageRef  = regexp.MustCompile(`(?i)\([^)]*Page[^)]*\)`)
	squarePageRef = regexp.MustCompile(`(?i)\[(?:[^\]]*page[^\]]*|[^\]]*slide[^\]]*)\]`)
	pageRef       = regexp.MustCompile(`(?i)\bPage\s*\d+\b`)
	slideRef      = regexp.MustCompile(`(?i)\bSlide\s*\d+\b`)
	multiSpace    = regexp.MustCompile(`\s{2,}`)

	bulletSplit    = regexp.MustCompile(`\n+|•\s+|-\s+|\*\s+`)
	numberedPrefix = regexp.MustCompile(`^\d+\)\s*`)
	dottedPrefix   = regexp.MustCompile(`^\d+\.\s*`)

	mdBold       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalic     = regexp.MustCompile(`\*([^*]+)\*`)
	mdUnderBold  = regexp.MustCompile(`__([^_]+)__`)
	mdUnderscore = regexp.MustCompile(`_([^_]+)_`)
	mdCode       = regexp.MustCompile("`([^`]+)`")

	conceptPrefix = regexp.MustCompile(`^(?:\d+[.)]|[*•])\s*`)
)

// StripReferences removes page and slide citations from model output.
func StripReferences(text string) string {
	t := parenPageRef.ReplaceAllString(text, "")
	t = squarePageRef.ReplaceAllString(t, "")
	t = pageRef.ReplaceAllString(t, "")
	t = slideRef.ReplaceAllString(t, "")
	t = multiSpace.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// CleanMarkdown removes emphasis and code markers and collapses spacing.
func CleanMarkdown(s string) string {
	s = mdBold.ReplaceAllString(s, "$1")
	s = mdItalic.ReplaceAllString(s, "$1")
	s = mdUnderBold.ReplaceAllString(s, "$1")
	s = mdUnderscore.ReplaceAllString(s, "$1")
	s = mdCode.ReplaceAllString(s, "$1")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ToBullets splits prose into deduplicated bullet items. Existing line and
// bullet breaks are used when there are at least three; otherwise the text
// is split into sentences.
func ToBullets(text string) []Bullet {
	empty := []Bullet{{Text: NoInformationText}}
	if strings.TrimSpace(text) == "" {
		return empty
	}

	parts := nonBlank(bulletSplit.Split(text, -1))
	if len(parts) < 3 {
		parts = splitSentences(text)
	}

	seen := make(map[string]bool, len(parts))
	var out []Bullet
	for _, p := range parts {
		p = numberedPrefix.ReplaceAllString(p, "")
		p = dottedPrefix.ReplaceAllString(p, "")
		p = CleanMarkdown(p)
		if utf8.RuneCountInString(p) > maxBulletRunes {
			p = string([]rune(p)[:maxBulletRunes-3]) + "…"
		}

		key := strings.ToLower(p)
		if seen[key] {
			continue
		}
		seen[key] = true

		b := Bullet{Text: p}
		if strings.HasSuffix(p, ":") && utf8.RuneCountInString(p) <= maxHeadingRunes {
			b = Bullet{Text: strings.TrimSuffix(p, ":"), Heading: true}
		}
		out = append(out, b)
	}
	if len(out) == 0 {
		return empty
	}
	return out
}

// splitSentences breaks text after each '.' that is followed by whitespace.
func splitSentences(text string) []string {
	var (
		parts []string
		start int
	)
	for i := 0; i < len(text); i++ {
		if text[i] != '.' || i+1 >= len(text) || !isSpace(text[i+1]) {
			continue
		}
		parts = append(parts, text[start:i+1])
		j := i + 1
		for j < len(text) && isSpace(text[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	parts = append(parts, text[start:])
	return nonBlank(parts)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
