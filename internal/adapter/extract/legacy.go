package extract

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// minRun is the shortest printable run kept from a binary document.
const minRun = 4

// LegacyText pulls readable text out of binary Office files (.doc, .ppt).
// It keeps runs of printable characters that contain at least one letter.
// NUL bytes are skipped so UTF-16LE ASCII text reads as one run.
func (e *Extractor) LegacyText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read legacy document: %w", err)
	}
	return printableRuns(b), nil
}

func printableRuns(b []byte) string {
	var (
		out strings.Builder
		run []byte
	)
	flush := func() {
		text := strings.TrimSpace(string(run))
		run = run[:0]
		if len(text) < minRun || strings.IndexFunc(text, unicode.IsLetter) < 0 {
			return
		}
		if out.Len() > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(text)
	}

	for _, c := range b {
		switch {
		case c == 0:
		case c >= 0x20 && c < 0x7f:
			run = append(run, c)
		case c == '\t':
			run = append(run, ' ')
		case c == '\r' || c == '\n':
			flush()
		default:
			flush()
		}
	}
	flush()
	return out.String()
}

// RTFText strips RTF control words and groups, keeping the document text.
func (e *Extractor) RTFText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read rtf: %w", err)
	}
	return stripRTF(string(b)), nil
}

// Destinations whose content is metadata, not text.
var rtfSkipGroups = map[string]bool{
	"fonttbl":    true,
	"colortbl":   true,
	"stylesheet": true,
	"info":       true,
	"pict":       true,
	"header":     true,
	"footer":     true,
	"listtable":  true,
	"themedata":  true,
}

func stripRTF(s string) string {
	var (
		out   strings.Builder
		depth int
		// skipAt is the group depth being skipped, or 0.
		skipAt int
	)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '{':
			depth++
		case '}':
			if skipAt == depth {
				skipAt = 0
			}
			depth--
		case '\\':
			if i+1 >= len(s) {
				continue
			}
			next := s[i+1]
			switch {
			case next == '\\' || next == '{' || next == '}':
				if skipAt == 0 {
					out.WriteByte(next)
				}
				i++
			case next == '*':
				if skipAt == 0 {
					skipAt = depth
				}
				i++
			case next == '\'':
				if i+3 < len(s) && skipAt == 0 {
					if v, err := strconv.ParseUint(s[i+2:i+4], 16, 8); err == nil && v >= 0x20 {
						out.WriteRune(rune(v))
					}
				}
				i += 3
			case isASCIILetter(next):
				j := i + 1
				for j < len(s) && isASCIILetter(s[j]) {
					j++
				}
				word := s[i+1 : j]
				if j < len(s) && (s[j] == '-' || isDigit(s[j])) {
					j++
					for j < len(s) && isDigit(s[j]) {
						j++
					}
				}
				if j < len(s) && s[j] == ' ' {
					j++
				}
				i = j - 1

				if rtfSkipGroups[word] && skipAt == 0 {
					skipAt = depth
				}
				if skipAt != 0 {
					continue
				}
				switch word {
				case "par", "line", "sect", "page":
					out.WriteByte('\n')
				case "tab":
					out.WriteByte('\t')
				}
			default:
				i++
			}
		case '\r', '\n':
		default:
			if skipAt == 0 {
				out.WriteByte(c)
			}
		}
	}

	lines := strings.Split(out.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func isASCIILetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool       { return c >= '0' && c <= '9' }
