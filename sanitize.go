package textract

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// spaceEntities maps HTML spacing entities that survive as literal text.
var spaceEntities = strings.NewReplacer(
	"&#13;", "\r",
	"&#10;", "\n",
	"&nbsp;", " ",
)

// Sanitize prepares extracted text for display. It drops control
// characters, collapses whitespace within each line, removes blank lines
// and normalizes the result to Unicode NFC.
//
// Extractors never sanitize; Document.Text keeps the joined text as found.
func Sanitize(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(removeControlCharacters(spaceEntities.Replace(line))), " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return norm.NFC.String(strings.Join(lines, "\n"))
}

// removeControlCharacters keeps printable and whitespace runes only.
func removeControlCharacters(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}

// IsDubiousHTML reports whether markup does not look like an HTML document,
// judged by the absence of "html" in its first 50 bytes.
func IsDubiousHTML(markup string) bool {
	beginning := markup
	if len(beginning) > 50 {
		beginning = beginning[:50]
	}
	return !strings.Contains(strings.ToLower(beginning), "html")
}
