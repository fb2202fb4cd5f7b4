package question

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// SanitizeText membuang tag markup dan entity HTML lalu merapatkan spasi
// tanpa mengubah susunan kata.
func SanitizeText(value string) string {
	text := html.UnescapeString(value)
	text = tagPattern.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// NormalizeLabel menormalkan string kategori/subkategori untuk perbandingan.
func NormalizeLabel(value string) string {
	text := whitespacePattern.ReplaceAllString(value, " ")
	return strings.ToLower(strings.TrimSpace(text))
}
