package pembahasan

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/btw-edu/pembahasan-lambda/internal/question"
)

var (
	mathInlinePattern  = regexp.MustCompile(`(\\\(.+?\\\))`)
	mathDisplayPattern = regexp.MustCompile(`(\\\[.+?\\\])`)

	openParagraphPattern  = regexp.MustCompile(`(?i)^\s*<p[^>]*>`)
	closeParagraphPattern = regexp.MustCompile(`(?i)</p>\s*$`)
	spanTagPattern        = regexp.MustCompile(`(?i)</?span[^>]*>`)
	breakTagPattern       = regexp.MustCompile(`(?i)<br\s*/?>`)

	correctLabelPattern = regexp.MustCompile(`(?i)^jawaban yang tepat[\s:,-]*`)

	wordPattern      = regexp.MustCompile(`^[A-Za-zÀ-ÿ']+`)
	allTokensPattern = regexp.MustCompile(`[A-Za-zÀ-ÿ']+`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// reasonPrefixPatterns adalah label berulang yang dibuang dari awal alasan,
// seperti "Jawaban yang kurang tepat:" atau "- Opsi 1:".
var reasonPrefixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*jawaban\s+yang\s+kurang\s+tepat\s*[:\-]*\s*`),
	regexp.MustCompile(`(?i)^\s*jawaban\s+kurang\s+tepat\s*[:\-]*\s*`),
	regexp.MustCompile(`(?i)^\s*jawaban\s+salah\s*[:\-]*\s*`),
	regexp.MustCompile(`(?i)^\s*opsi\s+salah\s+[A-E0-9]+\s*[:\-]*\s*`),
	regexp.MustCompile(`(?i)^\s*-\s*(opsi|pilihan)\s+[A-E0-9]+\s*[:\-]*\s*`),
	regexp.MustCompile(`(?i)^\s*(opsi|pilihan)\s+[A-E0-9]+\s*[:\-]*\s*`),
}

func ensureTrailingPeriod(text string) string {
	if text == "" {
		return text
	}
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?") {
		return text
	}
	return text + "."
}

// wrapMathTex membungkus TeX inline dengan span math-tex untuk keluaran TIU
// numerik.
func wrapMathTex(text string) string {
	if text == "" {
		return text
	}
	wrapped := mathInlinePattern.ReplaceAllString(text, `<span class="math-tex">$1</span>`)
	wrapped = mathDisplayPattern.ReplaceAllString(wrapped, `<span class="math-tex">$1</span>`)
	return wrapped
}

// splitNumericParagraphs memecah satu paragraf numerik pada line break yang
// tertanam setelah membersihkan tag <p>, <span>, dan <br>.
func splitNumericParagraphs(text string) []string {
	cleaned := strings.TrimSpace(text)
	cleaned = openParagraphPattern.ReplaceAllString(cleaned, "")
	cleaned = closeParagraphPattern.ReplaceAllString(cleaned, "")
	cleaned = spanTagPattern.ReplaceAllString(cleaned, "")
	cleaned = breakTagPattern.ReplaceAllString(cleaned, "\n")

	var parts []string
	for _, part := range strings.Split(cleaned, "\n") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// TruncateText memotong teks diagnostik yang terlalu panjang.
func TruncateText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "\n... (dipotong)"
}

func formatParagraph(text string, styled bool) string {
	if styled {
		return `<p style="text-align:justify">` + text + `</p>`
	}
	return "<p>" + text + "</p>"
}

// dedupeParagraphs membuang paragraf ganda, dibandingkan setelah spasi
// dinormalkan, dengan mempertahankan urutan kemunculan pertama.
func dedupeParagraphs(paragraphs []string) []string {
	seen := make(map[string]bool, len(paragraphs))
	var result []string
	for _, paragraph := range paragraphs {
		text := strings.TrimSpace(paragraph)
		if text == "" {
			continue
		}
		normalized := strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		result = append(result, text)
	}
	return result
}

// stripReasonPrefix membuang label berulang dari awal alasan sampai tidak
// ada perubahan lagi (titik tetap).
func stripReasonPrefix(reason string) string {
	cleaned := strings.TrimSpace(reason)
	for {
		updated := cleaned
		for _, pattern := range reasonPrefixPatterns {
			if loc := pattern.FindStringIndex(updated); loc != nil {
				updated = strings.TrimSpace(updated[loc[1]:])
			}
		}
		updated = strings.TrimSpace(strings.TrimLeft(updated, "-: "))
		if updated == cleaned {
			break
		}
		cleaned = updated
	}
	return cleaned
}

// stripOptionEcho membuang salinan teks opsi di awal alasan, berulang sampai
// tidak ada gema tersisa.
func stripOptionEcho(reason, optionText string) string {
	cleaned := strings.TrimSpace(reason)
	option := strings.TrimSpace(optionText)
	if option == "" {
		return cleaned
	}

	loweredOption := strings.ToLower(option)
	for {
		if !strings.HasPrefix(strings.ToLower(cleaned), loweredOption) {
			break
		}
		trimmed := strings.TrimSpace(strings.TrimLeft(cleaned[len(option):], " ,:.-"))
		if trimmed == "" {
			cleaned = ""
			break
		}
		cleaned = trimmed
	}
	return cleaned
}

// extractProperTokens mengumpulkan token berhuruf besar (nama diri, dsb.)
// yang kapitalisasinya harus dipertahankan.
func extractProperTokens(texts ...string) map[string]bool {
	tokens := map[string]bool{}
	for _, text := range texts {
		if text == "" {
			continue
		}
		for _, token := range allTokensPattern.FindAllString(text, -1) {
			first, _ := utf8.DecodeRuneInString(token)
			if unicode.IsUpper(first) {
				tokens[token] = true
			}
		}
	}
	return tokens
}

// normalizeReasonCapital memastikan lanjutan kalimat setelah titik dua
// diawali huruf kecil, kecuali token yang dipertahankan atau kata "Anda".
func normalizeReasonCapital(text string, preserveTokens map[string]bool) string {
	original := text
	if text == "" {
		return original
	}

	leading := len(text) - len(strings.TrimLeft(text, " \t"))
	working := text[leading:]

	if prefix, suffix, found := strings.Cut(working, ":"); found && suffix != "" {
		rest := strings.TrimLeft(suffix, " \t")
		if strings.HasPrefix(strings.ToLower(rest), "adalah ") {
			rest = rest[len("adalah "):]
		}
		if rest != "" {
			if word := wordPattern.FindString(rest); word != "" {
				if !preserveTokens[word] && strings.ToLower(word) != "anda" {
					rest = strings.ToLower(word) + rest[len(word):]
				}
			}
		}
		spaceAfter := suffix[:len(suffix)-len(strings.TrimLeft(suffix, " \t"))]
		if spaceAfter == "" {
			spaceAfter = " "
		}
		if rest == "" {
			return original
		}
		return text[:leading] + prefix + ":" + spaceAfter + rest
	}

	idx := 0
	for idx < len(working) {
		r, size := utf8.DecodeRuneInString(working[idx:])
		if unicode.IsLetter(r) {
			break
		}
		idx += size
	}
	if idx >= len(working) {
		return original
	}

	word := wordPattern.FindString(working[idx:])
	if word == "" {
		return original
	}
	if preserveTokens[word] || strings.ToLower(word) == "anda" {
		return original
	}

	first, size := utf8.DecodeRuneInString(word)
	lowered := string(unicode.ToLower(first)) + word[size:]
	return text[:leading+idx] + lowered + working[idx+len(word):]
}

// enrichReason memastikan alasan opsi salah cukup substantif (minimal dua
// kalimat atau ~25 kata); bila kurang, satu kalimat pelengkap ditambahkan.
func enrichReason(optionText, reason, correctText string) string {
	cleaned := strings.TrimSpace(reason)
	if cleaned != "" {
		cleaned = ensureTrailingPeriod(cleaned)
	}

	sentenceCount := strings.Count(cleaned, ".") + strings.Count(cleaned, "!") + strings.Count(cleaned, "?")
	wordCount := len(strings.Fields(cleaned))

	var supplement string
	if sentenceCount < 2 || wordCount < 25 {
		switch {
		case optionText != "" && correctText != "":
			supplement = "penjelasan ini masih menyoroti " + optionText +
				" tanpa mengaitkannya dengan inti soal mengenai " + correctText + "."
		case correctText != "":
			supplement = "penjelasan ini belum menunjukkan keterkaitan dengan tuntutan soal tentang " +
				correctText + "."
		default:
			supplement = "penjelasan perlu menyebutkan secara spesifik mengapa pilihan ini tidak memenuhi kebutuhan soal."
		}
	}

	enriched := cleaned
	if supplement != "" {
		if enriched != "" && !strings.HasSuffix(enriched, " ") {
			enriched += " "
		}
		enriched += supplement
	}
	return strings.TrimSpace(enriched)
}

func labelWithScore(optionText string, score *float64, includeScore bool) string {
	label := strings.TrimSpace(optionText)
	if includeScore {
		if scoreText := question.FormatScore(score); scoreText != "" {
			label = label + " (" + scoreText + ")"
		}
	}
	return label
}

func upperFirst(text string) string {
	if text == "" {
		return text
	}
	first, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(first)) + text[size:]
}
