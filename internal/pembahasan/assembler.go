package pembahasan

import (
	"strconv"
	"strings"

	"github.com/btw-edu/pembahasan-lambda/internal/category"
	"github.com/btw-edu/pembahasan-lambda/internal/question"
)

// AssembleInput membawa seluruh konteks yang dibutuhkan perakitan satu baris.
// CorrectIndices dan IncorrectIndices sudah diurutkan berdasarkan skor.
type AssembleInput struct {
	Parsed           *ParsedResponse
	Options          []question.Option
	CorrectIndices   []int
	IncorrectIndices []int
	Variant          category.Variant
	IncludeScores    bool
	QuestionSummary  string
}

// HasSufficientNumericDetail memeriksa apakah balasan memuat cukup paragraf
// detail yang berbeda untuk varian TIU numerik.
func HasSufficientNumericDetail(parsed *ParsedResponse) bool {
	return len(dedupeParagraphs(parsed.DetailParagraphs)) >= MinNumericParagraphs
}

// Assemble merangkai dokumen pembahasan dari balasan ternormalisasi: baris
// jawaban benar, paragraf penjelasan, tabel analitis bila ada, dan daftar
// opsi salah beserta alasannya.
func Assemble(in AssembleInput) Document {
	isNumeric := in.Variant == category.VariantNumericTIU
	isAnalitis := in.Variant == category.VariantVerbalAnalitis
	includeIncorrect := !isNumeric

	correctSummary := strings.TrimSpace(in.Parsed.CorrectSummary)
	detailParagraphs := in.Parsed.DetailParagraphs
	if isNumeric {
		detailParagraphs = dedupeParagraphs(detailParagraphs)
	}

	var fragments []string

	if correctSummary == "" && len(in.CorrectIndices) > 0 {
		if first := in.CorrectIndices[0]; first < len(in.Options) {
			correctSummary = in.Options[first].Text
		}
	}

	mainOption := ""
	var mainScore *float64
	if len(in.CorrectIndices) > 0 {
		if idx := in.CorrectIndices[0]; idx < len(in.Options) {
			mainOption = strings.TrimSpace(in.Options[idx].Text)
			mainScore = in.Options[idx].Score
		}
	}

	if correctSummary != "" || mainOption != "" {
		correctText := question.SanitizeText(correctSummary)
		correctText = strings.TrimSpace(correctLabelPattern.ReplaceAllString(correctText, ""))

		// Ringkasan yang persis sama dengan salah satu opsi dianggap
		// sebagai opsi utama ketika inferensi tidak menghasilkan apa pun.
		if mainOption == "" && correctText != "" {
			lowered := strings.ToLower(correctText)
			for _, opt := range in.Options {
				if opt.Text != "" && strings.ToLower(opt.Text) == lowered {
					mainOption = opt.Text
					break
				}
			}
		}

		primaryText := ""
		explanationCore := ""
		if mainOption != "" {
			primaryText = mainOption
			explanationCore = stripOptionEcho(correctText, mainOption)
		} else {
			primaryText = correctText
		}
		primaryText = strings.TrimSpace(primaryText)
		explanationCore = strings.TrimSpace(explanationCore)

		if explanationCore != "" && strings.EqualFold(explanationCore, primaryText) {
			explanationCore = ""
		}

		if primaryText != "" {
			primaryLabel := labelWithScore(primaryText, mainScore, in.IncludeScores)
			correctLine := "Jawaban yang tepat: " + primaryLabel
			if !isNumeric {
				correctLine = ensureTrailingPeriod(correctLine)
			}
			if isNumeric {
				correctLine = wrapMathTex(correctLine)
			}
			fragments = append(fragments, formatParagraph("<strong>"+correctLine+"</strong>", true))
		}

		if explanationCore != "" && len(detailParagraphs) == 0 {
			sentence := ensureTrailingPeriod(upperFirst(explanationCore))
			detailParagraphs = []string{sentence}
		}
	}

	added := 0
	for _, paragraph := range detailParagraphs {
		rawParagraph := strings.TrimSpace(paragraph)
		if rawParagraph == "" {
			continue
		}
		if isAnalitis && strings.Contains(strings.ToLower(rawParagraph), "<table") {
			fragments = append(fragments, rawParagraph)
			added++
			continue
		}
		plain := question.SanitizeText(rawParagraph)
		if plain == "" {
			continue
		}
		if isEchoParagraph(plain) {
			continue
		}
		if isNumeric {
			for _, part := range splitNumericParagraphs(rawParagraph) {
				fragments = append(fragments, formatParagraph(wrapMathTex(part), true))
				added++
			}
			continue
		}
		fragments = append(fragments, formatParagraph(plain, true))
		added++
	}

	if mainOption != "" && added == 0 && !isNumeric && !isAnalitis {
		filler := mainOption + " mencerminkan penghormatan terhadap seni dan budaya lokal. " +
			"Jelaskan bagaimana unsur-unsur budaya dalam opsi tersebut muncul pada konteks soal."
		fragments = append(fragments, formatParagraph(filler, true))
	}

	if isAnalitis {
		if table := strings.TrimSpace(in.Parsed.TableHTML); table != "" &&
			strings.Contains(strings.ToLower(table), "<table") {
			fragments = append(fragments, table)
		}
	}

	if len(in.IncorrectIndices) > 0 && includeIncorrect {
		fragments = append(fragments, formatParagraph("<strong>Jawaban yang kurang tepat:</strong>", true))
		for _, idx := range in.IncorrectIndices {
			if idx >= len(in.Options) {
				continue
			}
			optionText := in.Options[idx].Text
			if optionText == "" {
				continue
			}
			if mainOption != "" && strings.EqualFold(strings.TrimSpace(optionText), mainOption) {
				continue
			}

			reason := strings.TrimSpace(in.Parsed.IncorrectReasons[strconv.Itoa(idx+1)])
			reason = question.SanitizeText(reason)
			reason = stripReasonPrefix(reason)
			reason = stripOptionEcho(reason, optionText)
			reason = enrichReason(optionText, reason, mainOption)
			if reason != "" {
				preserve := extractProperTokens(optionText, mainOption)
				reason = normalizeReasonCapital(reason, preserve)
			}

			optionLabel := labelWithScore(optionText, in.Options[idx].Score, in.IncludeScores)
			fragments = append(fragments, formatParagraph("- <strong>"+optionLabel+":</strong> "+reason, true))
		}
	}

	return Document{Fragments: fragments}
}

// isEchoParagraph mendeteksi paragraf yang hanya mengulang label jawaban atau
// daftar opsi yang sudah dirangkai di tempat lain.
func isEchoParagraph(plain string) bool {
	lowered := strings.ToLower(plain)
	for _, prefix := range []string{
		"jawaban yang tepat",
		"jawaban yang kurang tepat",
		"- opsi",
		"opsi",
		"- pilihan",
		"- ",
	} {
		if strings.HasPrefix(lowered, prefix) {
			return true
		}
	}
	return false
}
