package inference

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/btw-edu/pembahasan-lambda/internal/question"
)

// letterIndex memetakan huruf jawaban (atau label "Pilihan X") ke indeks slot.
var letterIndex = map[string]int{
	"A":         0,
	"B":         1,
	"C":         2,
	"D":         3,
	"E":         4,
	"PILIHAN A": 0,
	"PILIHAN B": 1,
	"PILIHAN C": 2,
	"PILIHAN D": 3,
	"PILIHAN E": 4,
}

var legacyAnswerPattern = regexp.MustCompile(`jawaban yang (?:benar|tepat)\s*[:\-]\s*(.+)`)

// strategy mencoba menebak indeks opsi benar dari satu sinyal sumber.
// Hasil kosong berarti sinyal tidak tersedia dan strategi berikutnya dicoba.
type strategy func(row question.Row, options []question.Option) []int

var strategies = []strategy{
	fromScores,
	fromChosenLetter,
	fromAnswerText,
	fromLegacyExplanation,
}

// CorrectIndices menjalankan strategi sesuai prioritas dan mengembalikan
// hasil pertama yang tidak kosong. Hasil kosong berarti jawaban benar tidak
// dapat disimpulkan dan baris harus dilewati oleh pemanggil.
func CorrectIndices(row question.Row, options []question.Option) []int {
	for _, infer := range strategies {
		if indices := infer(row, options); len(indices) > 0 {
			return indices
		}
	}
	return nil
}

// fromScores: semua opsi dengan skor maksimum dianggap benar. Slot khusus
// "Pilihan" (tanpa huruf) dipetakan lewat letterIndex bila skornya maksimum.
func fromScores(row question.Row, options []question.Option) []int {
	type scored struct {
		idx   int
		value float64
	}

	var scoredOptions []scored
	for idx, opt := range options {
		if opt.Score != nil {
			scoredOptions = append(scoredOptions, scored{idx, *opt.Score})
		}
	}
	chosenSlot := len(options)
	if score := question.ParseScore(row.OptionNumberScore); score != nil {
		scoredOptions = append(scoredOptions, scored{chosenSlot, *score})
	}

	if len(scoredOptions) == 0 {
		return nil
	}

	maxScore := scoredOptions[0].value
	for _, s := range scoredOptions[1:] {
		if s.value > maxScore {
			maxScore = s.value
		}
	}

	var indices []int
	for _, s := range scoredOptions {
		if s.value != maxScore {
			continue
		}
		if s.idx == chosenSlot {
			letter := strings.ToUpper(strings.TrimSpace(row.OptionNumber))
			if mapped, ok := letterIndex[letter]; ok {
				indices = append(indices, mapped)
			}
			continue
		}
		indices = append(indices, s.idx)
	}

	return dedupe(indices)
}

// fromChosenLetter hanya berlaku bila huruf menunjuk slot yang terisi;
// slot kosong diserahkan ke strategi berikutnya.
func fromChosenLetter(row question.Row, options []question.Option) []int {
	letter := strings.ToUpper(strings.TrimSpace(row.OptionNumber))
	if idx, ok := letterIndex[letter]; ok && idx < len(options) && options[idx].Text != "" {
		return []int{idx}
	}
	return nil
}

// fromAnswerText mencocokkan teks jawaban bebas dengan teks tiap opsi lewat
// tiga perbandingan bertingkat: sama persis, berakhiran, atau memuat.
func fromAnswerText(row question.Row, options []question.Option) []int {
	if strings.TrimSpace(row.AnswerHeaderTrue) == "" {
		return nil
	}

	answer := strings.ToLower(question.SanitizeText(row.AnswerHeaderTrue))
	var indices []int
	for idx, opt := range options {
		candidate := strings.ToLower(strings.TrimSpace(opt.Text))
		if candidate == "" {
			continue
		}
		if answer == candidate || strings.HasSuffix(answer, candidate) || strings.Contains(answer, candidate) {
			indices = append(indices, idx)
		}
	}
	return indices
}

// fromLegacyExplanation mencari pola "jawaban yang benar/tepat: ..." pada
// teks pembahasan lama dan mencocokkan potongannya dengan teks opsi.
func fromLegacyExplanation(row question.Row, options []question.Option) []int {
	text := row.Explanation
	if strings.TrimSpace(text) == "" {
		text = row.ExplanationAI
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	cleaned := strings.ToLower(question.SanitizeText(text))
	match := legacyAnswerPattern.FindStringSubmatch(cleaned)
	if match == nil {
		return nil
	}

	segment := match[1]
	for idx, opt := range options {
		candidate := strings.ToLower(strings.TrimSpace(opt.Text))
		if candidate == "" {
			continue
		}
		if strings.HasPrefix(segment, candidate) || strings.Contains(segment, candidate) {
			return []int{idx}
		}
	}
	return nil
}

// ReorderTextFirst menempatkan indeks dengan teks opsi terisi di depan tanpa
// mengubah keanggotaan daftar.
func ReorderTextFirst(indices []int, options []question.Option) []int {
	var textful, leftovers []int
	for _, idx := range indices {
		if idx < len(options) && options[idx].Text != "" {
			textful = append(textful, idx)
		} else {
			leftovers = append(leftovers, idx)
		}
	}
	if len(textful) == 0 {
		return indices
	}
	return append(textful, leftovers...)
}

// IncorrectIndices mengembalikan semua indeks terisi yang tidak ada pada
// daftar benar, sesuai urutan slot asli.
func IncorrectIndices(correct []int, options []question.Option) []int {
	inCorrect := make(map[int]bool, len(correct))
	for _, idx := range correct {
		inCorrect[idx] = true
	}

	var indices []int
	for idx, opt := range options {
		if !inCorrect[idx] && opt.Text != "" {
			indices = append(indices, idx)
		}
	}
	return indices
}

// OrderByScore mengurutkan indeks dari skor tertinggi ke terendah (skor
// kosong dianggap -inf), seri dipecah oleh urutan slot asli. Indeks ganda,
// di luar jangkauan, atau tanpa teks dibuang.
func OrderByScore(indices []int, options []question.Option) []int {
	seen := make(map[int]bool, len(indices))
	var filtered []int
	for _, idx := range indices {
		if seen[idx] || idx >= len(options) {
			continue
		}
		if options[idx].Text == "" {
			continue
		}
		seen[idx] = true
		filtered = append(filtered, idx)
	}

	scoreOf := func(idx int) float64 {
		if options[idx].Score != nil {
			return *options[idx].Score
		}
		return math.Inf(-1)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		si, sj := scoreOf(filtered[i]), scoreOf(filtered[j])
		if si != sj {
			return si > sj
		}
		return filtered[i] < filtered[j]
	})
	return filtered
}

func dedupe(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	var out []int
	for _, idx := range indices {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out
}
