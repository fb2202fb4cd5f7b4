package prompt

import (
	"fmt"
	"strings"

	"github.com/btw-edu/pembahasan-lambda/internal/category"
	"github.com/btw-edu/pembahasan-lambda/internal/inference"
	"github.com/btw-edu/pembahasan-lambda/internal/question"
)

// Context adalah hasil pembangunan instruksi: teks prompt ditambah data yang
// dibutuhkan tahap perakitan. Tidak diubah lagi setelah dibangun.
type Context struct {
	Prompt           string
	Options          []question.Option
	CorrectIndices   []int
	IncorrectIndices []int
	QuestionSummary  string
	Variant          category.Variant
}

// Build menyusun satu string instruksi untuk layanan AI: pembuka tetap,
// template sesuai varian, metadata baris, soal, daftar opsi, blok opsi benar,
// nomor opsi salah yang wajib dijelaskan, dan skema respons yang diharapkan.
func Build(row question.Row, options []question.Option, correct []int, variant category.Variant) Context {
	questionText := strings.TrimSpace(row.Question)
	questionSummary := question.SanitizeText(questionText)

	correct = inference.ReorderTextFirst(correct, options)
	incorrect := inference.IncorrectIndices(correct, options)

	var optionLines []string
	for idx, opt := range options {
		if opt.Text == "" {
			continue
		}
		optionLines = append(optionLines, fmt.Sprintf("Opsi %d: %s", idx+1, opt.Text))
	}
	optionListing := strings.Join(optionLines, "\n")
	if optionListing == "" {
		optionListing = "(Tidak ada pilihan)"
	}

	metadata := buildMetadata(row)

	tpl := templates[variant]
	instructions := "Tulis pembahasan dalam bahasa Indonesia menggunakan HTML tanpa menambahkan <!DOCTYPE>, <html>, <head>, atau <body>. " +
		tpl.intro + " " +
		"Output harus berupa rangkaian tag <p> seperti contoh berikut dan tidak boleh memiliki teks di luar tag tersebut.\n\n" +
		"Format wajib diikuti:\n" + tpl.format + "\n\n" +
		"Aturan tambahan:\n" +
		"- Paragraf pertama harus menyatakan jawaban benar dengan awalan 'Jawaban yang tepat:' diikuti penjelasan singkat. Sertakan teks opsi benar secara utuh sebelum penjelasan.\n" +
		"- Paragraf kedua (dan tambahan bila perlu) menjelaskan alasan jawaban benar secara detail (minimal 2 kalimat).\n" +
		"- Jangan menuliskan label huruf seperti A/B/C di dalam isi jawaban. Fokus pada isi opsi saja.\n" +
		"- Jangan menambahkan bobot atau skor ke dalam teks opsi maupun alasan.\n" +
		"- Semua nilai string dalam JSON harus berupa teks polos tanpa tag HTML, kecuali `table_html` jika diminta.\n" +
		"- Khusus TIU Numerik, boleh menggunakan tag `<strong>` dan `<em>` di dalam `detail_paragraphs`.\n"

	instructions += tpl.rules
	if !category.OmitIncorrect(variant) {
		instructions += incorrectRules
	}

	var correctLines []string
	for _, idx := range correct {
		if idx < len(options) && options[idx].Text != "" {
			correctLines = append(correctLines, fmt.Sprintf("Opsi %d: %s", idx+1, options[idx].Text))
		}
	}
	correctDisplay := strings.Join(correctLines, "\n")
	if correctDisplay == "" {
		correctDisplay = "(Tidak diketahui)"
	}

	var incorrectNumbers []string
	for _, idx := range incorrect {
		incorrectNumbers = append(incorrectNumbers, fmt.Sprintf("%d", idx+1))
	}

	promptText := instructions +
		"\n\n" + metadata +
		fmt.Sprintf("\n\nSoal:\n%s\n\nDaftar opsi (gunakan apa adanya untuk bagian opsi salah):\n%s\n", questionText, optionListing) +
		fmt.Sprintf("Opsi benar (copy teksnya secara utuh ketika menyusun ringkasan):\n%s\n", correctDisplay) +
		fmt.Sprintf("Opsi salah yang wajib dijelaskan: %s\n", strings.Join(incorrectNumbers, ", ")) +
		"Kembalikan respons dalam format JSON PERSIS seperti berikut tanpa teks tambahan atau blok kode:\n" +
		buildSchema(variant) + "\n" +
		"Output TIDAK boleh diawali atau diakhiri dengan karakter selain tanda kurung kurawal JSON."

	return Context{
		Prompt:           promptText,
		Options:          options,
		CorrectIndices:   correct,
		IncorrectIndices: incorrect,
		QuestionSummary:  questionSummary,
		Variant:          variant,
	}
}

// AmendInsufficientDetail menambahkan tuntutan jumlah paragraf minimum untuk
// percobaan ulang tunggal ketika detail numerik kurang.
func AmendInsufficientDetail(promptText string, minParagraphs int) string {
	return promptText + fmt.Sprintf(
		"\n\nPERBAIKI: Outputkan JSON valid dan minimal %d detail_paragraphs yang berbeda.",
		minParagraphs,
	)
}

func buildMetadata(row question.Row) string {
	pairs := []struct {
		label string
		value string
	}{
		{"Kategori", row.Category},
		{"Subkategori", row.SubCategory},
		{"Program", row.Program},
		{"Tag", row.Tags},
		{"Keyword", row.QuestionKeyword},
	}

	var lines []string
	for _, pair := range pairs {
		if strings.TrimSpace(pair.value) != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", pair.label, pair.value))
		}
	}
	return strings.Join(lines, "\n")
}

func buildSchema(variant category.Variant) string {
	lines := []string{
		"{",
		"  \"correct_summary\": string,",
		"  \"detail_paragraphs\": [string, ...],",
	}
	if variant == category.VariantVerbalAnalitis {
		lines = append(lines, "  \"table_html\": string,")
	}
	lines = append(lines,
		"  \"incorrect_reasons\": {",
		"       \"1\": string alasan (untuk opsi indeks 1 jika salah),",
		"       ...",
		"   }",
		"}",
	)
	return strings.Join(lines, "\n")
}
