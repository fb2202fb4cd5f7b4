package pembahasan

import "strings"

// MinNumericParagraphs adalah jumlah paragraf detail minimum untuk varian
// TIU numerik sebelum dokumen dianggap layak.
const MinNumericParagraphs = 4

// ParsedResponse adalah bentuk ternormalisasi dari balasan layanan AI.
// Field yang tidak ada pada balasan menjadi kosong, bukan error.
type ParsedResponse struct {
	CorrectSummary   string
	DetailParagraphs []string
	TableHTML        string
	IncorrectReasons map[string]string
}

// Document adalah urutan fragmen markup hasil perakitan untuk satu baris.
type Document struct {
	Fragments []string
}

// Text menggabungkan seluruh fragmen menjadi nilai sel hasil.
func (d Document) Text() string {
	return strings.Join(d.Fragments, "\n")
}

// PreviewRequest adalah payload endpoint pratinjau: satu record baris mentah.
type PreviewRequest struct {
	Record map[string]string `json:"record"`
}
