package question

import (
	"strconv"
	"strings"
)

// Option adalah satu slot opsi hasil normalisasi: teks bersih dan skor
// numerik opsional. Teks kosong berarti slot tidak terpakai.
type Option struct {
	Text  string
	Score *float64
}

// BuildOptions membaca lima slot opsi dari baris menjadi daftar terurut
// (A-E). Selalu berhasil; slot kosong menghasilkan teks kosong tanpa skor.
func BuildOptions(row Row) []Option {
	options := make([]Option, OptionSlots)
	for i := 0; i < OptionSlots; i++ {
		text := ""
		if strings.TrimSpace(row.OptionTexts[i]) != "" {
			text = SanitizeText(row.OptionTexts[i])
		}
		options[i] = Option{
			Text:  text,
			Score: ParseScore(row.OptionScores[i]),
		}
	}
	return options
}

// ParseScore mengubah sel skor menjadi angka; nil bila kosong atau bukan angka.
func ParseScore(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &value
}

// FormatScore menampilkan skor tanpa nol di belakang koma.
func FormatScore(score *float64) string {
	if score == nil {
		return ""
	}
	return strconv.FormatFloat(*score, 'f', -1, 64)
}
