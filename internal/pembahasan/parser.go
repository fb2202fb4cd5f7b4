package pembahasan

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UnparseableError menandakan seluruh upaya parse/perbaikan gagal. Balasan
// mentah disimpan (terpotong) untuk keperluan diagnostik.
type UnparseableError struct {
	Raw string
}

func (e *UnparseableError) Error() string {
	return "format respons AI tidak valid"
}

// StripCodeFence membuang pembungkus blok kode dari balasan mentah, meniru
// perilaku pemanggil terhadap keluaran model.
func StripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.ReplaceAll(text, "```,", "```")
	if strings.HasPrefix(text, "```") {
		text = strings.TrimSpace(text)
		text = strings.TrimPrefix(text, "```json")
		text = strings.Trim(text, "`")
		text = strings.TrimSpace(text)
	}
	return text
}

// ParseResponse mencoba berturut-turut: parse langsung, parse setelah
// perbaikan string JSON, lalu keduanya lagi pada substring antara kurung
// kurawal pertama dan terakhir. Input rusak adalah kasus normal, bukan panic.
func ParseResponse(raw string) (*ParsedResponse, error) {
	if data, ok := tryUnmarshal(raw); ok {
		return normalizeParsed(data), nil
	}
	if data, ok := tryUnmarshal(repairJSONText(raw)); ok {
		return normalizeParsed(data), nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		candidate := raw[start : end+1]
		if data, ok := tryUnmarshal(candidate); ok {
			return normalizeParsed(data), nil
		}
		if data, ok := tryUnmarshal(repairJSONText(candidate)); ok {
			return normalizeParsed(data), nil
		}
	}

	return nil, &UnparseableError{Raw: raw}
}

func tryUnmarshal(text string) (map[string]interface{}, bool) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, false
	}
	return data, true
}

// repairJSONText meng-escape newline, carriage return, dan backslash liar di
// dalam string JSON dengan berjalan karakter demi karakter sambil melacak
// apakah kursor berada di dalam string.
func repairJSONText(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	inString := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '"' && !isEscaped(raw, i) {
			inString = !inString
			b.WriteByte(c)
			continue
		}
		if inString {
			switch c {
			case '\n':
				b.WriteString(`\n`)
				continue
			case '\r':
				b.WriteString(`\r`)
				continue
			case '\\':
				if i+1 < len(raw) && strings.IndexByte(`"\/bfnrtu`, raw[i+1]) != -1 {
					b.WriteByte(c)
					b.WriteByte(raw[i+1])
					i++
					continue
				}
				b.WriteString(`\\`)
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isEscaped(text string, idx int) bool {
	backslashes := 0
	for cursor := idx - 1; cursor >= 0 && text[cursor] == '\\'; cursor-- {
		backslashes++
	}
	return backslashes%2 == 1
}

func normalizeParsed(data map[string]interface{}) *ParsedResponse {
	parsed := &ParsedResponse{
		CorrectSummary:   strings.TrimSpace(stringify(data["correct_summary"])),
		DetailParagraphs: normalizeDetailParagraphs(data["detail_paragraphs"]),
		TableHTML:        strings.TrimSpace(stringify(data["table_html"])),
		IncorrectReasons: map[string]string{},
	}

	if reasons, ok := data["incorrect_reasons"].(map[string]interface{}); ok {
		for key, value := range reasons {
			parsed.IncorrectReasons[key] = strings.TrimSpace(stringify(value))
		}
	}
	return parsed
}

// normalizeDetailParagraphs menerima string tunggal maupun daftar, membuang
// elemen kosong, dan merapikan tiap paragraf.
func normalizeDetailParagraphs(value interface{}) []string {
	var items []interface{}
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		items = []interface{}{v}
	case []interface{}:
		items = v
	default:
		items = []interface{}{v}
	}

	var paragraphs []string
	for _, item := range items {
		text := strings.TrimSpace(stringify(item))
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
