package sheets

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var spreadsheetURLPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// ExtractSpreadsheetID menerima URL Google Sheets utuh maupun ID polos dan
// mengembalikan ID spreadsheet-nya.
func ExtractSpreadsheetID(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if match := spreadsheetURLPattern.FindStringSubmatch(trimmed); match != nil {
		return match[1]
	}
	return trimmed
}

// RowColToA1 mengubah koordinat baris/kolom berbasis satu menjadi notasi A1.
func RowColToA1(row, col int) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return letters + strconv.Itoa(row)
}

// recordsFromValues mengubah matriks nilai mentah menjadi header yang sudah
// dirapikan dan record per baris berkunci header. Sel di luar lebar header
// diabaikan; baris pendek diisi string kosong.
func recordsFromValues(values [][]interface{}) ([]string, []map[string]string) {
	if len(values) == 0 {
		return nil, nil
	}

	headers := make([]string, 0, len(values[0]))
	for _, cell := range values[0] {
		headers = append(headers, strings.TrimSpace(cellString(cell)))
	}

	var rows []map[string]string
	for _, rawRow := range values[1:] {
		record := make(map[string]string, len(headers))
		for idx, header := range headers {
			if header == "" {
				continue
			}
			if idx < len(rawRow) {
				record[header] = cellString(rawRow[idx])
			} else {
				record[header] = ""
			}
		}
		rows = append(rows, record)
	}
	return headers, rows
}

func cellString(value interface{}) string {
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
