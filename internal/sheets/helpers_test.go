package sheets

import "testing"

func TestExtractSpreadsheetID(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"url lengkap", "https://docs.google.com/spreadsheets/d/1AbC-d_9/edit#gid=0", "1AbC-d_9"},
		{"id polos", "1AbC-d_9", "1AbC-d_9"},
		{"id dengan spasi", "  1AbC-d_9  ", "1AbC-d_9"},
		{"kosong", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractSpreadsheetID(tc.in); got != tc.want {
				t.Errorf("ExtractSpreadsheetID(%q) = %q, harapan %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRowColToA1(t *testing.T) {
	cases := []struct {
		row, col int
		want     string
	}{
		{1, 1, "A1"},
		{2, 26, "Z2"},
		{1, 27, "AA1"},
		{5, 52, "AZ5"},
		{10, 703, "AAA10"},
	}

	for _, tc := range cases {
		if got := RowColToA1(tc.row, tc.col); got != tc.want {
			t.Errorf("RowColToA1(%d, %d) = %q, harapan %q", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestRecordsFromValues(t *testing.T) {
	headers, rows := recordsFromValues([][]interface{}{
		{" no ", "question", "option_a_score"},
		{"1", "Apa ibu kota Prancis?", 4.5},
		{"2", "Soal pendek"},
	})

	if len(headers) != 3 || headers[0] != "no" {
		t.Fatalf("headers = %v", headers)
	}
	if len(rows) != 2 {
		t.Fatalf("jumlah baris = %d", len(rows))
	}
	if rows[0]["option_a_score"] != "4.5" {
		t.Errorf("skor numerik tidak dikonversi: %q", rows[0]["option_a_score"])
	}
	if rows[1]["option_a_score"] != "" {
		t.Errorf("baris pendek harus diisi string kosong: %q", rows[1]["option_a_score"])
	}
}

func TestRecordsFromValuesEmpty(t *testing.T) {
	headers, rows := recordsFromValues(nil)
	if headers != nil || rows != nil {
		t.Errorf("matriks kosong harus menghasilkan nil, dapat %v %v", headers, rows)
	}
}
