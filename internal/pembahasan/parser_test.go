package pembahasan

import (
	"errors"
	"strings"
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"tanpa fence", `{"a": 1}`, `{"a": 1}`},
		{"fence json", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fence polos", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fence dengan koma", "```json\n{\"a\": 1}\n```,", `{"a": 1}`},
		{"spasi pinggir", "   {\"a\": 1}  ", `{"a": 1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFence(tc.in); got != tc.want {
				t.Errorf("StripCodeFence(%q) = %q, harapan %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseResponseDirect(t *testing.T) {
	raw := `{"correct_summary": "Paris", "detail_paragraphs": ["Satu.", "Dua."], "incorrect_reasons": {"2": "Lyon bukan ibu kota."}}`

	parsed, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("error tak terduga: %v", err)
	}
	if parsed.CorrectSummary != "Paris" {
		t.Errorf("correct_summary = %q", parsed.CorrectSummary)
	}
	if len(parsed.DetailParagraphs) != 2 {
		t.Errorf("detail_paragraphs = %v", parsed.DetailParagraphs)
	}
	if parsed.IncorrectReasons["2"] != "Lyon bukan ibu kota." {
		t.Errorf("incorrect_reasons = %v", parsed.IncorrectReasons)
	}
}

func TestParseResponseRepairsBareNewline(t *testing.T) {
	raw := "{\"correct_summary\": \"baris satu\nbaris dua\", \"detail_paragraphs\": []}"

	parsed, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("perbaikan newline gagal: %v", err)
	}
	if !strings.Contains(parsed.CorrectSummary, "baris satu") {
		t.Errorf("correct_summary = %q", parsed.CorrectSummary)
	}
}

func TestParseResponseRepairsBareBackslash(t *testing.T) {
	raw := `{"correct_summary": "rumus \(x\) sederhana", "detail_paragraphs": []}`

	parsed, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("perbaikan backslash gagal: %v", err)
	}
	if !strings.Contains(parsed.CorrectSummary, `\(x\)`) {
		t.Errorf("correct_summary = %q", parsed.CorrectSummary)
	}
}

func TestParseResponseBraceSubstring(t *testing.T) {
	raw := "Berikut hasilnya: {\"correct_summary\": \"Oke\", \"detail_paragraphs\": []} sekian."

	parsed, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("substring kurung kurawal gagal: %v", err)
	}
	if parsed.CorrectSummary != "Oke" {
		t.Errorf("correct_summary = %q", parsed.CorrectSummary)
	}
}

func TestParseResponseUnparseable(t *testing.T) {
	_, err := ParseResponse("bukan json sama sekali")
	var unparseable *UnparseableError
	if !errors.As(err, &unparseable) {
		t.Fatalf("harapan UnparseableError, dapat %v", err)
	}
	if unparseable.Raw != "bukan json sama sekali" {
		t.Errorf("raw = %q", unparseable.Raw)
	}
}

func TestParseResponseDetailAsString(t *testing.T) {
	raw := `{"correct_summary": "A", "detail_paragraphs": "paragraf tunggal"}`

	parsed, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("error tak terduga: %v", err)
	}
	if len(parsed.DetailParagraphs) != 1 || parsed.DetailParagraphs[0] != "paragraf tunggal" {
		t.Errorf("detail_paragraphs = %v", parsed.DetailParagraphs)
	}
}

func TestParseResponseDropsEmptyParagraphs(t *testing.T) {
	raw := `{"detail_paragraphs": ["Isi.", "", "   ", "Lagi."]}`

	parsed, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("error tak terduga: %v", err)
	}
	if len(parsed.DetailParagraphs) != 2 {
		t.Errorf("paragraf kosong tidak dibuang: %v", parsed.DetailParagraphs)
	}
}
