package genrun

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/btw-edu/pembahasan-lambda/internal/category"
	"github.com/btw-edu/pembahasan-lambda/internal/pembahasan"
	"github.com/btw-edu/pembahasan-lambda/internal/question"
	"github.com/google/uuid"
)

type fakeRepo struct {
	run  *Run
	rows []*RunRow
}

func (r *fakeRepo) Create(run *Run) error {
	run.ID = uuid.New()
	r.run = run
	return nil
}

func (r *fakeRepo) Update(run *Run) error {
	r.run = run
	return nil
}

func (r *fakeRepo) AddRows(rows []*RunRow) error {
	r.rows = append(r.rows, rows...)
	return nil
}

func (r *fakeRepo) GetByID(string) (*Run, error) { return r.run, nil }
func (r *fakeRepo) List() ([]*Run, error)        { return []*Run{r.run}, nil }

type fakeSheets struct {
	headers []string
	records []map[string]string
	writes  [][]string
}

func (s *fakeSheets) SpreadsheetTitle(context.Context, string) (string, error) {
	return "Bank Soal", nil
}

func (s *fakeSheets) ListWorksheets(context.Context, string) ([]string, error) {
	return []string{"Sheet1"}, nil
}

func (s *fakeSheets) FetchRows(context.Context, string, string) ([]string, []map[string]string, error) {
	return s.headers, s.records, nil
}

func (s *fakeSheets) EnsureExplanationColumn(context.Context, string, string, []string) (int, error) {
	return len(s.headers), nil
}

func (s *fakeSheets) UpdateExplanationColumn(_ context.Context, _, _ string, _ int, values []string) error {
	copied := make([]string, len(values))
	copy(copied, values)
	s.writes = append(s.writes, copied)
	return nil
}

type fakeGenerator struct {
	calls    map[string]int
	generate func(row question.Row, attempt int) (string, error)
}

func (g *fakeGenerator) Generate(_ context.Context, row question.Row) (string, error) {
	if g.calls == nil {
		g.calls = map[string]int{}
	}
	g.calls[row.No]++
	return g.generate(row, g.calls[row.No])
}

func record(no, cat, sub, existing string) map[string]string {
	return map[string]string{
		"no":                      no,
		"category":                cat,
		"sub_category":            sub,
		"question":                "Soal " + no,
		"option_a_text":           "Benar",
		"option_a_score":          "5",
		"option_b_text":           "Salah",
		"option_b_score":          "0",
		question.ExplanationColumn: existing,
	}
}

func newTestService(repo *fakeRepo, sheetsSvc *fakeSheets, gen *fakeGenerator) *service {
	return &service{
		repo:       repo,
		sheets:     sheetsSvc,
		pembahasan: gen,
		sleep:      func(time.Duration) {},
	}
}

func TestStartEmptyOnlyMode(t *testing.T) {
	repo := &fakeRepo{}
	sheetsSvc := &fakeSheets{
		headers: []string{"no", "category", "question", question.ExplanationColumn},
		records: []map[string]string{
			record("1", "TWK", "", "sudah terisi"),
			record("2", "TWK", "", ""),
			record("3", "TIU", "Figural Serial", ""),
		},
	}
	gen := &fakeGenerator{generate: func(row question.Row, _ int) (string, error) {
		if row.SubCategory == "Figural Serial" {
			return "", &category.ExcludedError{Reason: "subkategori TIU figural di-skip."}
		}
		return "<p>pembahasan " + row.No + "</p>", nil
	}}

	run, err := newTestService(repo, sheetsSvc, gen).Start(context.Background(), StartRequest{
		Spreadsheet: "https://docs.google.com/spreadsheets/d/abc123/edit",
		Worksheet:   "Sheet1",
	})
	if err != nil {
		t.Fatalf("error tak terduga: %v", err)
	}

	if run.TotalRows != 2 || run.UpdatedRows != 1 || run.SkippedRows != 1 || run.FailedRows != 0 {
		t.Errorf("hitungan run salah: total=%d updated=%d skipped=%d failed=%d",
			run.TotalRows, run.UpdatedRows, run.SkippedRows, run.FailedRows)
	}
	if run.Status != RunStatusCompleted {
		t.Errorf("status run = %s", run.Status)
	}
	if run.SpreadsheetID != "abc123" {
		t.Errorf("spreadsheet id = %q", run.SpreadsheetID)
	}

	if gen.calls["1"] != 0 {
		t.Error("baris terisi tidak boleh diproses pada mode empty_only")
	}

	if len(sheetsSvc.writes) != 1 {
		t.Fatalf("jumlah penulisan kolom = %d, harapan 1", len(sheetsSvc.writes))
	}
	written := sheetsSvc.writes[0]
	if written[0] != "sudah terisi" || written[1] != "<p>pembahasan 2</p>" || written[2] != "" {
		t.Errorf("nilai kolom tersimpan salah: %v", written)
	}
}

func TestStartAllModeReprocessesFilledRows(t *testing.T) {
	repo := &fakeRepo{}
	sheetsSvc := &fakeSheets{
		headers: []string{"no", question.ExplanationColumn},
		records: []map[string]string{
			record("1", "TWK", "", "lama"),
			record("2", "TWK", "", ""),
		},
	}
	gen := &fakeGenerator{generate: func(row question.Row, _ int) (string, error) {
		return "baru " + row.No, nil
	}}

	run, err := newTestService(repo, sheetsSvc, gen).Start(context.Background(), StartRequest{
		Spreadsheet: "abc123",
		Worksheet:   "Sheet1",
		Mode:        ModeAll,
	})
	if err != nil {
		t.Fatalf("error tak terduga: %v", err)
	}

	if run.TotalRows != 2 || run.UpdatedRows != 2 {
		t.Errorf("mode all harus memproses semua baris: total=%d updated=%d", run.TotalRows, run.UpdatedRows)
	}
	if sheetsSvc.writes[0][0] != "baru 1" {
		t.Errorf("baris terisi harus ditimpa: %v", sheetsSvc.writes[0])
	}
}

func TestStartValidation(t *testing.T) {
	t.Setenv("DEFAULT_SPREADSHEET", "")
	svc := newTestService(&fakeRepo{}, &fakeSheets{}, &fakeGenerator{})

	cases := []struct {
		name string
		req  StartRequest
		want error
	}{
		{"spreadsheet kosong", StartRequest{Worksheet: "Sheet1"}, ErrInvalidSpreadsheet},
		{"worksheet kosong", StartRequest{Spreadsheet: "abc123"}, ErrWorksheetRequired},
		{"mode tidak dikenal", StartRequest{Spreadsheet: "abc123", Worksheet: "Sheet1", Mode: "setengah"}, ErrUnknownMode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Start(context.Background(), tc.req); !errors.Is(err, tc.want) {
				t.Errorf("error = %v, harapan %v", err, tc.want)
			}
		})
	}
}

func TestStartRetriesEmptyBatch(t *testing.T) {
	repo := &fakeRepo{}
	sheetsSvc := &fakeSheets{
		headers: []string{"no", question.ExplanationColumn},
		records: []map[string]string{record("1", "TWK", "", "")},
	}
	gen := &fakeGenerator{generate: func(row question.Row, attempt int) (string, error) {
		if attempt == 1 {
			return "", errors.New("kuota model habis")
		}
		return "berhasil pada percobaan ulang", nil
	}}

	var slept []time.Duration
	svc := newTestService(repo, sheetsSvc, gen)
	svc.sleep = func(d time.Duration) { slept = append(slept, d) }

	run, err := svc.Start(context.Background(), StartRequest{Spreadsheet: "abc123", Worksheet: "Sheet1"})
	if err != nil {
		t.Fatalf("error tak terduga: %v", err)
	}

	if len(slept) != 1 || slept[0] != 60*time.Second {
		t.Errorf("backoff = %v, harapan [1m0s]", slept)
	}
	if run.UpdatedRows != 1 {
		t.Errorf("percobaan ulang batch harus berhasil: %+v", run)
	}
	if sheetsSvc.writes[0][0] != "berhasil pada percobaan ulang" {
		t.Errorf("nilai tersimpan salah: %v", sheetsSvc.writes[0])
	}
}

func TestStartRowFailureDoesNotHaltRun(t *testing.T) {
	repo := &fakeRepo{}
	sheetsSvc := &fakeSheets{
		headers: []string{"no", question.ExplanationColumn},
		records: []map[string]string{
			record("1", "TWK", "", ""),
			record("2", "TWK", "", ""),
		},
	}
	gen := &fakeGenerator{generate: func(row question.Row, _ int) (string, error) {
		if row.No == "1" {
			return "", &pembahasan.UnparseableError{Raw: "respons kacau"}
		}
		return "aman", nil
	}}

	run, err := newTestService(repo, sheetsSvc, gen).Start(context.Background(), StartRequest{
		Spreadsheet: "abc123",
		Worksheet:   "Sheet1",
	})
	if err != nil {
		t.Fatalf("error tak terduga: %v", err)
	}

	if run.UpdatedRows != 1 || run.FailedRows != 1 {
		t.Errorf("hitungan salah: updated=%d failed=%d", run.UpdatedRows, run.FailedRows)
	}

	var failed *RunRow
	for _, row := range repo.rows {
		if row.Status == RowStatusFailed {
			failed = row
		}
	}
	if failed == nil {
		t.Fatal("baris gagal tidak tercatat")
	}
	if failed.Reason == "" || failed.RowNumber != 2 {
		t.Errorf("catatan baris gagal salah: %+v", failed)
	}
}
