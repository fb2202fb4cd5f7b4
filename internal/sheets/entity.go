package sheets

import "context"

// Service adalah akses baca/tulis spreadsheet yang dibutuhkan pipeline:
// daftar worksheet, baris sebagai record berkunci header, dan penulisan
// kolom hasil.
type Service interface {
	SpreadsheetTitle(ctx context.Context, spreadsheetID string) (string, error)
	ListWorksheets(ctx context.Context, spreadsheetID string) ([]string, error)
	FetchRows(ctx context.Context, spreadsheetID, worksheet string) ([]string, []map[string]string, error)
	EnsureExplanationColumn(ctx context.Context, spreadsheetID, worksheet string, headers []string) (int, error)
	UpdateExplanationColumn(ctx context.Context, spreadsheetID, worksheet string, columnIndex int, values []string) error
}
