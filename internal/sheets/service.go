package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/btw-edu/pembahasan-lambda/internal/config"
	"github.com/btw-edu/pembahasan-lambda/internal/question"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const spreadsheetScope = "https://www.googleapis.com/auth/spreadsheets"

var ErrMissingCredentials = errors.New("kredensial service account tidak ditemukan")

type sheetsService struct {
	srv *gsheets.Service
}

// NewSheetsService membangun klien Sheets dari kredensial service account.
// GOOGLE_SERVICE_ACCOUNT_JSON_ENC (terenkripsi AES-GCM) didahulukan atas
// GOOGLE_SERVICE_ACCOUNT_JSON polos.
func NewSheetsService(ctx context.Context) (Service, error) {
	credentials, err := loadServiceAccountJSON()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := google.JWTConfigFromJSON(credentials, spreadsheetScope)
	if err != nil {
		return nil, fmt.Errorf("kredensial service account tidak valid: %w", err)
	}

	srv, err := gsheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("gagal membuat klien Sheets: %w", err)
	}
	return &sheetsService{srv: srv}, nil
}

func loadServiceAccountJSON() ([]byte, error) {
	if encoded := os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON_ENC"); encoded != "" {
		plain, err := config.Decrypt(encoded)
		if err != nil {
			return nil, fmt.Errorf("gagal mendekripsi kredensial service account: %w", err)
		}
		return []byte(plain), nil
	}
	if raw := os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"); raw != "" {
		return []byte(raw), nil
	}
	return nil, ErrMissingCredentials
}

func (s *sheetsService) SpreadsheetTitle(ctx context.Context, spreadsheetID string) (string, error) {
	spreadsheet, err := s.srv.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return "", wrapAPIError(ctx, "gagal memuat spreadsheet", err)
	}
	return spreadsheet.Properties.Title, nil
}

func (s *sheetsService) ListWorksheets(ctx context.Context, spreadsheetID string) ([]string, error) {
	spreadsheet, err := s.srv.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError(ctx, "gagal memuat spreadsheet", err)
	}

	names := make([]string, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			names = append(names, sheet.Properties.Title)
		}
	}
	return names, nil
}

// FetchRows membaca seluruh isi worksheet dan mengembalikan header yang sudah
// dirapikan beserta record per baris berkunci header.
func (s *sheetsService) FetchRows(ctx context.Context, spreadsheetID, worksheet string) ([]string, []map[string]string, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(spreadsheetID, worksheetRange(worksheet)).Context(ctx).Do()
	if err != nil {
		return nil, nil, wrapAPIError(ctx, "gagal mengambil data worksheet", err)
	}

	headers, rows := recordsFromValues(resp.Values)
	return headers, rows, nil
}

// EnsureExplanationColumn mengembalikan indeks kolom hasil berbasis satu,
// menambahkan header kolom bila belum ada.
func (s *sheetsService) EnsureExplanationColumn(ctx context.Context, spreadsheetID, worksheet string, headers []string) (int, error) {
	for idx, header := range headers {
		if header == question.ExplanationColumn {
			return idx + 1, nil
		}
	}

	nextCol := len(headers) + 1
	cell := RowColToA1(1, nextCol)
	body := &gsheets.ValueRange{Values: [][]interface{}{{question.ExplanationColumn}}}
	_, err := s.srv.Spreadsheets.Values.
		Update(spreadsheetID, worksheetRange(worksheet)+"!"+cell, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return 0, wrapAPIError(ctx, "gagal menambahkan kolom hasil", err)
	}
	return nextCol, nil
}

// UpdateExplanationColumn menulis seluruh nilai kolom hasil mulai baris kedua
// dalam satu pembaruan berjangkauan.
func (s *sheetsService) UpdateExplanationColumn(ctx context.Context, spreadsheetID, worksheet string, columnIndex int, values []string) error {
	if len(values) == 0 {
		return nil
	}

	start := RowColToA1(2, columnIndex)
	end := RowColToA1(len(values)+1, columnIndex)

	rows := make([][]interface{}, 0, len(values))
	for _, value := range values {
		rows = append(rows, []interface{}{value})
	}

	body := &gsheets.ValueRange{Values: rows}
	_, err := s.srv.Spreadsheets.Values.
		Update(spreadsheetID, fmt.Sprintf("%s!%s:%s", worksheetRange(worksheet), start, end), body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return wrapAPIError(ctx, "gagal menyimpan kolom hasil", err)
	}
	return nil
}

// worksheetRange membungkus judul worksheet dengan kutip tunggal agar judul
// berspasi tetap valid sebagai range A1.
func worksheetRange(worksheet string) string {
	return "'" + worksheet + "'"
}

func wrapAPIError(ctx context.Context, message string, err error) error {
	log := config.WithContext(ctx)

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		log.WithError(err).WithField("status", apiErr.Code).Error(message)
		return fmt.Errorf("%s (status %d): %w", message, apiErr.Code, err)
	}
	log.WithError(err).Error(message)
	return fmt.Errorf("%s: %w", message, err)
}
