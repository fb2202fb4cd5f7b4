package genrun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/btw-edu/pembahasan-lambda/internal/category"
	"github.com/btw-edu/pembahasan-lambda/internal/config"
	"github.com/btw-edu/pembahasan-lambda/internal/pembahasan"
	"github.com/btw-edu/pembahasan-lambda/internal/question"
	"github.com/btw-edu/pembahasan-lambda/internal/sheets"
	"gorm.io/datatypes"
)

var (
	ErrInvalidSpreadsheet = errors.New("spreadsheet tidak valid")
	ErrWorksheetRequired  = errors.New("worksheet wajib diisi")
	ErrUnknownMode        = errors.New("mode tidak dikenal")
)

type Service interface {
	Start(ctx context.Context, req StartRequest) (*Run, error)
	Get(ctx context.Context, id string) (*Run, error)
	List(ctx context.Context) ([]*Run, error)
}

type service struct {
	repo       RunRepository
	sheets     sheets.Service
	pembahasan pembahasan.Service
	sleep      func(time.Duration)
}

func NewService(repo RunRepository, sheetsSvc sheets.Service, pembahasanSvc pembahasan.Service) Service {
	return &service{
		repo:       repo,
		sheets:     sheetsSvc,
		pembahasan: pembahasanSvc,
		sleep:      time.Sleep,
	}
}

// Start menjalankan satu run generasi secara sinkron: ambil baris dari
// worksheet, proses per batch, simpan kolom hasil setiap batch selesai, dan
// catat status per baris. Kegagalan satu baris tidak menghentikan run.
func (s *service) Start(ctx context.Context, req StartRequest) (*Run, error) {
	log := config.WithContext(ctx)

	spreadsheet := req.Spreadsheet
	if strings.TrimSpace(spreadsheet) == "" {
		spreadsheet = os.Getenv("DEFAULT_SPREADSHEET")
	}
	spreadsheetID := sheets.ExtractSpreadsheetID(spreadsheet)
	if spreadsheetID == "" {
		return nil, ErrInvalidSpreadsheet
	}
	worksheet := strings.TrimSpace(req.Worksheet)
	if worksheet == "" {
		return nil, ErrWorksheetRequired
	}
	mode := req.Mode
	if mode == "" {
		mode = ModeEmptyOnly
	}
	if mode != ModeEmptyOnly && mode != ModeAll {
		return nil, ErrUnknownMode
	}

	title, err := s.sheets.SpreadsheetTitle(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}

	headers, records, err := s.sheets.FetchRows(ctx, spreadsheetID, worksheet)
	if err != nil {
		return nil, err
	}

	columnIndex, err := s.sheets.EnsureExplanationColumn(ctx, spreadsheetID, worksheet, headers)
	if err != nil {
		return nil, err
	}

	values := make([]string, len(records))
	for idx, record := range records {
		values[idx] = record[question.ExplanationColumn]
	}

	var targets []int
	for idx := range records {
		if mode == ModeAll || strings.TrimSpace(values[idx]) == "" {
			targets = append(targets, idx)
		}
	}

	run := &Run{
		SpreadsheetID:   spreadsheetID,
		SpreadsheetName: title,
		Worksheet:       worksheet,
		Mode:            mode,
		Status:          RunStatusRunning,
		TotalRows:       len(targets),
	}
	if err := s.repo.Create(run); err != nil {
		return nil, err
	}

	log.Infof("run %s dimulai: %d baris target pada worksheet %s", run.ID, len(targets), worksheet)

	rowRecords := make(map[int]*RunRow)
	updatedTotal := 0
	var summaries []string

	totalBatches := 0
	if len(targets) > 0 {
		totalBatches = (len(targets) + BatchSize - 1) / BatchSize
	} else {
		summaries = append(summaries, "tidak ada baris yang perlu diproses.")
	}

	for batchIndex := 0; batchIndex < totalBatches; batchIndex++ {
		start := batchIndex * BatchSize
		end := min(start+BatchSize, len(targets))
		batch := targets[start:end]

		var batchUpdated []int
		for attempt := 0; attempt <= MaxBatchRetries; attempt++ {
			batchUpdated = s.processBatch(ctx, batch, records, values, rowRecords)
			if len(batchUpdated) > 0 {
				break
			}
			if attempt < MaxBatchRetries {
				wait := retryBackoff[min(attempt, len(retryBackoff)-1)]
				log.Warnf("batch %d/%d kosong, mencoba ulang dalam %s", batchIndex+1, totalBatches, wait)
				s.sleep(wait)
			}
		}

		if len(batchUpdated) == 0 {
			log.Warnf("batch %d/%d gagal setelah percobaan ulang", batchIndex+1, totalBatches)
			summaries = append(summaries, fmt.Sprintf("batch %d gagal setelah percobaan ulang.", batchIndex+1))
			continue
		}

		updatedTotal += len(batchUpdated)
		if err := s.sheets.UpdateExplanationColumn(ctx, spreadsheetID, worksheet, columnIndex, values); err != nil {
			log.WithError(err).Error("gagal menyimpan batch ke spreadsheet")
			summaries = append(summaries, fmt.Sprintf("batch %d gagal tersimpan: %v", batchIndex+1, err))
			return s.finish(run, rowRecords, RunStatusFailed, summaries)
		}
		log.Infof("batch %d/%d tersimpan ke spreadsheet", batchIndex+1, totalBatches)
	}

	if totalBatches > 0 {
		if updatedTotal > 0 {
			summaries = append(summaries, fmt.Sprintf("%d baris diperbarui dan tersimpan.", updatedTotal))
		} else {
			summaries = append(summaries, "tidak ada baris yang diperbarui.")
		}
	}

	return s.finish(run, rowRecords, RunStatusCompleted, summaries)
}

func (s *service) processBatch(ctx context.Context, batch []int, records []map[string]string, values []string, rowRecords map[int]*RunRow) []int {
	var updated []int
	for _, idx := range batch {
		row := question.RowFromRecord(records[idx])
		text, status, reason := s.processRow(ctx, row)

		// Data baris dimulai di baris kedua sheet (baris pertama header).
		rowRecords[idx] = &RunRow{
			RowNumber: idx + 2,
			Label:     row.DisplayLabel(),
			Status:    status,
			Reason:    reason,
		}

		if status == RowStatusUpdated {
			values[idx] = text
			updated = append(updated, idx)
		}
	}
	return updated
}

// processRow menjalankan pipeline untuk satu baris. Panic ditangkap agar
// satu baris rusak tidak menghentikan batch.
func (s *service) processRow(ctx context.Context, row question.Row) (text string, status RowStatus, reason string) {
	log := config.WithContext(ctx).WithField("soal", row.DisplayLabel())
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("panic saat memproses baris: %v", r)
			text, status, reason = "", RowStatusFailed, fmt.Sprintf("panic: %v", r)
		}
	}()

	text, err := s.pembahasan.Generate(ctx, row)
	if err != nil {
		var excluded *category.ExcludedError
		if errors.As(err, &excluded) {
			log.Infof("lewati baris: %s", excluded.Reason)
			return "", RowStatusSkipped, excluded.Reason
		}
		if errors.Is(err, pembahasan.ErrNoCorrectAnswer) {
			log.Warnf("lewati baris: %v", err)
			return "", RowStatusSkipped, err.Error()
		}
		var unparseable *pembahasan.UnparseableError
		if errors.As(err, &unparseable) {
			log.Warn("format respons AI tidak valid, pembaruan diabaikan")
			return "", RowStatusFailed, unparseable.Error() + ":\n" + unparseable.Raw
		}
		log.WithError(err).Error("gagal membuat pembahasan untuk baris")
		return "", RowStatusFailed, err.Error()
	}
	return text, RowStatusUpdated, ""
}

func (s *service) finish(run *Run, rowRecords map[int]*RunRow, status RunStatus, summaries []string) (*Run, error) {
	rows := make([]*RunRow, 0, len(rowRecords))
	for _, row := range rowRecords {
		row.RunID = run.ID
		rows = append(rows, row)
		switch row.Status {
		case RowStatusUpdated:
			run.UpdatedRows++
		case RowStatusSkipped:
			run.SkippedRows++
		case RowStatusFailed:
			run.FailedRows++
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].RowNumber < rows[j].RowNumber })

	run.Status = status
	now := time.Now()
	run.CompletedAt = &now
	if encoded, err := json.Marshal(summaries); err == nil {
		run.Summary = datatypes.JSON(encoded)
	}

	if err := s.repo.AddRows(rows); err != nil {
		return nil, err
	}
	if err := s.repo.Update(run); err != nil {
		return nil, err
	}

	run.Rows = make([]RunRow, 0, len(rows))
	for _, row := range rows {
		run.Rows = append(run.Rows, *row)
	}
	return run, nil
}

func (s *service) Get(_ context.Context, id string) (*Run, error) {
	return s.repo.GetByID(id)
}

func (s *service) List(_ context.Context) ([]*Run, error) {
	return s.repo.List()
}
