package genrun

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Mode menentukan baris mana yang diproses dalam satu run.
type Mode string

const (
	// ModeEmptyOnly hanya memproses baris dengan kolom hasil kosong.
	ModeEmptyOnly Mode = "empty_only"
	// ModeAll memproses ulang seluruh baris.
	ModeAll Mode = "all"
)

const (
	// BatchSize adalah jumlah baris per batch sebelum hasil disimpan ke sheet.
	BatchSize = 50
	// MaxBatchRetries adalah jumlah percobaan ulang untuk batch yang tidak
	// menghasilkan pembaruan sama sekali.
	MaxBatchRetries = 2
)

var retryBackoff = []time.Duration{60 * time.Second, 120 * time.Second}

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

type RowStatus string

const (
	RowStatusUpdated RowStatus = "updated"
	RowStatusSkipped RowStatus = "skipped"
	RowStatusFailed  RowStatus = "failed"
)

// Run adalah catatan audit satu eksekusi batch. Dokumen pembahasan tidak
// pernah disimpan di sini; hasil hanya hidup di sel spreadsheet.
type Run struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SpreadsheetID   string         `gorm:"type:text;not null" json:"spreadsheet_id"`
	SpreadsheetName string         `gorm:"type:text" json:"spreadsheet_name"`
	Worksheet       string         `gorm:"type:text;not null" json:"worksheet"`
	Mode            Mode           `gorm:"type:text;not null" json:"mode"`
	Status          RunStatus      `gorm:"type:text;not null" json:"status"`
	TotalRows       int            `gorm:"not null;default:0" json:"total_rows"`
	UpdatedRows     int            `gorm:"not null;default:0" json:"updated_rows"`
	SkippedRows     int            `gorm:"not null;default:0" json:"skipped_rows"`
	FailedRows      int            `gorm:"not null;default:0" json:"failed_rows"`
	Summary         datatypes.JSON `gorm:"type:jsonb" json:"summary,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`

	Rows []RunRow `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"rows,omitempty"`
}

// RunRow adalah hasil per baris: status plus alasan skip, pesan error, atau
// potongan balasan mentah untuk diagnostik.
type RunRow struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RunID     uuid.UUID `gorm:"type:uuid;not null;index" json:"run_id"`
	RowNumber int       `gorm:"not null" json:"row_number"`
	Label     string    `gorm:"type:text" json:"label"`
	Status    RowStatus `gorm:"type:text;not null" json:"status"`
	Reason    string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// StartRequest adalah payload POST /runs. Spreadsheet menerima URL utuh
// maupun ID polos.
type StartRequest struct {
	Spreadsheet string `json:"spreadsheet"`
	Worksheet   string `json:"worksheet"`
	Mode        Mode   `json:"mode"`
}
