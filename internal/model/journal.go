package model

import "github.com/shopspring/decimal"

// Submission kinds recorded in the journal
const (
	SubmissionCorrectionSave   = "correction_save"
	SubmissionCorrectionDelete = "correction_delete"
	SubmissionRealizationSave  = "realization_save"
)

// SubmissionLog is one attempt to change a document upstream, successful or not.
type SubmissionLog struct {
	BaseModel
	Kind          string          `gorm:"type:varchar(50);index;not null" json:"kind"`
	DocumentNo    string          `gorm:"type:varchar(100)" json:"document_no"`
	WarehouseCode string          `gorm:"type:varchar(50)" json:"warehouse_code"`
	Lines         int             `json:"lines"`
	TotalValue    decimal.Decimal `gorm:"type:numeric(20,4)" json:"total_value"`
	Success       bool            `json:"success"`
	Message       string          `gorm:"type:text" json:"message"`
}
