package entity

import (
	"time"
)

// FMEAHeader FMEA文档表头，一条记录对应一份已保存的文档
type FMEAHeader struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Company       string    `json:"company" gorm:"size:100"`
	ProductName   string    `json:"productName" gorm:"column:product_name;size:200"`
	ProductNumber string    `json:"productNumber" gorm:"column:product_number;size:100"`
	ModelYear     string    `json:"modelYear" gorm:"column:model_year;size:20"`
	Team          string    `json:"team" gorm:"size:100"`
	PreparedBy    string    `json:"preparedBy" gorm:"column:prepared_by;size:100"`
	DatePrepared  string    `json:"datePrepared" gorm:"column:date_prepared;size:20"`
	ApprovedBy    string    `json:"approvedBy" gorm:"column:approved_by;size:100"`
	DateApproved  string    `json:"dateApproved" gorm:"column:date_approved;size:20"`
	Revision      string    `json:"revision" gorm:"size:20"`
	Page          string    `json:"page" gorm:"size:20"`
	FMEAType      string    `json:"fmeaType" gorm:"column:fmea_type;size:20"`
	FMEANumber    string    `json:"fmeaNumber" gorm:"column:fmea_number;size:100"`
	CreatedAt     time.Time `json:"created_at"`
	Rows          []FMEARow `json:"rows" gorm:"foreignKey:HeaderID;constraint:OnDelete:CASCADE"`
}

func (FMEAHeader) TableName() string {
	return "fmea_headers"
}

// FMEARow 失效模式行，按 sort_order 保持文档内的行顺序
type FMEARow struct {
	ID                        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	HeaderID                  int64  `json:"-" gorm:"column:header_id;not null;index"`
	SortOrder                 int    `json:"-" gorm:"column:sort_order;not null;default:0"`
	Item                      string `json:"item" gorm:"type:text"`
	FailureMode               string `json:"failureMode" gorm:"column:failure_mode;type:text"`
	EffectsOfFailure          string `json:"effectsOfFailure" gorm:"column:effects_of_failure;type:text"`
	Severity                  int    `json:"severity" gorm:"not null;default:1"`
	Classification            string `json:"classification" gorm:"size:10"`
	CausesOfFailure           string `json:"causesOfFailure" gorm:"column:causes_of_failure;type:text"`
	Occurrence                int    `json:"occurrence" gorm:"not null;default:1"`
	CurrentControlsPrevention string `json:"currentControlsPrevention" gorm:"column:current_controls_prevention;type:text"`
	CurrentControlsDetection  string `json:"currentControlsDetection" gorm:"column:current_controls_detection;type:text"`
	Detection                 int    `json:"detection" gorm:"not null;default:1"`
	RPN                       int    `json:"rpn" gorm:"not null;default:1"`
	RecommendedActions        string `json:"recommendedActions" gorm:"column:recommended_actions;type:text"`
	Responsibility            string `json:"responsibility" gorm:"size:100"`
	TargetDate                string `json:"targetDate" gorm:"column:target_date;size:20"`
	ActionsTaken              string `json:"actionsTaken" gorm:"column:actions_taken;type:text"`
	CompletionDate            string `json:"completionDate" gorm:"column:completion_date;size:20"`
	NewSeverity               int    `json:"newSeverity" gorm:"column:new_severity;not null;default:1"`
	NewOccurrence             int    `json:"newOccurrence" gorm:"column:new_occurrence;not null;default:1"`
	NewDetection              int    `json:"newDetection" gorm:"column:new_detection;not null;default:1"`
	NewRPN                    int    `json:"newRpn" gorm:"column:new_rpn;not null;default:1"`
}

func (FMEARow) TableName() string {
	return "fmea_rows"
}
