package worksheet

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// FMEA类型
const (
	TypeDFMEA = "DFMEA"
	TypePFMEA = "PFMEA"
)

// Row 失效模式分析表的一行
// 日期字段统一使用 ISO-8601 (YYYY-MM-DD) 字符串，空串表示未填写
type Row struct {
	ID                        string `json:"id"`
	Item                      string `json:"item"`
	FailureMode               string `json:"failureMode"`
	EffectsOfFailure          string `json:"effectsOfFailure"`
	Severity                  int    `json:"severity"`
	Classification            string `json:"classification"`
	CausesOfFailure           string `json:"causesOfFailure"`
	Occurrence                int    `json:"occurrence"`
	CurrentControlsPrevention string `json:"currentControlsPrevention"`
	CurrentControlsDetection  string `json:"currentControlsDetection"`
	Detection                 int    `json:"detection"`
	RPN                       int    `json:"rpn"`
	RecommendedActions        string `json:"recommendedActions"`
	Responsibility            string `json:"responsibility"`
	TargetDate                string `json:"targetDate"`
	ActionsTaken              string `json:"actionsTaken"`
	CompletionDate            string `json:"completionDate"`
	NewSeverity               int    `json:"newSeverity"`
	NewOccurrence             int    `json:"newOccurrence"`
	NewDetection              int    `json:"newDetection"`
	NewRPN                    int    `json:"newRpn"`
}

// Header 文档级元数据
type Header struct {
	Company       string `json:"company"`
	ProductName   string `json:"productName"`
	ProductNumber string `json:"productNumber"`
	ModelYear     string `json:"modelYear"`
	Team          string `json:"team"`
	PreparedBy    string `json:"preparedBy"`
	DatePrepared  string `json:"datePrepared"`
	ApprovedBy    string `json:"approvedBy"`
	DateApproved  string `json:"dateApproved"`
	Revision      string `json:"revision"`
	Page          string `json:"page"`
	FMEAType      string `json:"fmeaType"`
	FMEANumber    string `json:"fmeaNumber"`
}

// Document 持久化单元：一个表头加有序的行序列
type Document struct {
	Header Header `json:"headerData"`
	Rows   []Row  `json:"rows"`
}

// Summary FMEA列表中的一条摘要
type Summary struct {
	ID           int64  `json:"id"`
	ProductName  string `json:"productName"`
	FMEANumber   string `json:"fmeaNumber"`
	DatePrepared string `json:"datePrepared"`
}

// NewRow 创建默认行：评分全部为1，rpn = newRpn = 1，文本为空
func NewRow() Row {
	return Row{
		ID:            newRowID(),
		Severity:      1,
		Occurrence:    1,
		Detection:     1,
		RPN:           1,
		NewSeverity:   1,
		NewOccurrence: 1,
		NewDetection:  1,
		NewRPN:        1,
	}
}

// NewHeader 创建默认表头
func NewHeader() Header {
	return Header{
		Revision: "1.0",
		Page:     "1 of 1",
		FMEAType: TypeDFMEA,
	}
}

// NewDocument 创建初始文档：默认表头加一个种子行
func NewDocument() *Document {
	return &Document{
		Header: NewHeader(),
		Rows:   []Row{NewRow()},
	}
}

// newRowID 生成文档内唯一的行标识
func newRowID() string {
	id, err := gonanoid.New(10)
	if err != nil {
		// 熵源不可用时才会失败
		panic(err)
	}
	return id
}
