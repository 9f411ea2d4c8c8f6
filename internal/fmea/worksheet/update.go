package worksheet

// Field 行的可更新字段（封闭集合）
type Field string

const (
	FieldItem                      Field = "item"
	FieldFailureMode               Field = "failureMode"
	FieldEffectsOfFailure          Field = "effectsOfFailure"
	FieldSeverity                  Field = "severity"
	FieldClassification            Field = "classification"
	FieldCausesOfFailure           Field = "causesOfFailure"
	FieldOccurrence                Field = "occurrence"
	FieldCurrentControlsPrevention Field = "currentControlsPrevention"
	FieldCurrentControlsDetection  Field = "currentControlsDetection"
	FieldDetection                 Field = "detection"
	FieldRecommendedActions        Field = "recommendedActions"
	FieldResponsibility            Field = "responsibility"
	FieldTargetDate                Field = "targetDate"
	FieldActionsTaken              Field = "actionsTaken"
	FieldCompletionDate            Field = "completionDate"
	FieldNewSeverity               Field = "newSeverity"
	FieldNewOccurrence             Field = "newOccurrence"
	FieldNewDetection              Field = "newDetection"
)

// HeaderField 表头的可更新字段（封闭集合）
type HeaderField string

const (
	HeaderCompany       HeaderField = "company"
	HeaderProductName   HeaderField = "productName"
	HeaderProductNumber HeaderField = "productNumber"
	HeaderModelYear     HeaderField = "modelYear"
	HeaderTeam          HeaderField = "team"
	HeaderPreparedBy    HeaderField = "preparedBy"
	HeaderDatePrepared  HeaderField = "datePrepared"
	HeaderApprovedBy    HeaderField = "approvedBy"
	HeaderDateApproved  HeaderField = "dateApproved"
	HeaderRevision      HeaderField = "revision"
	HeaderPage          HeaderField = "page"
	HeaderFMEAType      HeaderField = "fmeaType"
	HeaderFMEANumber    HeaderField = "fmeaNumber"
)

// clampRating 评分限定在 [1, 10]
func clampRating(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// UpdateRow 将匹配行的指定字段替换为新值，返回新的行序列。
// severity/occurrence/detection 变化时在同一次更新内重算 rpn，
// newSeverity/newOccurrence/newDetection 变化时同样重算 newRpn。
// 未匹配到 id 时原样返回；其余行保持不变，顺序不变。
// 评分字段期望 int 并被钳制到 [1,10]，其余字段期望 string；
// 值类型不匹配视为无操作。
func UpdateRow(rows []Row, id string, field Field, value interface{}) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		out[i] = applyField(out[i], field, value)
		break
	}
	return out
}

// applyField 单行字段替换加派生字段重算
func applyField(row Row, field Field, value interface{}) Row {
	switch field {
	case FieldSeverity, FieldOccurrence, FieldDetection,
		FieldNewSeverity, FieldNewOccurrence, FieldNewDetection:
		v, ok := value.(int)
		if !ok {
			return row
		}
		v = clampRating(v)
		switch field {
		case FieldSeverity:
			row.Severity = v
		case FieldOccurrence:
			row.Occurrence = v
		case FieldDetection:
			row.Detection = v
		case FieldNewSeverity:
			row.NewSeverity = v
		case FieldNewOccurrence:
			row.NewOccurrence = v
		case FieldNewDetection:
			row.NewDetection = v
		}
		switch field {
		case FieldSeverity, FieldOccurrence, FieldDetection:
			row.RPN = row.Severity * row.Occurrence * row.Detection
		default:
			row.NewRPN = row.NewSeverity * row.NewOccurrence * row.NewDetection
		}
		return row
	}

	v, ok := value.(string)
	if !ok {
		return row
	}
	switch field {
	case FieldItem:
		row.Item = v
	case FieldFailureMode:
		row.FailureMode = v
	case FieldEffectsOfFailure:
		row.EffectsOfFailure = v
	case FieldClassification:
		row.Classification = v
	case FieldCausesOfFailure:
		row.CausesOfFailure = v
	case FieldCurrentControlsPrevention:
		row.CurrentControlsPrevention = v
	case FieldCurrentControlsDetection:
		row.CurrentControlsDetection = v
	case FieldRecommendedActions:
		row.RecommendedActions = v
	case FieldResponsibility:
		row.Responsibility = v
	case FieldTargetDate:
		row.TargetDate = v
	case FieldActionsTaken:
		row.ActionsTaken = v
	case FieldCompletionDate:
		row.CompletionDate = v
	}
	return row
}

// AddRow 追加一个默认新行
func AddRow(rows []Row) []Row {
	out := make([]Row, len(rows), len(rows)+1)
	copy(out, rows)
	return append(out, NewRow())
}

// DeleteRow 删除匹配行；文档必须至少保留一行，只剩一行时为无操作
func DeleteRow(rows []Row, id string) []Row {
	if len(rows) <= 1 {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.ID == id {
			continue
		}
		out = append(out, row)
	}
	return out
}

// UpdateHeaderField 表头字段替换，无派生计算。
// fmeaType 只接受 DFMEA/PFMEA，非法值被忽略。
func UpdateHeaderField(h Header, field HeaderField, value string) Header {
	switch field {
	case HeaderCompany:
		h.Company = value
	case HeaderProductName:
		h.ProductName = value
	case HeaderProductNumber:
		h.ProductNumber = value
	case HeaderModelYear:
		h.ModelYear = value
	case HeaderTeam:
		h.Team = value
	case HeaderPreparedBy:
		h.PreparedBy = value
	case HeaderDatePrepared:
		h.DatePrepared = value
	case HeaderApprovedBy:
		h.ApprovedBy = value
	case HeaderDateApproved:
		h.DateApproved = value
	case HeaderRevision:
		h.Revision = value
	case HeaderPage:
		h.Page = value
	case HeaderFMEAType:
		if value == TypeDFMEA || value == TypePFMEA {
			h.FMEAType = value
		}
	case HeaderFMEANumber:
		h.FMEANumber = value
	}
	return h
}
