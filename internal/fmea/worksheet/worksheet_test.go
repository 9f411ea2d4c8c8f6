package worksheet

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentSeed(t *testing.T) {
	doc := NewDocument()

	assert.Equal(t, "", doc.Header.Company)
	assert.Equal(t, "1.0", doc.Header.Revision)
	assert.Equal(t, "1 of 1", doc.Header.Page)
	assert.Equal(t, TypeDFMEA, doc.Header.FMEAType)

	require.Len(t, doc.Rows, 1)
	row := doc.Rows[0]
	assert.NotEmpty(t, row.ID)
	assert.Equal(t, 1, row.Severity)
	assert.Equal(t, 1, row.Occurrence)
	assert.Equal(t, 1, row.Detection)
	assert.Equal(t, 1, row.RPN)
	assert.Equal(t, 1, row.NewRPN)
	assert.Equal(t, "", row.Item)
	assert.Equal(t, "", row.TargetDate)
}

func TestUpdateRowRecomputesRPN(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rows := []Row{NewRow()}
	id := rows[0].ID

	ratings := []Field{FieldSeverity, FieldOccurrence, FieldDetection}
	for i := 0; i < 200; i++ {
		field := ratings[rng.Intn(len(ratings))]
		value := rng.Intn(10) + 1
		rows = UpdateRow(rows, id, field, value)

		row := rows[0]
		assert.Equal(t, row.Severity*row.Occurrence*row.Detection, row.RPN)
		assert.GreaterOrEqual(t, row.RPN, 1)
		assert.LessOrEqual(t, row.RPN, 1000)
	}
}

func TestUpdateRowRecomputesNewRPN(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rows := []Row{NewRow()}
	id := rows[0].ID

	ratings := []Field{FieldNewSeverity, FieldNewOccurrence, FieldNewDetection}
	for i := 0; i < 200; i++ {
		field := ratings[rng.Intn(len(ratings))]
		value := rng.Intn(10) + 1
		rows = UpdateRow(rows, id, field, value)

		row := rows[0]
		assert.Equal(t, row.NewSeverity*row.NewOccurrence*row.NewDetection, row.NewRPN)
	}
}

func TestUpdateRowScenario(t *testing.T) {
	rows := []Row{NewRow()}
	id := rows[0].ID
	assert.Equal(t, 1, rows[0].RPN)

	rows = UpdateRow(rows, id, FieldSeverity, 5)
	assert.Equal(t, 5, rows[0].RPN)

	rows = UpdateRow(rows, id, FieldOccurrence, 4)
	assert.Equal(t, 20, rows[0].RPN)

	rows = UpdateRow(rows, id, FieldDetection, 10)
	assert.Equal(t, 200, rows[0].RPN)
}

func TestUpdateRowTextFieldDoesNotTouchRPN(t *testing.T) {
	rows := []Row{NewRow()}
	id := rows[0].ID
	rows = UpdateRow(rows, id, FieldSeverity, 7)
	rows = UpdateRow(rows, id, FieldNewDetection, 3)
	rpn, newRPN := rows[0].RPN, rows[0].NewRPN

	rows = UpdateRow(rows, id, FieldItem, "轴承座")
	rows = UpdateRow(rows, id, FieldFailureMode, "裂纹")
	rows = UpdateRow(rows, id, FieldResponsibility, "质量部")
	rows = UpdateRow(rows, id, FieldTargetDate, "2025-09-30")

	assert.Equal(t, "轴承座", rows[0].Item)
	assert.Equal(t, rpn, rows[0].RPN)
	assert.Equal(t, newRPN, rows[0].NewRPN)
}

func TestUpdateRowUnknownIDIsNoop(t *testing.T) {
	rows := []Row{NewRow(), NewRow()}
	before := make([]Row, len(rows))
	copy(before, rows)

	out := UpdateRow(rows, "no-such-id", FieldSeverity, 9)
	assert.Equal(t, before, out)
}

func TestUpdateRowOnlyTouchesMatchedRow(t *testing.T) {
	rows := []Row{NewRow(), NewRow(), NewRow()}
	target := rows[1].ID

	out := UpdateRow(rows, target, FieldFailureMode, "断裂")

	assert.Equal(t, rows[0], out[0])
	assert.Equal(t, rows[2], out[2])
	assert.Equal(t, "断裂", out[1].FailureMode)
	// 顺序不变
	assert.Equal(t, rows[0].ID, out[0].ID)
	assert.Equal(t, rows[1].ID, out[1].ID)
	assert.Equal(t, rows[2].ID, out[2].ID)
}

func TestUpdateRowClampsRating(t *testing.T) {
	rows := []Row{NewRow()}
	id := rows[0].ID

	rows = UpdateRow(rows, id, FieldSeverity, 99)
	assert.Equal(t, 10, rows[0].Severity)

	rows = UpdateRow(rows, id, FieldOccurrence, -3)
	assert.Equal(t, 1, rows[0].Occurrence)
	assert.Equal(t, 10, rows[0].RPN)
}

func TestUpdateRowWrongValueTypeIsNoop(t *testing.T) {
	rows := []Row{NewRow()}
	id := rows[0].ID

	out := UpdateRow(rows, id, FieldSeverity, "nine")
	assert.Equal(t, rows, out)

	out = UpdateRow(rows, id, FieldItem, 42)
	assert.Equal(t, rows, out)
}

func TestAddRow(t *testing.T) {
	rows := []Row{NewRow()}
	out := AddRow(rows)

	require.Len(t, out, 2)
	added := out[1]
	assert.Equal(t, 1, added.RPN)
	assert.Equal(t, 1, added.NewRPN)
	assert.NotEqual(t, out[0].ID, added.ID)
}

func TestDeleteRowLastRowIsNoop(t *testing.T) {
	rows := []Row{NewRow()}
	out := DeleteRow(rows, rows[0].ID)

	require.Len(t, out, 1)
	assert.Equal(t, rows[0], out[0])
}

func TestDeleteRowRemovesOnlyTarget(t *testing.T) {
	rows := []Row{NewRow(), NewRow(), NewRow()}
	target := rows[1].ID

	out := DeleteRow(rows, target)

	require.Len(t, out, 2)
	assert.Equal(t, rows[0].ID, out[0].ID)
	assert.Equal(t, rows[2].ID, out[1].ID)
}

func TestUpdateHeaderField(t *testing.T) {
	h := NewHeader()

	h = UpdateHeaderField(h, HeaderCompany, "比特幻想")
	h = UpdateHeaderField(h, HeaderProductName, "Bracket")
	h = UpdateHeaderField(h, HeaderDatePrepared, "2025-08-31")

	assert.Equal(t, "比特幻想", h.Company)
	assert.Equal(t, "Bracket", h.ProductName)
	assert.Equal(t, "2025-08-31", h.DatePrepared)
	// 其他字段保持默认
	assert.Equal(t, "1.0", h.Revision)
}

func TestUpdateHeaderFMEAType(t *testing.T) {
	h := NewHeader()

	h = UpdateHeaderField(h, HeaderFMEAType, TypePFMEA)
	assert.Equal(t, TypePFMEA, h.FMEAType)

	// 非法值被忽略
	h = UpdateHeaderField(h, HeaderFMEAType, "XFMEA")
	assert.Equal(t, TypePFMEA, h.FMEAType)
}

func TestRowIDsUnique(t *testing.T) {
	rows := []Row{NewRow()}
	for i := 0; i < 50; i++ {
		rows = AddRow(rows)
	}

	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		assert.False(t, seen[row.ID], "duplicate row id %s", row.ID)
		seen[row.ID] = true
	}
}
