package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValue_TextForms(t *testing.T) {
	assert.Equal(t, "", Absent().Text())
	assert.Equal(t, "ATM Jam", String("  ATM Jam  ").Text())
	assert.Equal(t, "42", Number(42).Text())
	assert.Equal(t, "12.5", Number(12.5).Text())
	assert.Equal(t, "2025-03-02", Date(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)).Text())
}

func TestValue_WhitespaceCollapsesToAbsent(t *testing.T) {
	assert.True(t, String("   ").IsAbsent())
	assert.True(t, String("").IsAbsent())
	assert.False(t, String("x").IsAbsent())
}

func TestTable_CellAndColumnValues(t *testing.T) {
	tbl := New([]string{"A", "B"})
	tbl.Append(Row{"A": String("a1")})
	tbl.Append(Row{"A": String("a2"), "B": Number(2)})

	assert.Equal(t, "a1", tbl.Cell(0, "A").Text())
	assert.True(t, tbl.Cell(0, "B").IsAbsent(), "unset cell should read as absent")
	assert.True(t, tbl.Cell(5, "A").IsAbsent(), "out-of-range row should read as absent")

	vals := tbl.ColumnValues("B")
	assert.Len(t, vals, 2)
	assert.True(t, vals[0].IsAbsent())
	assert.Equal(t, "2", vals[1].Text())
}

func TestDetectKeyColumn_ExactMatchFirst(t *testing.T) {
	tbl := New([]string{"Branch", "SOL ID", "Sol Code"})
	col, ok := DetectKeyColumn(tbl)
	assert.True(t, ok)
	assert.Equal(t, ColSOLID, col)
}

func TestDetectKeyColumn_SubstringFallback(t *testing.T) {
	tbl := New([]string{"Branch", "Sol Code", "State"})
	col, ok := DetectKeyColumn(tbl)
	assert.True(t, ok)
	assert.Equal(t, "Sol Code", col)
}

func TestDetectKeyColumn_NoCandidate(t *testing.T) {
	tbl := New([]string{"Branch", "State"})
	_, ok := DetectKeyColumn(tbl)
	assert.False(t, ok)
}

func TestIsDateColumn(t *testing.T) {
	assert.True(t, IsDateColumn(ColReceivedDate))
	assert.True(t, IsDateColumn(ColTentativeDate))
	assert.True(t, IsDateColumn("Dispatch Date"))
	assert.False(t, IsDateColumn("Branch"))
	assert.False(t, IsDateColumn(ColQuoteSent))
}
