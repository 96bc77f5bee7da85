package filters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintscope/domain/table"
	"complaintscope/internal/testkit"
)

func TestApply_EqualsFilter(t *testing.T) {
	tbl := testkit.ComplaintTable()

	out := Apply(tbl, []Predicate{Equals(table.ColState, "MH")})

	assert.Equal(t, 3, out.Len())
	for i := range out.Rows {
		assert.Equal(t, "MH", out.Cell(i, table.ColState).Text())
	}
}

func TestApply_MissingColumnIsNoOp(t *testing.T) {
	tbl := testkit.ComplaintTable()

	out := Apply(tbl, []Predicate{Equals("Zone", "East")})

	assert.Equal(t, tbl.Len(), out.Len(), "predicate on an absent column must not filter")
}

func TestApply_DateRangeInclusive(t *testing.T) {
	tbl := testkit.ComplaintTable()
	start := time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)

	out := Apply(tbl, []Predicate{DateRange(table.ColReceivedDate, start, end)})

	require.Equal(t, 3, out.Len(), "boundary dates are included; undated rows are dropped")
	assert.Equal(t, "C-002", out.Cell(0, table.ColComplaintNo).Text())
	assert.Equal(t, "C-004", out.Cell(2, table.ColComplaintNo).Text())
}

func TestApply_ChainedPredicatesIntersect(t *testing.T) {
	tbl := testkit.ComplaintTable()

	out := Apply(tbl, []Predicate{
		Equals(table.ColState, "MH"),
		Equals(table.ColCallStatus, "Open"),
	})

	assert.Equal(t, 2, out.Len())
}

func TestApply_IsPure(t *testing.T) {
	tbl := testkit.ComplaintTable()
	before := tbl.Len()

	_ = Apply(tbl, []Predicate{Equals(table.ColState, "DL")})

	assert.Equal(t, before, tbl.Len(), "input table must not be mutated")

	again := Apply(tbl, []Predicate{Equals(table.ColState, "DL")})
	assert.Equal(t, 1, again.Len(), "re-running the same predicates is idempotent")
}
