package table

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies the cell type carried by a Value.
type Kind int

const (
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindDate
)

// Value is a single typed cell. The zero value is Absent.
type Value struct {
	kind Kind
	str  string
	num  float64
	date time.Time
}

// Absent returns the missing-cell value.
func Absent() Value {
	return Value{kind: KindAbsent}
}

// String returns a text cell. Leading/trailing whitespace is trimmed;
// an all-whitespace cell collapses to Absent.
func String(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Absent()
	}
	return Value{kind: KindString, str: s}
}

// Number returns a numeric cell.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Date returns a date cell.
func Date(t time.Time) Value {
	return Value{kind: KindDate, date: t}
}

func (v Value) Kind() Kind     { return v.kind }
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Text returns the canonical string form used for grouping and display.
// Absent cells render as the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindDate:
		return v.date.Format("2006-01-02")
	default:
		return ""
	}
}

// NumberValue returns the numeric content, if this is a number cell.
func (v Value) NumberValue() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// DateValue returns the date content, if this is a date cell.
func (v Value) DateValue() (time.Time, bool) {
	if v.kind != KindDate {
		return time.Time{}, false
	}
	return v.date, true
}
