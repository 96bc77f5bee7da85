package session

import (
	"testing"

	apperrors "complaintscope/internal/errors"
)

func TestRegistry_SubmitAppendsAndSelects(t *testing.T) {
	r := NewRegistry()

	idx := r.Submit("jan.xlsx", []byte("payload-1"))
	if idx != 0 {
		t.Errorf("Expected first submit at index 0, got %d", idx)
	}
	idx = r.Submit("feb.xlsx", []byte("payload-2"))
	if idx != 1 {
		t.Errorf("Expected second submit at index 1, got %d", idx)
	}

	cur, ok := r.Current()
	if !ok || cur.Name != "feb.xlsx" {
		t.Errorf("Expected feb.xlsx current after submit, got %+v ok=%v", cur, ok)
	}
}

func TestRegistry_ResubmitReplacesInPlace(t *testing.T) {
	r := NewRegistry()
	r.Submit("jan.xlsx", []byte("v1"))
	r.Submit("feb.xlsx", []byte("payload"))

	idx := r.Submit("jan.xlsx", []byte("v2-longer"))
	if idx != 0 {
		t.Errorf("Expected resubmit to reuse index 0, got %d", idx)
	}
	if r.Len() != 2 {
		t.Errorf("Expected resubmit to keep entry count at 2, got %d", r.Len())
	}

	cur, ok := r.Current()
	if !ok || cur.Name != "jan.xlsx" {
		t.Fatalf("Expected jan.xlsx current after resubmit, got %+v ok=%v", cur, ok)
	}
	if string(cur.Payload) != "v2-longer" {
		t.Errorf("Expected replaced payload, got %q", cur.Payload)
	}
	if cur.ByteSize != int64(len("v2-longer")) {
		t.Errorf("Expected replaced byte size, got %d", cur.ByteSize)
	}
}

func TestRegistry_DistinctNamesEqualEntryCount(t *testing.T) {
	r := NewRegistry()
	names := []string{"a.xlsx", "b.xlsx", "a.xlsx", "c.xlsx", "b.xlsx", "a.xlsx"}
	for _, n := range names {
		r.Submit(n, []byte(n))
	}

	if r.Len() != 3 {
		t.Errorf("Expected 3 entries for 3 distinct names, got %d", r.Len())
	}
	seen := make(map[string]bool)
	for _, info := range r.List() {
		if seen[info.Name] {
			t.Errorf("Duplicate name in registry: %s", info.Name)
		}
		seen[info.Name] = true
	}
}

func TestRegistry_RemoveBeforeCurrentKeepsIdentity(t *testing.T) {
	r := NewRegistry()
	r.Submit("x.xlsx", []byte("x"))
	r.Submit("y.xlsx", []byte("y"))

	if err := r.Remove(0); err != nil {
		t.Fatalf("Remove(0) failed: %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("Expected 1 entry after remove, got %d", r.Len())
	}
	if r.CurrentIndex() != 0 {
		t.Errorf("Expected current index to shift to 0, got %d", r.CurrentIndex())
	}
	cur, ok := r.Current()
	if !ok || cur.Name != "y.xlsx" {
		t.Errorf("Expected current to still reference y.xlsx, got %+v ok=%v", cur, ok)
	}
}

func TestRegistry_RemoveCurrentClearsSelection(t *testing.T) {
	r := NewRegistry()
	r.Submit("x.xlsx", []byte("x"))
	r.Submit("y.xlsx", []byte("y"))

	if err := r.Remove(1); err != nil {
		t.Fatalf("Remove(1) failed: %v", err)
	}
	if _, ok := r.Current(); ok {
		t.Error("Expected no current selection after removing the current entry")
	}
	if r.CurrentIndex() != -1 {
		t.Errorf("Expected current index -1, got %d", r.CurrentIndex())
	}
}

func TestRegistry_SelectAndOutOfRange(t *testing.T) {
	r := NewRegistry()
	r.Submit("x.xlsx", []byte("x"))

	if err := r.Select(0); err != nil {
		t.Fatalf("Select(0) failed: %v", err)
	}
	for _, idx := range []int{-1, 1, 5} {
		if err := r.Select(idx); apperrors.GetCode(err) != apperrors.CodeOutOfRange {
			t.Errorf("Select(%d): expected OUT_OF_RANGE, got %v", idx, err)
		}
		if err := r.Remove(idx); apperrors.GetCode(err) != apperrors.CodeOutOfRange {
			t.Errorf("Remove(%d): expected OUT_OF_RANGE, got %v", idx, err)
		}
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry()
	r.Submit("x.xlsx", []byte("x"))
	r.Submit("y.xlsx", []byte("y"))

	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Expected empty registry after clear, got %d entries", r.Len())
	}
	if _, ok := r.Current(); ok {
		t.Error("Expected no current selection after clear")
	}
}
