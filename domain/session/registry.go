// Package session tracks the uploads an operator has submitted during one
// session and which of them is currently selected for analysis. State is
// in-memory only; each session owns its own Registry instance.
package session

import (
	"time"

	"github.com/google/uuid"

	apperrors "complaintscope/internal/errors"
)

// UploadRecord is one entry per distinct uploaded workbook. The registry
// exclusively owns Payload; readers borrow it read-only.
type UploadRecord struct {
	Name       string
	ByteSize   int64
	ReceivedAt time.Time
	Payload    []byte
}

// UploadInfo is the payload-free metadata snapshot handed to callers.
type UploadInfo struct {
	Name       string    `json:"name"`
	ByteSize   int64     `json:"byte_size"`
	ReceivedAt time.Time `json:"received_at"`
	Current    bool      `json:"current"`
}

// Registry holds the ordered upload history (insertion order, never
// reordered) and the nullable current pointer.
type Registry struct {
	id      string
	records []UploadRecord
	current int // index into records, -1 = none
}

// NewRegistry creates an empty registry with a fresh session identity.
func NewRegistry() *Registry {
	return &Registry{
		id:      uuid.New().String(),
		current: -1,
	}
}

// ID returns the session identity of this registry.
func (r *Registry) ID() string { return r.id }

// Len returns the number of distinct uploads.
func (r *Registry) Len() int { return len(r.records) }

// Submit records an upload. Name is the identity key: a new name appends,
// an existing name replaces that entry's size/timestamp/payload in place.
// Either way the entry becomes current. Never fails.
func (r *Registry) Submit(name string, payload []byte) int {
	rec := UploadRecord{
		Name:       name,
		ByteSize:   int64(len(payload)),
		ReceivedAt: time.Now(),
		Payload:    payload,
	}
	for i := range r.records {
		if r.records[i].Name == name {
			r.records[i] = rec
			r.current = i
			return i
		}
	}
	r.records = append(r.records, rec)
	r.current = len(r.records) - 1
	return r.current
}

// Select makes the entry at index current.
func (r *Registry) Select(index int) error {
	if index < 0 || index >= len(r.records) {
		return apperrors.OutOfRange(index, len(r.records))
	}
	r.current = index
	return nil
}

// Remove deletes the entry at index, shifting later entries down. Removing
// the current entry clears the selection; removing an entry before it
// decrements the pointer so it keeps naming the same upload.
func (r *Registry) Remove(index int) error {
	if index < 0 || index >= len(r.records) {
		return apperrors.OutOfRange(index, len(r.records))
	}
	r.records = append(r.records[:index], r.records[index+1:]...)
	switch {
	case r.current == index:
		r.current = -1
	case r.current > index:
		r.current--
	}
	return nil
}

// Clear empties the registry and resets the selection. Never fails.
func (r *Registry) Clear() {
	r.records = nil
	r.current = -1
}

// Current returns the selected upload, or false when nothing is selected.
func (r *Registry) Current() (*UploadRecord, bool) {
	if r.current < 0 || r.current >= len(r.records) {
		return nil, false
	}
	return &r.records[r.current], true
}

// CurrentIndex returns the selected position, or -1.
func (r *Registry) CurrentIndex() int { return r.current }

// List returns metadata snapshots in insertion order.
func (r *Registry) List() []UploadInfo {
	out := make([]UploadInfo, len(r.records))
	for i, rec := range r.records {
		out[i] = UploadInfo{
			Name:       rec.Name,
			ByteSize:   rec.ByteSize,
			ReceivedAt: rec.ReceivedAt,
			Current:    i == r.current,
		}
	}
	return out
}
